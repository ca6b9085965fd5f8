package parser

// Tree is an immutable concrete syntax tree. The root covers the entire
// input: concatenating its leaf texts reproduces the source byte for byte.
type Tree struct {
	Root *Node
}

func (t *Tree) Text() string {
	return t.Root.Text()
}

func (t *Tree) Children() []*Node {
	return t.Root.Children
}

func (t *Tree) ChildCount() int {
	return len(t.Root.Children)
}

func (t *Tree) Find(kind Kind) *Node {
	return t.Root.Find(kind)
}

func (t *Tree) FindAll(kind Kind) []*Node {
	return t.Root.FindAll(kind)
}

func (t *Tree) Descendants() []*Node {
	return t.Root.Descendants()
}

// DebugString renders the node structure with indentation, one node per
// line, for diagnostics and tests.
func (t *Tree) DebugString() string {
	return t.Root.String()
}

func (t *Tree) WithoutKinds(kinds ...Kind) *Tree {
	return &Tree{Root: t.Root.WithoutKinds(kinds...)}
}

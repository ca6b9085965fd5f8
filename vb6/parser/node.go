package parser

import "strings"

// Node is either a token leaf (Token set, no children) or an interior
// node owning an ordered list of children. Nodes are immutable once the
// builder finishes them; every navigation operation is read-only, so a
// built tree is safe to share.
type Node struct {
	Kind     Kind
	Token    *Token
	Children []*Node
}

func (n *Node) IsToken() bool {
	return n.Token != nil
}

// Text reconstructs the exact source this node covers. For the root node
// this equals the entire input.
func (n *Node) Text() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.Token != nil {
		sb.WriteString(n.Token.Text)
		return
	}
	for _, child := range n.Children {
		child.writeText(sb)
	}
}

func (n *Node) ChildCount() int {
	return len(n.Children)
}

func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) FirstChildByKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenByKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) ContainsKind(kind Kind) bool {
	return n.Find(kind) != nil
}

// Find returns the first descendant (excluding n itself) of the given
// kind, in document order.
func (n *Node) Find(kind Kind) *Node {
	return n.FindIf(func(d *Node) bool { return d.Kind == kind })
}

func (n *Node) FindAll(kind Kind) []*Node {
	return n.FindAllIf(func(d *Node) bool { return d.Kind == kind })
}

func (n *Node) FindIf(pred func(*Node) bool) *Node {
	for _, child := range n.Children {
		if pred(child) {
			return child
		}
		if found := child.FindIf(pred); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) FindAllIf(pred func(*Node) bool) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if pred(child) {
			result = append(result, child)
		}
		result = append(result, child.FindAllIf(pred)...)
	}
	return result
}

// Descendants lists every node below n, depth first in document order.
// The tree never changes after construction, so repeated calls yield the
// same sequence.
func (n *Node) Descendants() []*Node {
	return n.FindAllIf(func(*Node) bool { return true })
}

// Walk visits n and its descendants in document order, stopping early
// when the callback returns false for a subtree.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

func (n *Node) NonTokenChildren() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if !child.IsToken() {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) TokenChildren() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.IsToken() {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) SignificantChildren() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.IsSignificant() {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) IsWhitespace() bool {
	return n.Token != nil && n.Token.Kind == TokenWhitespace
}

func (n *Node) IsNewline() bool {
	return n.Token != nil && n.Token.Kind == TokenNewline
}

func (n *Node) IsComment() bool {
	return n.Token != nil && (n.Token.Kind == TokenComment || n.Token.Kind == TokenRemComment)
}

func (n *Node) IsTrivia() bool {
	return n.Token != nil && n.Token.Kind.IsTrivia()
}

func (n *Node) IsSignificant() bool {
	return !n.IsTrivia()
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		sb.WriteString(" ")
		sb.WriteString(quoteText(n.Token.Text))
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}

func quoteText(text string) string {
	replacer := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + replacer.Replace(text) + `"`
}

// WithoutKinds returns a copy of the subtree with every node of the given
// kinds removed. The copy is no longer lossless; it exists for consumers
// that extract parts of the file elsewhere and do not want them twice.
func (n *Node) WithoutKinds(kinds ...Kind) *Node {
	drop := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		drop[k] = true
	}
	return n.withoutKinds(drop)
}

func (n *Node) withoutKinds(drop map[Kind]bool) *Node {
	clone := &Node{Kind: n.Kind, Token: n.Token}
	for _, child := range n.Children {
		if drop[child.Kind] {
			continue
		}
		clone.Children = append(clone.Children, child.withoutKinds(drop))
	}
	return clone
}

package parser

// Builder assembles a tree bottom-up with a push-down stack discipline.
// StartNode and FinishNode must nest like balanced parentheses; breaking
// that is a bug in the calling parser, so the builder panics rather than
// recovering. The builder itself never inspects token kinds: every
// grammar decision belongs to the caller.
type Builder struct {
	stream *Stream
	stack  []*Node
	root   *Node
}

func NewBuilder(stream *Stream) *Builder {
	return &Builder{stream: stream}
}

func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &Node{Kind: kind})
}

func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("parser: FinishNode without matching StartNode")
	}
	node := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) == 0 {
		if b.root != nil {
			panic("parser: more than one root node")
		}
		b.root = node
		return
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, node)
}

// ConsumeToken moves the stream's current token into the open node as a
// leaf, classified by its own token kind. At end of stream it does
// nothing.
func (b *Builder) ConsumeToken() {
	tok, ok := b.stream.Next()
	if !ok {
		return
	}
	b.attach(KindForToken(tok.Kind), tok)
}

// ConsumeTokenAs reclassifies the leaf, e.g. an unmatched token recorded
// as Unknown, or a keyword that is really being used as a name.
func (b *Builder) ConsumeTokenAs(kind Kind) {
	tok, ok := b.stream.Next()
	if !ok {
		return
	}
	b.attach(kind, tok)
}

// ConsumeMergedAs joins the next count tokens into one leaf. Used for
// names like Mid$ that lex as two tokens but act as one identifier.
func (b *Builder) ConsumeMergedAs(kind Kind, count int) {
	first, ok := b.stream.Next()
	if !ok {
		return
	}
	merged := first
	for i := 1; i < count; i++ {
		tok, ok := b.stream.Next()
		if !ok {
			break
		}
		merged.Text += tok.Text
	}
	b.attach(kind, merged)
}

// ConsumeUntil consumes tokens as leaves until the predicate matches,
// leaving the matching token in the stream. Kind-agnostic: this is the
// resynchronization primitive for error recovery.
func (b *Builder) ConsumeUntil(pred func(Token) bool) {
	for {
		tok, ok := b.stream.Current()
		if !ok || pred(tok) {
			return
		}
		b.ConsumeToken()
	}
}

// ConsumeUntilAfter is ConsumeUntil plus the matching token itself.
func (b *Builder) ConsumeUntilAfter(pred func(Token) bool) {
	b.ConsumeUntil(pred)
	b.ConsumeToken()
}

// Checkpoint marks a position among the open node's children so an
// already-built prefix can later be wrapped into a new node. Needed for
// left-recursive shapes like binary expressions, where the operator is
// only seen after its left operand is in the tree.
type Checkpoint int

func (b *Builder) Checkpoint() Checkpoint {
	if len(b.stack) == 0 {
		panic("parser: Checkpoint with no open node")
	}
	return Checkpoint(len(b.stack[len(b.stack)-1].Children))
}

// StartNodeAt opens a node as if StartNode had been called when the
// checkpoint was taken: children added since then move into the new node.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if len(b.stack) == 0 {
		panic("parser: StartNodeAt with no open node")
	}
	parent := b.stack[len(b.stack)-1]
	if int(cp) > len(parent.Children) {
		panic("parser: checkpoint out of range")
	}
	node := &Node{Kind: kind}
	node.Children = append(node.Children, parent.Children[cp:]...)
	parent.Children = parent.Children[:cp]
	b.stack = append(b.stack, node)
}

func (b *Builder) attach(kind Kind, tok Token) {
	if len(b.stack) == 0 {
		panic("parser: token consumed with no open node")
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, &Node{Kind: kind, Token: &tok})
}

// Finish returns the completed root. Every started node must have been
// finished.
func (b *Builder) Finish() *Node {
	if len(b.stack) != 0 {
		panic("parser: unfinished nodes at end of build")
	}
	if b.root == nil {
		panic("parser: no root node built")
	}
	return b.root
}

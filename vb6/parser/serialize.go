package parser

import "encoding/json"

// SerialNode is the plain projection of a tree handed to external
// consumers. It carries no builder internals: kind name, exact text,
// token flag, children. File-format readers and test harnesses walk this
// instead of *Node.
type SerialNode struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text"`
	IsToken  bool         `json:"is_token"`
	Children []SerialNode `json:"children,omitempty"`
}

func (n *Node) Serializable() SerialNode {
	sn := SerialNode{
		Kind:    n.Kind.String(),
		Text:    n.Text(),
		IsToken: n.IsToken(),
	}
	if len(n.Children) > 0 {
		sn.Children = make([]SerialNode, len(n.Children))
		for i, child := range n.Children {
			sn.Children[i] = child.Serializable()
		}
	}
	return sn
}

func (t *Tree) Serializable() SerialNode {
	return t.Root.Serializable()
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Serializable())
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Serializable())
}

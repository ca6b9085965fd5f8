package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/vbsix/vb6/parser"
)

// TreeEncoder renders the node structure as an indented outline, one
// node per line.
type TreeEncoder struct {
	w    io.Writer
	tree *parser.Tree
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(tree *parser.Tree) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	return []byte(e.tree.DebugString()), nil
}

// LineEncoder writes one tab-separated line per token: kind, offset,
// line, quoted text. Easy to grep and diff.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) EncodeTokens(tokens []parser.Token) error {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%s\t%d\t%d\t%q\n", tok.Kind, tok.Offset, tok.Line, tok.Text)
	}
	_, err := io.WriteString(e.w, sb.String())
	return err
}

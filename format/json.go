package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/vbsix/vb6/parser"
)

type JSONEncoder struct {
	w    io.Writer
	tree *parser.Tree
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree *parser.Tree) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.tree.Serializable(), "", "  ")
}

func (e *JSONEncoder) EncodeTokens(tokens []parser.Token) error {
	data, err := json.MarshalIndent(tokensToJSON(tokens), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
}

func tokensToJSON(tokens []parser.Token) []jsonToken {
	out := make([]jsonToken, len(tokens))
	for i, tok := range tokens {
		out[i] = jsonToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Offset,
			Line:   tok.Line,
		}
	}
	return out
}

// Package format renders parsed trees and token lists for output.
package format

import (
	"encoding"

	"github.com/dhamidi/vbsix/vb6/parser"
)

// Encoder writes one tree to its output.
type Encoder interface {
	encoding.TextMarshaler
	Encode(tree *parser.Tree) error
}

// TokenEncoder writes one token list to its output.
type TokenEncoder interface {
	EncodeTokens(tokens []parser.Token) error
}

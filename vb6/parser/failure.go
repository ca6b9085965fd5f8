package parser

import "fmt"

// FailureKind names a category of recoverable defect found while lexing or
// parsing. Other packages layer their own kinds on top of the same type.
type FailureKind string

const (
	FailUnknownToken      FailureKind = "unknown token"
	FailIdentifierTooLong FailureKind = "identifier too long"
	FailUnexpectedEOF     FailureKind = "unexpected end of stream"
	FailUnknownStatement  FailureKind = "unrecognized statement"
	FailMissingExpression FailureKind = "missing expression"
)

// Failure is a structured record of a defect. Failures are data, never
// control flow: they accumulate on a Result and the parse keeps going.
type Failure struct {
	Kind      FailureKind
	Offset    int
	LineStart int
	LineEnd   int
	Detail    string
}

func (f Failure) String() string {
	if f.LineStart == f.LineEnd {
		if f.Detail != "" {
			return fmt.Sprintf("line %d: %s: %s", f.LineStart, f.Kind, f.Detail)
		}
		return fmt.Sprintf("line %d: %s", f.LineStart, f.Kind)
	}
	if f.Detail != "" {
		return fmt.Sprintf("lines %d-%d: %s: %s", f.LineStart, f.LineEnd, f.Kind, f.Detail)
	}
	return fmt.Sprintf("lines %d-%d: %s", f.LineStart, f.LineEnd, f.Kind)
}

func failureAt(kind FailureKind, tok Token, detail string) Failure {
	lines := 0
	for i := 0; i < len(tok.Text); i++ {
		if tok.Text[i] == '\n' {
			lines++
		}
	}
	return Failure{
		Kind:      kind,
		Offset:    tok.Offset,
		LineStart: tok.Line,
		LineEnd:   tok.Line + lines,
		Detail:    detail,
	}
}

package parser

import "strings"

// HeaderKind classifies what kind of source file a header announces.
type HeaderKind int

const (
	HeaderKindNone HeaderKind = iota
	HeaderKindModule
	HeaderKindClass
	HeaderKindForm
)

var headerKindNames = map[HeaderKind]string{
	HeaderKindNone:   "None",
	HeaderKindClass:  "Class",
	HeaderKindForm:   "Form",
	HeaderKindModule: "Module",
}

func (k HeaderKind) String() string {
	if name, ok := headerKindNames[k]; ok {
		return name
	}
	return "None"
}

// Header holds the parsed file header: the VERSION line and any Begin
// property blocks, plus what they say about the file.
type Header struct {
	Version string
	Kind    HeaderKind
	Tree    *Tree
}

// ParseHeader runs only the header phase and hands back the stream
// positioned after it, so a caller can treat header and body separately.
// Parsing the remainder with BodyOnly and concatenating the two trees
// covers the same tokens as a single full parse.
func ParseHeader(file, src string) (Result[*Header], *Stream) {
	tokens, _, lexFailures := Tokenize(file, src).Unpack()
	result, rest := ParseHeaderTokens(file, NewStream(tokens))
	out := OK(result.MustValue(), lexFailures...)
	out.AppendFailures(result.Failures())
	return out, rest
}

// ParseHeaderTokens is ParseHeader over an existing stream.
func ParseHeaderTokens(file string, s *Stream) (Result[*Header], *Stream) {
	p := NewParser(file, s)
	p.b.StartNode(KindRoot)
loop:
	for !p.atEnd() {
		kind, _ := p.currentKind()
		switch {
		case kind == TokenVersion:
			p.parseVersionStatement()
		case kind == TokenBegin:
			p.parsePropertiesBlock()
		case kind.IsTrivia():
			p.consume()
		default:
			break loop
		}
	}
	p.b.FinishNode() // Root
	tree := &Tree{Root: p.b.Finish()}
	header := &Header{Tree: tree, Kind: headerKind(tree)}
	if v := tree.Find(KindVersionStatement); v != nil {
		header.Version = versionNumber(v.Text())
	}
	rest := s.IntoSuffix(s.Pos())
	return OK(header, p.failures...), rest
}

func headerKind(tree *Tree) HeaderKind {
	version := tree.Find(KindVersionStatement)
	begin := tree.Find(KindPropertiesBlock)
	switch {
	case version != nil && versionIsClass(version.Text()):
		return HeaderKindClass
	case begin != nil:
		return HeaderKindForm
	case version != nil:
		return HeaderKindModule
	}
	return HeaderKindNone
}

func versionNumber(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func versionIsClass(text string) bool {
	for _, field := range strings.Fields(text) {
		if strings.EqualFold(field, "CLASS") {
			return true
		}
	}
	return false
}

func (p *Parser) parseVersionStatement() {
	p.b.StartNode(KindVersionStatement)
	p.consume() // VERSION
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

// parsePropertiesBlock reads one Begin ... End block from a class or form
// header, recursing for nested Begin blocks and BeginProperty groups.
func (p *Parser) parsePropertiesBlock() {
	p.b.StartNode(KindPropertiesBlock)
	p.consume() // Begin
	p.consumeUntilAfter(TokenNewline)
	for !p.atEnd() {
		kind, _ := p.currentKind()
		switch {
		case kind.IsTrivia():
			p.consume()
		case kind == TokenEnd:
			p.consume()
			p.consumeUntil(TokenNewline)
			p.b.FinishNode()
			return
		case kind == TokenBegin:
			p.parsePropertiesBlock()
		case p.atIdentText("BeginProperty"):
			p.parsePropertyGroup()
		default:
			p.parseProperty()
		}
	}
	p.b.FinishNode() // unterminated block runs to end of input
}

func (p *Parser) parsePropertyGroup() {
	p.b.StartNode(KindPropertyGroup)
	p.consume() // BeginProperty
	p.consumeWhitespaceOnly()
	if !p.atLogicalLineEnd() {
		p.b.StartNode(KindPropertyGroupName)
		p.consumeUntil(TokenNewline)
		p.b.FinishNode()
	}
	for !p.atEnd() {
		kind, _ := p.currentKind()
		switch {
		case kind.IsTrivia():
			p.consume()
		case p.atIdentText("EndProperty"):
			p.consume()
			p.b.FinishNode()
			return
		case kind == TokenEnd:
			// the enclosing block's End; this group never closed
			p.b.FinishNode()
			return
		case p.atIdentText("BeginProperty"):
			p.parsePropertyGroup()
		default:
			p.parseProperty()
		}
	}
	p.b.FinishNode()
}

// parseProperty reads one "Key = Value" header line. A line without an =
// still becomes a Property node so nothing in the header gets lost.
func (p *Parser) parseProperty() {
	p.b.StartNode(KindProperty)
	p.b.StartNode(KindPropertyKey)
	p.b.ConsumeUntil(func(tok Token) bool {
		switch tok.Kind {
		case TokenEq, TokenWhitespace, TokenNewline, TokenComment, TokenRemComment:
			return true
		}
		return false
	})
	p.b.FinishNode()
	p.consumeWhitespaceOnly()
	if p.at(TokenEq) {
		p.consume()
		p.consumeWhitespaceOnly()
		p.b.StartNode(KindPropertyValue)
		p.consumeUntil(TokenNewline)
		p.b.FinishNode()
	} else {
		p.consumeUntil(TokenNewline)
	}
	p.b.FinishNode()
}

func (p *Parser) atIdentText(text string) bool {
	tok, ok := p.s.Current()
	return ok && tok.Kind == TokenIdent && strings.EqualFold(tok.Text, text)
}

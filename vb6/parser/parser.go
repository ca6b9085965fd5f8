package parser

// Parser drives the tree builder over a token stream with a dispatch loop
// that classifies the current token into a statement category, one handler
// per category. Recovery is local: a token no rule matches becomes a
// single Unknown leaf plus a failure and the loop re-enters, so one bad
// token never poisons the statements after it.
type Parser struct {
	file     string
	s        *Stream
	b        *Builder
	inHeader bool
	failures []Failure
}

type Option func(*Parser)

// BodyOnly starts the parse with the header phase already behind it.
// Used when resuming on the remainder stream of a header parse.
func BodyOnly() Option {
	return func(p *Parser) { p.inHeader = false }
}

func NewParser(file string, s *Stream, opts ...Option) *Parser {
	p := &Parser{file: file, s: s, b: NewBuilder(s), inHeader: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse lexes and parses a whole source buffer. The tree is always
// present; failures from both phases accumulate in order.
func Parse(file, src string) Result[*Tree] {
	tokens, _, lexFailures := Tokenize(file, src).Unpack()
	result := ParseTokens(file, NewStream(tokens))
	out := OK(result.MustValue(), lexFailures...)
	out.AppendFailures(result.Failures())
	return out
}

func ParseTokens(file string, s *Stream, opts ...Option) Result[*Tree] {
	return NewParser(file, s, opts...).ParseModule()
}

// ParseModule consumes the whole stream into a Root tree. Every token
// ends up in the tree, so the tree's text equals the stream's text.
func (p *Parser) ParseModule() Result[*Tree] {
	p.b.StartNode(KindRoot)
	for !p.atEnd() {
		p.dispatch()
	}
	p.b.FinishNode() // Root
	return OK(&Tree{Root: p.b.Finish()}, p.failures...)
}

// dispatch classifies the current token and runs one statement handler.
// It always makes progress.
func (p *Parser) dispatch() {
	kind, ok := p.currentKind()
	if !ok {
		return
	}
	switch kind {
	case TokenAttribute:
		p.parseAttributeStatement()
	case TokenOption:
		p.parseOptionStatement()
	case TokenVersion:
		if p.inHeader {
			p.parseVersionStatement()
			return
		}
		p.fallback()
	case TokenBegin:
		if p.inHeader {
			p.parsePropertiesBlock()
			return
		}
		p.fallback()
	case TokenSub:
		p.parseSubStatement()
	case TokenFunction:
		p.parseFunctionStatement()
	case TokenProperty:
		p.parsePropertyStatement()
	case TokenDeclare:
		p.parseDeclareStatement()
	case TokenEvent:
		p.parseEventStatement()
	case TokenImplements:
		p.parseImplementsStatement()
	case TokenType:
		p.parseTypeStatement()
	case TokenEnum:
		p.parseEnumStatement()
	case TokenDim, TokenConst:
		p.parseDeclaration()
	case TokenPrivate, TokenPublic, TokenFriend, TokenStatic:
		p.dispatchModified()
	case TokenWhitespace, TokenNewline, TokenComment, TokenRemComment:
		p.consume()
	case TokenColon:
		p.consume() // statement separator
	default:
		if p.atDefType() {
			p.parseDefTypeStatement()
			return
		}
		if p.atControlFlowKeyword() {
			p.parseControlFlowStatement()
			return
		}
		if p.atObjectStatementKeyword() {
			p.parseObjectStatement()
			return
		}
		if p.atArrayStatementKeyword() {
			p.parseArrayStatement()
			return
		}
		p.fallback()
	}
}

// dispatchModified resolves the Public/Private/Friend/Static prefix by
// peeking past it: a procedure or type keyword within the next two
// keywords picks its handler, anything else is a declaration.
func (p *Parser) dispatchModified() {
	keywords := p.peekKeywords(2)
	target := TokenKind(0)
	if len(keywords) > 0 {
		target = keywords[0]
		if target == TokenStatic && len(keywords) > 1 {
			target = keywords[1]
		}
	}
	switch target {
	case TokenFunction:
		p.parseFunctionStatement()
	case TokenSub:
		p.parseSubStatement()
	case TokenProperty:
		p.parsePropertyStatement()
	case TokenDeclare:
		p.parseDeclareStatement()
	case TokenEvent:
		p.parseEventStatement()
	case TokenType:
		p.parseTypeStatement()
	case TokenEnum:
		p.parseEnumStatement()
	default:
		p.parseDeclaration()
	}
}

// fallback handles everything the keyword switch did not: dollar-suffixed
// library names, the long tail of built-in statements, labels,
// assignments, implicit calls, and finally single-token recovery.
func (p *Parser) fallback() {
	p.enterBody()
	switch {
	case p.atKeywordDollar():
		if p.atAssignment() {
			p.parseAssignmentStatement()
			return
		}
		p.parseImplicitCallStatement()
	case p.atBuiltinKeyword():
		p.parseBuiltinStatement()
	case p.atLabel():
		p.parseLabelStatement()
	case p.atAssignment():
		p.parseAssignmentStatement()
	case p.at(TokenIdent), p.at(TokenMe):
		p.parseImplicitCallStatement()
	case p.atKeyword():
		p.consume()
	default:
		p.consumeAsUnknown()
	}
}

// parseStatementList parses a code block until the stop condition holds,
// wrapping the statements in a StatementList node. Blocks appear in both
// header and body so the latch is untouched here.
func (p *Parser) parseStatementList(stop func(*Parser) bool) {
	p.b.StartNode(KindStatementList)
	for !p.atEnd() {
		if stop(p) {
			break
		}
		kind, _ := p.currentKind()
		switch {
		case p.atControlFlowKeyword():
			p.parseControlFlowStatement()
		case p.atBuiltinKeyword() && !p.atKeywordDollar():
			p.parseBuiltinStatement()
		case p.atArrayStatementKeyword():
			p.parseArrayStatement()
		case p.atObjectStatementKeyword():
			p.parseObjectStatement()
		case kind == TokenDim || kind == TokenConst || kind == TokenPrivate ||
			kind == TokenPublic || kind == TokenStatic:
			p.parseDeclaration()
		case kind.IsTrivia():
			p.consume()
		case kind == TokenColon:
			p.consume() // statement separator
		default:
			switch {
			case p.atKeywordDollar() && p.atAssignment():
				p.parseAssignmentStatement()
			case p.atLabel():
				p.parseLabelStatement()
			case p.atAssignment():
				p.parseAssignmentStatement()
			case p.atKeywordDollar():
				p.parseImplicitCallStatement()
			case p.at(TokenDot):
				// leading member access in a With body
				p.consume()
			case p.at(TokenIdent), p.at(TokenMe):
				p.parseImplicitCallStatement()
			case p.atKeyword():
				p.consume()
			default:
				p.consumeAsUnknown()
			}
		}
	}
	p.b.FinishNode() // StatementList
}

// enterBody flips the header-vs-body latch. One way: nothing resets it.
func (p *Parser) enterBody() {
	p.inHeader = false
}

func (p *Parser) atEnd() bool {
	return p.s.AtEnd()
}

func (p *Parser) currentKind() (TokenKind, bool) {
	tok, ok := p.s.Current()
	return tok.Kind, ok
}

func (p *Parser) at(kind TokenKind) bool {
	tok, ok := p.s.Current()
	return ok && tok.Kind == kind
}

func (p *Parser) atKeyword() bool {
	tok, ok := p.s.Current()
	return ok && tok.Kind.IsKeyword()
}

func (p *Parser) atNumber() bool {
	tok, ok := p.s.Current()
	if !ok {
		return false
	}
	switch tok.Kind {
	case TokenIntegerLiteral, TokenLongLiteral, TokenSingleLiteral,
		TokenDoubleLiteral, TokenDecimalLiteral:
		return true
	}
	return false
}

func (p *Parser) atLogicalLineEnd() bool {
	tok, ok := p.s.Current()
	if !ok {
		return true
	}
	switch tok.Kind {
	case TokenNewline, TokenComment, TokenRemComment:
		return true
	}
	return false
}

func (p *Parser) consume() {
	p.b.ConsumeToken()
}

func (p *Parser) consumeAsIdent() {
	p.b.ConsumeTokenAs(KindForToken(TokenIdent))
}

func (p *Parser) consumeAsUnknown() {
	if tok, ok := p.s.Current(); ok {
		p.failures = append(p.failures, failureAt(FailUnknownStatement, tok, tok.Text))
	}
	p.b.ConsumeTokenAs(KindUnknown)
}

// consumeWhitespace consumes whitespace runs, folding in line
// continuations: an underscore followed by a line break joins the next
// line onto the current logical line.
func (p *Parser) consumeWhitespace() {
	for {
		switch {
		case p.at(TokenWhitespace):
			p.consume()
		case p.at(TokenUnderscore) && p.continuationAhead():
			p.consume() // underscore
			p.consumeWhitespaceOnly()
			p.consume() // newline
		default:
			return
		}
	}
}

func (p *Parser) consumeWhitespaceOnly() {
	for p.at(TokenWhitespace) {
		p.consume()
	}
}

// continuationAhead reports whether the current underscore is a line
// continuation marker, i.e. only whitespace sits between it and the
// line break.
func (p *Parser) continuationAhead() bool {
	for n := 1; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return false
		}
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenNewline:
			return true
		default:
			return false
		}
	}
}

// consumeUntil consumes tokens up to but excluding the target kind. A
// newline target does not stop at a continuation line break: the
// underscore before it keeps the logical line going.
func (p *Parser) consumeUntil(target TokenKind) {
	for {
		tok, ok := p.s.Current()
		if !ok {
			return
		}
		if tok.Kind == target {
			if target != TokenNewline || !p.newlineIsContinuation() {
				return
			}
		}
		p.consume()
	}
}

func (p *Parser) consumeUntilAfter(target TokenKind) {
	p.consumeUntil(target)
	if p.at(target) {
		p.consume()
	}
}

// newlineIsContinuation looks back from the current newline for an
// underscore with only whitespace in between.
func (p *Parser) newlineIsContinuation() bool {
	for i := p.s.Pos() - 1; i >= 0; i-- {
		tok, ok := p.s.At(i)
		if !ok {
			return false
		}
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenUnderscore:
			return true
		default:
			return false
		}
	}
	return false
}

// peekNextToken returns the kind of the next token past any whitespace,
// without consuming.
func (p *Parser) peekNextToken() (TokenKind, bool) {
	for n := 1; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return 0, false
		}
		if tok.Kind == TokenWhitespace {
			continue
		}
		return tok.Kind, true
	}
}

// peekNextKeyword is peekNextToken restricted to keywords; anything else
// yields no result. This is the lookahead that tells "End If" from a
// bare "End".
func (p *Parser) peekNextKeyword() (TokenKind, bool) {
	kind, ok := p.peekNextToken()
	if !ok || !kind.IsKeyword() {
		return 0, false
	}
	return kind, true
}

// peekKeywords collects up to max keywords following the current token,
// skipping whitespace, stopping at the first non-keyword. Used to see
// through modifier prefixes like "Public Static".
func (p *Parser) peekKeywords(max int) []TokenKind {
	var kinds []TokenKind
	for n := 1; len(kinds) < max; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			break
		}
		if tok.Kind == TokenWhitespace {
			continue
		}
		if !tok.Kind.IsKeyword() {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

// atLabel reports whether the current token starts a label: an
// identifier (or number) directly followed by a colon. Outside the
// header a few header-only keywords are ordinary names and may label a
// line too.
func (p *Parser) atLabel() bool {
	next, ok := p.peekNextToken()
	if !ok || next != TokenColon {
		return false
	}
	if !p.inHeader && p.at(TokenBegin) {
		return true
	}
	return p.at(TokenIdent) || p.atNumber()
}

// atAssignment looks ahead for an = before the end of the line, skipping
// only tokens that can form the left-hand side of an assignment. After a
// period any keyword can be a member name.
func (p *Parser) atAssignment() bool {
	lastWasPeriod := false
	for n := 0; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return false
		}
		switch tok.Kind {
		case TokenNewline, TokenComment, TokenRemComment:
			return false
		case TokenEq:
			return true
		case TokenDot:
			lastWasPeriod = true
			continue
		case TokenWhitespace:
			continue
		case TokenIdent, TokenLParen, TokenRParen, TokenComma, TokenDollar,
			TokenIntegerLiteral, TokenLongLiteral, TokenSingleLiteral,
			TokenDoubleLiteral, TokenDecimalLiteral, TokenStringLiteral:
			lastWasPeriod = false
			continue
		default:
			if lastWasPeriod && tok.Kind.IsKeyword() {
				lastWasPeriod = false
				continue
			}
			return false
		}
	}
}

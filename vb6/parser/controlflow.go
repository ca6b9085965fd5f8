package parser

func (p *Parser) atControlFlowKeyword() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenIf, TokenFor, TokenDo, TokenWhile, TokenSelect, TokenWith,
		TokenGoto, TokenGoSub, TokenReturn, TokenResume, TokenExit, TokenOn:
		return true
	}
	return false
}

func (p *Parser) parseControlFlowStatement() {
	switch kind, _ := p.currentKind(); kind {
	case TokenIf:
		p.parseIfStatement()
	case TokenFor:
		p.parseForStatement()
	case TokenDo:
		p.parseDoStatement()
	case TokenWhile:
		p.parseWhileStatement()
	case TokenSelect:
		p.parseSelectCaseStatement()
	case TokenWith:
		p.parseWithStatement()
	case TokenGoto:
		p.parseSimpleStatement(KindGotoStatement)
	case TokenGoSub:
		p.parseSimpleStatement(KindGoSubStatement)
	case TokenReturn:
		p.parseSimpleStatement(KindReturnStatement)
	case TokenResume:
		p.parseSimpleStatement(KindResumeStatement)
	case TokenExit:
		p.parseSimpleStatement(KindExitStatement)
	case TokenOn:
		p.parseOnStatement()
	}
}

// parseOnStatement splits the three On forms by what follows: On Error,
// On expr GoTo, On expr GoSub. The whole line stays raw either way.
func (p *Parser) parseOnStatement() {
	kind := KindOnErrorStatement
	if next, ok := p.peekNextKeyword(); !ok || next != TokenError {
		if p.lineContains(TokenGoSub) {
			kind = KindOnGoSubStatement
		} else {
			kind = KindOnGotoStatement
		}
	}
	p.parseSimpleStatement(kind)
}

// lineContains scans ahead to the end of the logical line for a token of
// the given kind, without consuming.
func (p *Parser) lineContains(kind TokenKind) bool {
	sawUnderscore := false
	for n := 0; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return false
		}
		switch tok.Kind {
		case kind:
			return true
		case TokenUnderscore:
			sawUnderscore = true
		case TokenNewline:
			if !sawUnderscore {
				return false
			}
			sawUnderscore = false
		case TokenWhitespace:
		default:
			sawUnderscore = false
		}
	}
}

// atEndOf reports whether the stream sits at "End <keyword>" for one of
// the given keywords.
func (p *Parser) atEndOf(keywords ...TokenKind) bool {
	if !p.at(TokenEnd) {
		return false
	}
	kw, ok := p.peekNextKeyword()
	if !ok {
		return false
	}
	for _, want := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}

// parseIfStatement distinguishes the block form from the single-line form
// by what follows Then: a line end means block.
func (p *Parser) parseIfStatement() {
	p.enterBody()
	p.b.StartNode(KindIfStatement)
	p.consume() // If
	p.consumeWhitespace()
	p.parseExpression()
	p.consumeWhitespace()
	if p.at(TokenThen) {
		p.consume()
	}
	if p.afterThenIsBlock() {
		p.parseIfBlock()
	} else {
		p.parseSingleLineIf()
	}
	p.b.FinishNode()
}

func (p *Parser) afterThenIsBlock() bool {
	for n := 0; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return true
		}
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenNewline, TokenComment, TokenRemComment:
			return true
		default:
			return false
		}
	}
}

func (p *Parser) parseIfBlock() {
	stop := func(p *Parser) bool {
		return p.at(TokenElseIf) || p.at(TokenElse) ||
			p.atEndOf(TokenIf, TokenSub, TokenFunction, TokenProperty)
	}
	p.parseStatementList(stop)
	for p.at(TokenElseIf) {
		p.b.StartNode(KindElseIfClause)
		p.consume() // ElseIf
		p.consumeWhitespace()
		p.parseExpression()
		p.consumeWhitespace()
		if p.at(TokenThen) {
			p.consume()
		}
		p.parseStatementList(stop)
		p.b.FinishNode()
	}
	if p.at(TokenElse) {
		p.b.StartNode(KindElseClause)
		p.consume() // Else
		p.parseStatementList(func(p *Parser) bool {
			return p.atEndOf(TokenIf, TokenSub, TokenFunction, TokenProperty)
		})
		p.b.FinishNode()
	}
	if p.atEndOf(TokenIf) {
		p.consume() // End
		p.consumeWhitespace()
		p.consume() // If
	}
}

func (p *Parser) parseSingleLineIf() {
	stop := func(p *Parser) bool {
		return p.atLogicalLineEnd() || p.at(TokenElse)
	}
	p.parseStatementList(stop)
	if p.at(TokenElse) {
		p.b.StartNode(KindElseClause)
		p.consume() // Else
		p.parseStatementList(func(p *Parser) bool { return p.atLogicalLineEnd() })
		p.b.FinishNode()
	}
}

func (p *Parser) parseForStatement() {
	p.enterBody()
	if next, ok := p.peekNextKeyword(); ok && next == TokenEach {
		p.parseForEachStatement()
		return
	}
	p.b.StartNode(KindForStatement)
	p.consume() // For
	p.consumeWhitespace()
	if p.at(TokenIdent) {
		p.consume()
	} else if p.atKeyword() {
		p.consumeAsIdent()
	}
	p.consumeWhitespace()
	if p.at(TokenEq) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
		p.consumeWhitespace()
	}
	if p.at(TokenTo) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
		p.consumeWhitespace()
	}
	if p.at(TokenStep) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
	}
	p.parseLoopBody(TokenNext)
	p.b.FinishNode()
}

func (p *Parser) parseForEachStatement() {
	p.b.StartNode(KindForEachStatement)
	p.consume() // For
	p.consumeWhitespace()
	p.consume() // Each
	p.consumeWhitespace()
	if p.at(TokenIdent) {
		p.consume()
	} else if p.atKeyword() {
		p.consumeAsIdent()
	}
	p.consumeWhitespace()
	if p.at(TokenIn) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
	}
	p.parseLoopBody(TokenNext)
	p.b.FinishNode()
}

// parseLoopBody runs a statement list up to the closing keyword and then
// claims the closer plus its counter or condition tail.
func (p *Parser) parseLoopBody(closer TokenKind) {
	p.parseStatementList(func(p *Parser) bool {
		return p.at(closer) || p.atEndOf(TokenSub, TokenFunction, TokenProperty)
	})
	if p.at(closer) {
		p.consume()
		p.consumeUntil(TokenNewline)
	}
}

func (p *Parser) parseDoStatement() {
	p.enterBody()
	p.b.StartNode(KindDoStatement)
	p.consume() // Do
	p.consumeWhitespace()
	if p.at(TokenWhile) || p.at(TokenUntil) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
	}
	p.parseStatementList(func(p *Parser) bool {
		return p.at(TokenLoop) || p.atEndOf(TokenSub, TokenFunction, TokenProperty)
	})
	if p.at(TokenLoop) {
		p.consume()
		p.consumeWhitespace()
		if p.at(TokenWhile) || p.at(TokenUntil) {
			p.consume()
			p.consumeWhitespace()
			p.parseExpression()
		}
	}
	p.b.FinishNode()
}

func (p *Parser) parseWhileStatement() {
	p.enterBody()
	p.b.StartNode(KindWhileStatement)
	p.consume() // While
	p.consumeWhitespace()
	p.parseExpression()
	p.parseStatementList(func(p *Parser) bool {
		return p.at(TokenWend) || p.atEndOf(TokenSub, TokenFunction, TokenProperty)
	})
	if p.at(TokenWend) {
		p.consume()
	}
	p.b.FinishNode()
}

func (p *Parser) parseSelectCaseStatement() {
	p.enterBody()
	p.b.StartNode(KindSelectCaseStatement)
	p.consume() // Select
	p.consumeWhitespace()
	if p.at(TokenCase) {
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
	}
	for !p.atEnd() {
		if kind, _ := p.currentKind(); kind.IsTrivia() {
			p.consume()
			continue
		}
		if p.atEndOf(TokenSelect) {
			p.consume() // End
			p.consumeWhitespace()
			p.consume() // Select
			break
		}
		if p.atEndOf(TokenSub, TokenFunction, TokenProperty) {
			break
		}
		if p.at(TokenCase) {
			p.parseCaseClause()
			continue
		}
		p.consumeUntilAfter(TokenNewline) // stray tokens before the first Case
	}
	p.b.FinishNode()
}

func (p *Parser) parseCaseClause() {
	kind := KindCaseClause
	if next, ok := p.peekNextKeyword(); ok && next == TokenElse {
		kind = KindCaseElseClause
	}
	p.b.StartNode(kind)
	p.consume() // Case
	if kind == KindCaseElseClause {
		p.consumeWhitespace()
		p.consume() // Else
	} else {
		p.consumeUntil(TokenNewline) // the value list stays raw
	}
	p.parseStatementList(func(p *Parser) bool {
		return p.at(TokenCase) ||
			p.atEndOf(TokenSelect, TokenSub, TokenFunction, TokenProperty)
	})
	p.b.FinishNode()
}

func (p *Parser) parseWithStatement() {
	p.enterBody()
	p.b.StartNode(KindWithStatement)
	p.consume() // With
	p.consumeWhitespace()
	p.parseExpression()
	p.parseStatementList(func(p *Parser) bool {
		return p.atEndOf(TokenWith, TokenSub, TokenFunction, TokenProperty)
	})
	if p.atEndOf(TokenWith) {
		p.consume() // End
		p.consumeWhitespace()
		p.consume() // With
	}
	p.b.FinishNode()
}

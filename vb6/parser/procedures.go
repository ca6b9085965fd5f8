package parser

func (p *Parser) parseSubStatement() {
	p.parseProcedure(KindSubStatement, TokenSub)
}

func (p *Parser) parseFunctionStatement() {
	p.parseProcedure(KindFunctionStatement, TokenFunction)
}

func (p *Parser) parsePropertyStatement() {
	p.parseProcedure(KindPropertyStatement, TokenProperty)
}

// parseProcedure reads a procedure from its modifiers through End <kw>.
// The signature gets structure (name, parameter list, return type); the
// body is a statement list parsed by the shared block machinery.
func (p *Parser) parseProcedure(kind Kind, keyword TokenKind) {
	p.enterBody()
	p.b.StartNode(kind)
	for p.atProcedureModifier() {
		p.consume()
		p.consumeWhitespace()
	}
	if p.at(keyword) {
		p.consume()
	}
	p.consumeWhitespace()
	if keyword == TokenProperty {
		if p.at(TokenGet) || p.at(TokenLet) || p.at(TokenSet) {
			p.consume()
			p.consumeWhitespace()
		}
	}
	switch {
	case p.atKeywordDollar():
		p.consumeKeywordDollarAsIdent()
	case p.at(TokenIdent):
		p.consume()
	case p.atKeyword():
		p.consumeAsIdent() // procedure named after a keyword
	}
	p.consumeWhitespace()
	if p.at(TokenLParen) {
		p.parseParameterList()
	}
	p.consumeWhitespace()
	if p.at(TokenAs) {
		p.consume()
		p.consumeWhitespace()
		p.parseTypeName()
	}
	p.consumeUntil(TokenNewline)
	p.parseStatementList(func(p *Parser) bool {
		return p.atEndOf(keyword)
	})
	if p.atEndOf(keyword) {
		p.consume() // End
		p.consumeWhitespace()
		p.consume() // Sub / Function / Property
	}
	p.b.FinishNode()
}

func (p *Parser) atProcedureModifier() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenPublic, TokenPrivate, TokenFriend, TokenStatic:
		return true
	}
	return false
}

func (p *Parser) parseParameterList() {
	p.b.StartNode(KindParameterList)
	p.consume() // (
	for !p.atEnd() {
		p.consumeWhitespace()
		if p.at(TokenRParen) {
			p.consume()
			break
		}
		if p.atLogicalLineEnd() {
			break // unterminated list, leave the line end for the caller
		}
		mark := p.s.Checkpoint()
		p.parseParameter()
		p.consumeWhitespace()
		if p.at(TokenComma) {
			p.consume()
			continue
		}
		if p.at(TokenRParen) {
			p.consume()
			break
		}
		if p.s.Checkpoint() == mark {
			p.consume() // force progress past an unparseable parameter
		}
	}
	p.b.FinishNode()
}

func (p *Parser) parseParameter() {
	p.b.StartNode(KindParameter)
	for p.atParameterModifier() {
		p.consume()
		p.consumeWhitespace()
	}
	switch {
	case p.at(TokenIdent):
		p.consume()
	case p.atKeyword():
		p.consumeAsIdent()
	}
	if p.at(TokenLParen) { // array marker: name()
		p.consume()
		p.consumeWhitespace()
		if p.at(TokenRParen) {
			p.consume()
		}
	}
	p.consumeWhitespace()
	if p.at(TokenAs) {
		p.consume()
		p.consumeWhitespace()
		p.parseTypeName()
		p.consumeWhitespace()
	}
	if p.at(TokenEq) { // Optional default value
		p.consume()
		p.consumeWhitespace()
		p.parseExpression()
	}
	p.b.FinishNode()
}

func (p *Parser) atParameterModifier() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenOptional, TokenByVal, TokenByRef, TokenParamArray:
		return true
	}
	return false
}

package parser

import "strings"

// Expression parsing is precedence climbing over the token stream. An
// expression ends wherever the grammar around it says so: any token that
// is not a binary operator (Then, To, Step, a newline, a comma) simply
// terminates the climb, so callers never pass an explicit boundary.

// Binding powers follow the classic BASIC operator table. Higher binds
// tighter; comparison operators share one level and associate left.
const (
	precImp = iota
	precEqv
	precXor
	precOr
	precAnd
	precComparison
	precConcat
	precAddSub
	precMod
	precIntDiv
	precMulDiv
	precPower
)

func binaryPrecedence(tok Token) (int, bool) {
	switch tok.Kind {
	case TokenCaret:
		return precPower, true
	case TokenStar, TokenSlash:
		return precMulDiv, true
	case TokenBackslash:
		return precIntDiv, true
	case TokenMod:
		return precMod, true
	case TokenPlus, TokenMinus:
		return precAddSub, true
	case TokenAmpersand:
		return precConcat, true
	case TokenEq, TokenNE, TokenLT, TokenGT, TokenLE, TokenGE, TokenIs:
		return precComparison, true
	case TokenAnd:
		return precAnd, true
	case TokenOr:
		return precOr, true
	case TokenXor:
		return precXor, true
	case TokenEqv:
		return precEqv, true
	case TokenImp:
		return precImp, true
	case TokenIdent:
		if strings.EqualFold(tok.Text, "Like") {
			return precComparison, true
		}
	}
	return 0, false
}

// parseExpression reports whether it produced an expression node, so
// statement handlers can tell an empty slot from a parsed one.
func (p *Parser) parseExpression() bool {
	return p.parseBinaryExpression(precImp)
}

func (p *Parser) parseBinaryExpression(minPrec int) bool {
	cp := p.b.Checkpoint()
	if !p.parseUnaryExpression() {
		return false
	}
	for {
		op, ok := p.peekPastLineSpace()
		if !ok {
			return true
		}
		prec, isOp := binaryPrecedence(op)
		if !isOp || prec < minPrec {
			return true
		}
		p.b.StartNodeAt(cp, KindBinaryExpression)
		p.consumeWhitespace()
		p.consume() // operator
		p.consumeWhitespace()
		p.parseOperand(prec+1, op)
		p.b.FinishNode()
	}
}

// parseOperand parses the expression an operator requires. An empty
// operand slot is the one place an expression records its own failure:
// the operator promised a right-hand side the line never delivered.
func (p *Parser) parseOperand(minPrec int, op Token) {
	if !p.parseBinaryExpression(minPrec) {
		p.failures = append(p.failures, failureAt(FailMissingExpression, op, op.Text))
	}
}

// peekPastLineSpace returns the next token on the same logical line,
// looking through whitespace and underscore continuations but never past
// a plain line break.
func (p *Parser) peekPastLineSpace() (Token, bool) {
	sawUnderscore := false
	for n := 0; ; n++ {
		tok, ok := p.s.Peek(n)
		if !ok {
			return Token{}, false
		}
		switch tok.Kind {
		case TokenWhitespace:
		case TokenUnderscore:
			sawUnderscore = true
		case TokenNewline:
			if !sawUnderscore {
				return Token{}, false
			}
			sawUnderscore = false
		default:
			return tok, true
		}
	}
}

// parseUnaryExpression reports whether it produced anything. Failing to
// match is not an error here: tolerant callers treat an empty expression
// slot as missing and move on.
func (p *Parser) parseUnaryExpression() bool {
	tok, ok := p.s.Current()
	if !ok {
		return false
	}
	switch tok.Kind {
	case TokenNot:
		p.b.StartNode(KindUnaryExpression)
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precComparison, tok)
		p.b.FinishNode()
		return true
	case TokenMinus, TokenPlus:
		p.b.StartNode(KindUnaryExpression)
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precPower, tok)
		p.b.FinishNode()
		return true
	case TokenAddressOf:
		p.b.StartNode(KindAddressOfExpression)
		p.consume()
		p.consumeWhitespace()
		p.parseNameExpression()
		p.b.FinishNode()
		return true
	case TokenNew:
		p.b.StartNode(KindNewExpression)
		p.consume()
		p.consumeWhitespace()
		p.parseTypeName()
		p.b.FinishNode()
		return true
	}
	return p.parsePrimaryExpression()
}

func (p *Parser) parsePrimaryExpression() bool {
	tok, ok := p.s.Current()
	if !ok {
		return false
	}
	switch tok.Kind {
	case TokenLParen:
		p.b.StartNode(KindParenthesizedExpression)
		p.consume()
		p.consumeWhitespace()
		p.parseBinaryExpression(precImp)
		p.consumeWhitespace()
		if p.at(TokenRParen) {
			p.consume()
		}
		p.b.FinishNode()
		return true
	case TokenIntegerLiteral, TokenLongLiteral, TokenSingleLiteral,
		TokenDoubleLiteral, TokenDecimalLiteral, TokenStringLiteral,
		TokenDateTimeLiteral, TokenTrue, TokenFalse, TokenNull, TokenEmpty:
		p.b.StartNode(KindLiteralExpression)
		p.consume()
		p.b.FinishNode()
		return true
	case TokenMe, TokenIdent:
		return p.parseNameExpression()
	}
	if tok.Kind.IsKeyword() && !structuralKeyword(tok.Kind) {
		// built-in functions like Len or Date read as names here
		return p.parseNameExpression()
	}
	return false
}

// structuralKeyword lists keywords that can only ever delimit the
// surrounding statement, so an expression must not claim them as names.
func structuralKeyword(kind TokenKind) bool {
	switch kind {
	case TokenThen, TokenElse, TokenElseIf, TokenEnd, TokenLoop, TokenWend,
		TokenNext, TokenCase, TokenTo, TokenStep, TokenIn, TokenAs,
		TokenWhile, TokenUntil:
		return true
	}
	return false
}

// parseNameExpression reads an identifier and wraps each postfix (member
// access, bang access, call arguments) around what came before, building
// left-nested chains like a.b(1).c.
func (p *Parser) parseNameExpression() bool {
	if tok, ok := p.s.Current(); ok && tok.Kind == TokenIdent &&
		strings.EqualFold(tok.Text, "TypeOf") {
		p.parseTypeOfExpression()
		return true
	}
	cp := p.b.Checkpoint()
	if !p.consumeExpressionName() {
		return false
	}
	for {
		switch {
		case p.at(TokenDot):
			p.b.StartNodeAt(cp, KindMemberAccessExpression)
			p.consume() // .
			p.consumeMemberName()
			p.b.FinishNode()
		case p.at(TokenBang) && p.bangIsMemberAccess():
			p.b.StartNodeAt(cp, KindMemberAccessExpression)
			p.consume() // !
			p.consumeMemberName()
			p.b.FinishNode()
		case p.at(TokenLParen):
			p.b.StartNodeAt(cp, KindCallExpression)
			p.parseArgumentList()
			p.b.FinishNode()
		default:
			return true
		}
	}
}

// consumeExpressionName wraps the base name in an identifier node. Type
// suffix characters glued to the name come along with it.
func (p *Parser) consumeExpressionName() bool {
	p.b.StartNode(KindIdentifierExpression)
	ok := p.consumeMemberName()
	p.b.FinishNode()
	return ok
}

func (p *Parser) consumeMemberName() bool {
	tok, ok := p.s.Current()
	if !ok {
		return false
	}
	switch {
	case p.atKeywordDollar():
		p.consumeKeywordDollarAsIdent()
		return true
	case tok.Kind == TokenIdent, tok.Kind == TokenMe:
		p.consume()
	case tok.Kind.IsKeyword():
		p.consumeAsIdent()
	default:
		return false
	}
	if suffix, ok := p.s.Current(); ok && typeSuffix(suffix.Kind) &&
		suffix.Offset == tok.Offset+len(tok.Text) {
		p.consume()
	}
	return true
}

func typeSuffix(kind TokenKind) bool {
	switch kind {
	case TokenDollar, TokenPercent, TokenAmpersand, TokenHash, TokenAt:
		return true
	}
	return false
}

// bangIsMemberAccess distinguishes dictionary access (rs!Name) from a
// trailing Single suffix: access needs a name right after the bang.
func (p *Parser) bangIsMemberAccess() bool {
	next, ok := p.s.Peek(1)
	if !ok {
		return false
	}
	return next.Kind == TokenIdent || next.Kind.IsKeyword()
}

func (p *Parser) parseTypeOfExpression() {
	p.b.StartNode(KindTypeOfExpression)
	p.consumeAsIdent() // TypeOf
	p.consumeWhitespace()
	p.parseNameExpression()
	p.consumeWhitespace()
	if p.at(TokenIs) {
		p.consume()
		p.consumeWhitespace()
		p.parseTypeName()
	}
	p.b.FinishNode()
}

func (p *Parser) parseArgumentList() {
	p.b.StartNode(KindArgumentList)
	p.consume() // (
	for !p.atEnd() {
		p.consumeWhitespace()
		if p.at(TokenRParen) {
			p.consume()
			break
		}
		if p.atLogicalLineEnd() {
			break // unterminated call, leave the line end for the caller
		}
		if p.at(TokenComma) {
			p.b.StartNode(KindArgument) // an omitted argument
			p.b.FinishNode()
			p.consume()
			continue
		}
		mark := p.s.Checkpoint()
		p.parseArgument()
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
			p.consume() // force progress past an unparseable argument
		}
	}
	p.b.FinishNode()
}

func (p *Parser) parseArgument() {
	p.b.StartNode(KindArgument)
	p.parseBinaryExpression(precImp)
	if p.at(TokenColon) {
		// named argument: the name parsed as an expression, now := value
		if next, ok := p.s.Peek(1); ok && next.Kind == TokenEq {
			p.consume() // :
			p.consume() // =
			p.consumeWhitespace()
			p.parseBinaryExpression(precImp)
		}
	}
	p.b.FinishNode()
}

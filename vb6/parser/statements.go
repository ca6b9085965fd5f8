package parser

import "strings"

// Statement handlers below share one tolerance rule: a handler claims the
// tokens it understands and leaves everything else on the line for the
// dispatch loop to mop up. No handler ever backtracks past a consumed
// token, so the tree text always stays aligned with the input.

func (p *Parser) parseAttributeStatement() {
	p.b.StartNode(KindAttributeStatement)
	p.consume() // Attribute
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

func (p *Parser) parseOptionStatement() {
	p.enterBody()
	p.b.StartNode(KindOptionStatement)
	p.consume() // Option
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

func (p *Parser) parseImplementsStatement() {
	p.parseSimpleStatement(KindImplementsStatement)
}

func (p *Parser) parseDeclareStatement() {
	p.enterBody()
	p.b.StartNode(KindDeclareStatement)
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

func (p *Parser) parseEventStatement() {
	p.enterBody()
	p.b.StartNode(KindEventStatement)
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

func (p *Parser) parseTypeStatement() {
	p.enterBody()
	p.parseKeywordBlock(KindTypeStatement, TokenType)
}

func (p *Parser) parseEnumStatement() {
	p.enterBody()
	p.parseKeywordBlock(KindEnumStatement, TokenEnum)
}

// parseKeywordBlock handles the Type/Enum shape: a header line, raw member
// lines, and a closing End <keyword>. Members stay as plain token leaves.
func (p *Parser) parseKeywordBlock(kind Kind, endKeyword TokenKind) {
	p.b.StartNode(kind)
	p.consumeUntilAfter(TokenNewline)
	for !p.atEnd() {
		if k, _ := p.currentKind(); k.IsTrivia() {
			p.consume()
			continue
		}
		if p.at(TokenEnd) {
			if kw, ok := p.peekNextKeyword(); ok && kw == endKeyword {
				break
			}
		}
		p.consumeUntilAfter(TokenNewline)
	}
	p.consumeUntil(TokenNewline) // End <keyword>
	p.b.FinishNode()
}

func (p *Parser) atDefType() bool {
	kind, ok := p.currentKind()
	return ok && kind >= TokenDefBool && kind <= TokenDefVar
}

func (p *Parser) parseDefTypeStatement() {
	p.parseSimpleStatement(KindDefTypeStatement)
}

// parseSimpleStatement covers the long tail of one-line statements whose
// arguments the tree keeps as raw tokens.
func (p *Parser) parseSimpleStatement(kind Kind) {
	p.enterBody()
	p.b.StartNode(kind)
	p.consume() // statement keyword
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

var builtinStatementKinds = map[TokenKind]Kind{
	TokenAppActivate:   KindAppActivateStatement,
	TokenBeep:          KindBeepStatement,
	TokenChDir:         KindChDirStatement,
	TokenChDrive:       KindChDriveStatement,
	TokenClose:         KindCloseStatement,
	TokenDate:          KindDateStatement,
	TokenDeleteSetting: KindDeleteSettingStatement,
	TokenError:         KindErrorStatement,
	TokenFileCopy:      KindFileCopyStatement,
	TokenGet:           KindGetStatement,
	TokenInput:         KindInputStatement,
	TokenKill:          KindKillStatement,
	TokenLine:          KindLineInputStatement,
	TokenLoad:          KindLoadStatement,
	TokenUnload:        KindUnloadStatement,
	TokenLock:          KindLockStatement,
	TokenUnlock:        KindUnlockStatement,
	TokenLSet:          KindLSetStatement,
	TokenRSet:          KindRSetStatement,
	TokenMid:           KindMidStatement,
	TokenMidB:          KindMidBStatement,
	TokenMkDir:         KindMkDirStatement,
	TokenRmDir:         KindRmDirStatement,
	TokenName:          KindNameStatement,
	TokenOpen:          KindOpenStatement,
	TokenPrint:         KindPrintStatement,
	TokenPut:           KindPutStatement,
	TokenRandomize:     KindRandomizeStatement,
	TokenReset:         KindResetStatement,
	TokenSavePicture:   KindSavePictureStatement,
	TokenSaveSetting:   KindSaveSettingStatement,
	TokenSeek:          KindSeekStatement,
	TokenSendKeys:      KindSendKeysStatement,
	TokenSetAttr:       KindSetAttrStatement,
	TokenStop:          KindStopStatement,
	TokenTime:          KindTimeStatement,
	TokenWidth:         KindWidthStatement,
	TokenWrite:         KindWriteStatement,
}

func (p *Parser) atBuiltinKeyword() bool {
	kind, ok := p.currentKind()
	if !ok {
		return false
	}
	_, found := builtinStatementKinds[kind]
	return found
}

func (p *Parser) parseBuiltinStatement() {
	kind, _ := p.currentKind()
	p.parseSimpleStatement(builtinStatementKinds[kind])
}

func (p *Parser) atObjectStatementKeyword() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenCall, TokenSet, TokenRaiseEvent, TokenLet:
		return true
	}
	return false
}

func (p *Parser) parseObjectStatement() {
	kind, _ := p.currentKind()
	switch kind {
	case TokenCall:
		p.parseSimpleStatement(KindCallStatement)
	case TokenRaiseEvent:
		p.parseSimpleStatement(KindRaiseEventStatement)
	case TokenSet:
		p.parseSetStatement()
	case TokenLet:
		p.parseLetStatement()
	}
}

func (p *Parser) parseSetStatement() {
	p.enterBody()
	p.b.StartNode(KindSetStatement)
	p.consume() // Set
	p.consumeUntil(TokenEq)
	if eq, ok := p.s.Current(); ok && eq.Kind == TokenEq {
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precImp, eq)
	}
	p.b.FinishNode()
}

func (p *Parser) parseLetStatement() {
	p.enterBody()
	p.b.StartNode(KindLetStatement)
	p.consume() // Let
	p.consumeUntil(TokenEq)
	if eq, ok := p.s.Current(); ok && eq.Kind == TokenEq {
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precImp, eq)
	}
	p.b.FinishNode()
}

func (p *Parser) atArrayStatementKeyword() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenReDim, TokenErase:
		return true
	}
	return false
}

func (p *Parser) parseArrayStatement() {
	if p.at(TokenErase) {
		p.parseSimpleStatement(KindEraseStatement)
		return
	}
	p.enterBody()
	p.b.StartNode(KindReDimStatement)
	p.consume() // ReDim
	p.consumeWhitespace()
	if p.at(TokenPreserve) {
		p.consume()
		p.consumeWhitespace()
	}
	for !p.atEnd() && !p.atLogicalLineEnd() {
		p.parseDeclarator()
		p.consumeWhitespace()
		if !p.at(TokenComma) {
			break
		}
		p.consume()
		p.consumeWhitespace()
	}
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

// parseDeclaration handles Dim/Const and modifier-led variable lines. The
// node kind tracks whether Const appears in the modifier run.
func (p *Parser) parseDeclaration() {
	p.enterBody()
	kind := KindDimStatement
	if p.at(TokenConst) {
		kind = KindConstStatement
	} else {
		for _, kw := range p.peekKeywords(2) {
			if kw == TokenConst {
				kind = KindConstStatement
			}
		}
	}
	p.b.StartNode(kind)
	for p.atDeclarationModifier() {
		p.consume()
		p.consumeWhitespace()
	}
	for !p.atEnd() && !p.atLogicalLineEnd() {
		mark := p.s.Checkpoint()
		p.parseDeclarator()
		p.consumeWhitespace()
		if p.at(TokenComma) {
			p.consume()
			p.consumeWhitespace()
			continue
		}
		if p.s.Checkpoint() == mark {
			p.consume() // force progress on a malformed declarator
		}
		break
	}
	p.consumeUntil(TokenNewline)
	p.b.FinishNode()
}

func (p *Parser) atDeclarationModifier() bool {
	switch kind, _ := p.currentKind(); kind {
	case TokenDim, TokenConst, TokenPrivate, TokenPublic, TokenFriend, TokenStatic:
		return true
	}
	return false
}

// parseDeclarator reads one "name(bounds) As New Type = init" unit. Every
// piece is optional past the name; keywords double as names.
func (p *Parser) parseDeclarator() {
	if p.at(TokenWithEvents) {
		p.consume()
		p.consumeWhitespace()
	}
	switch {
	case p.at(TokenIdent):
		p.consume()
	case p.atKeyword():
		p.consumeAsIdent()
	default:
		return
	}
	if p.at(TokenLParen) {
		p.parseArrayBounds()
	}
	p.consumeWhitespace()
	if p.at(TokenAs) {
		p.consume()
		p.consumeWhitespace()
		if p.at(TokenNew) {
			p.consume()
			p.consumeWhitespace()
		}
		p.parseTypeName()
		p.consumeWhitespace()
	}
	if eq, ok := p.s.Current(); ok && eq.Kind == TokenEq {
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precImp, eq)
	}
}

func (p *Parser) parseArrayBounds() {
	p.consume() // (
	for !p.atEnd() && !p.atLogicalLineEnd() {
		p.consumeWhitespace()
		if p.at(TokenRParen) {
			break
		}
		mark := p.s.Checkpoint()
		p.parseExpression()
		p.consumeWhitespace()
		if p.at(TokenTo) {
			p.consume()
			p.consumeWhitespace()
			p.parseExpression()
			p.consumeWhitespace()
		}
		if p.at(TokenComma) {
			p.consume()
			continue
		}
		if p.s.Checkpoint() == mark {
			p.consume() // force progress past an unparseable bound
			continue
		}
		break
	}
	if p.at(TokenRParen) {
		p.consume()
	}
}

// parseTypeName reads a possibly dotted type reference plus the
// fixed-length string form "String * n".
func (p *Parser) parseTypeName() {
	switch {
	case p.at(TokenIdent):
		p.consume()
	case p.atKeyword():
		p.consume()
	default:
		return
	}
	for p.at(TokenDot) {
		p.consume()
		switch {
		case p.at(TokenIdent):
			p.consume()
		case p.atKeyword():
			p.consumeAsIdent()
		default:
			return
		}
	}
	if next, ok := p.peekNextToken(); ok && next == TokenStar {
		p.consumeWhitespace()
		p.consume() // *
		p.consumeWhitespace()
		if p.atNumber() {
			p.consume()
		}
	}
}

func (p *Parser) parseLabelStatement() {
	p.enterBody()
	p.b.StartNode(KindLabelStatement)
	switch {
	case p.at(TokenIdent) || p.atNumber():
		p.consume()
	default:
		p.consumeAsIdent() // a keyword reused as a label name
	}
	p.consumeWhitespaceOnly()
	if p.at(TokenColon) {
		p.consume()
	}
	p.b.FinishNode()
}

func (p *Parser) parseAssignmentStatement() {
	p.enterBody()
	p.b.StartNode(KindAssignmentStatement)
	p.consumeUntil(TokenEq)
	if eq, ok := p.s.Current(); ok && eq.Kind == TokenEq {
		p.consume()
		p.consumeWhitespace()
		p.parseOperand(precImp, eq)
	}
	p.b.FinishNode()
}

// parseImplicitCallStatement handles the call form without the Call
// keyword: a name expression followed by parenthesis-free arguments, as
// in `MsgBox "hello"` or `frm.Show vbModal`. A bare name on its own
// line is a call with no arguments.
func (p *Parser) parseImplicitCallStatement() {
	p.enterBody()
	p.b.StartNode(KindCallStatement)
	if !p.parseNameExpression() {
		p.consume() // cannot happen for the tokens that route here
	}
	p.consumeWhitespace()
	if !p.atEnd() && !p.atLogicalLineEnd() && !p.at(TokenColon) {
		p.parseArgumentSpan()
	}
	p.b.FinishNode()
}

// parseArgumentSpan reads comma-separated arguments up to the end of
// the logical line or a statement separator. Same shape as the
// parenthesized list, minus the parentheses.
func (p *Parser) parseArgumentSpan() {
	p.b.StartNode(KindArgumentList)
	for !p.atEnd() {
		p.consumeWhitespace()
		if p.atLogicalLineEnd() || p.at(TokenColon) {
			break
		}
		if kind, ok := p.currentKind(); ok && structuralKeyword(kind) {
			break // Else on a single-line If, or a block closer
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
		if p.s.Checkpoint() == mark {
			p.consume() // force progress past an unparseable argument
		}
	}
	p.b.FinishNode()
}

// Library names that take a $ suffix. Keywords are matched by kind,
// plain built-in function names by spelling.
var dollarKeywords = map[TokenKind]bool{
	TokenError:  true,
	TokenLen:    true,
	TokenMid:    true,
	TokenMidB:   true,
	TokenDate:   true,
	TokenString: true,
}

var dollarIdents = map[string]bool{
	"CHR":     true,
	"CHRB":    true,
	"CHRW":    true,
	"COMMAND": true,
	"CURDIR":  true,
	"DATE":    true,
	"ENVIRON": true,
	"ERROR":   true,
	"FORMAT":  true,
	"HEX":     true,
	"LCASE":   true,
	"LEFT":    true,
	"LEFTB":   true,
	"LTRIM":   true,
	"MID":     true,
	"MIDB":    true,
	"OCT":     true,
	"RIGHT":   true,
	"RIGHTB":  true,
	"RTRIM":   true,
	"SPACE":   true,
	"STR":     true,
	"TIME":    true,
	"TRIM":    true,
	"UCASE":   true,
}

// atKeywordDollar reports whether the current token plus an immediately
// following $ form one library name, like Mid$ or Trim$.
func (p *Parser) atKeywordDollar() bool {
	tok, ok := p.s.Current()
	if !ok {
		return false
	}
	next, ok := p.s.Peek(1)
	if !ok || next.Kind != TokenDollar {
		return false
	}
	if dollarKeywords[tok.Kind] {
		return true
	}
	return tok.Kind == TokenIdent && dollarIdents[strings.ToUpper(tok.Text)]
}

// consumeKeywordDollarAsIdent merges the name and its $ suffix into a
// single identifier leaf.
func (p *Parser) consumeKeywordDollarAsIdent() {
	p.b.ConsumeMergedAs(KindForToken(TokenIdent), 2)
}

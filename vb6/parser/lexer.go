package parser

// Lexer scans a named source buffer into a flat token sequence. Every byte
// of the input ends up in exactly one token, including whitespace, comments
// and line continuations, so the token texts concatenate back into the
// input. Unrecognized bytes become single Unknown tokens plus a failure;
// the lexer never aborts.
type Lexer struct {
	file     string
	input    string
	pos      int
	line     int
	failures []Failure
}

// Identifiers past this length are legal to lex but flagged, matching the
// legacy compiler's limit.
const maxIdentifierLen = 255

func NewLexer(file, input string) *Lexer {
	return &Lexer{file: file, input: input, line: 1}
}

// Tokenize runs the lexer over the whole input. The value is always
// present; failures describe unknown bytes, overlong identifiers and
// unterminated literals.
func Tokenize(file, input string) Result[[]Token] {
	return NewLexer(file, input).Tokenize()
}

func (l *Lexer) Tokenize() Result[[]Token] {
	var tokens []Token
	for l.pos < len(l.input) {
		start := l.pos
		line := l.line
		kind := l.scanToken()
		if l.pos == start {
			// Safety net so a scanner bug cannot loop forever.
			l.pos++
			kind = TokenUnknown
		}
		tokens = append(tokens, Token{Kind: kind, Text: l.input[start:l.pos], Offset: start, Line: line})
	}
	return OK(tokens, l.failures...)
}

func (l *Lexer) scanToken() TokenKind {
	c := l.input[l.pos]
	switch {
	case c == '\n' || c == '\r':
		return l.scanNewline()
	case c == '\'':
		return l.scanLineComment(TokenComment)
	case l.atRemComment():
		return l.scanLineComment(TokenRemComment)
	case c == '"':
		return l.scanStringLiteral()
	case c == '#':
		if kind, ok := l.scanDateTimeLiteral(); ok {
			return kind
		}
		return l.scanSymbol()
	case isLetter(c):
		return l.scanIdentOrKeyword()
	case isDigit(c):
		return l.scanNumber()
	case c == '&' && l.atRadixLiteral():
		return l.scanRadixNumber()
	case c == ' ' || c == '\t':
		return l.scanWhitespace()
	case isSymbolStart(c):
		return l.scanSymbol()
	default:
		l.pos++
		l.fail(FailUnknownToken, l.pos-1, l.line, string(c))
		return TokenUnknown
	}
}

func (l *Lexer) scanNewline() TokenKind {
	if l.input[l.pos] == '\r' {
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '\n' {
			l.pos++
		}
	} else {
		l.pos++
	}
	l.line++
	return TokenNewline
}

func (l *Lexer) scanWhitespace() TokenKind {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c != ' ' && c != '\t' {
			break
		}
		l.pos++
	}
	return TokenWhitespace
}

// atRemComment checks for the REM comment form. The word must stand alone:
// "Remote" is an identifier, not a comment.
func (l *Lexer) atRemComment() bool {
	if l.pos+3 > len(l.input) {
		return false
	}
	if lower(l.input[l.pos]) != 'r' || lower(l.input[l.pos+1]) != 'e' || lower(l.input[l.pos+2]) != 'm' {
		return false
	}
	if l.pos+3 == len(l.input) {
		return true
	}
	return !isIdentByte(l.input[l.pos+3])
}

func (l *Lexer) scanLineComment(kind TokenKind) TokenKind {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '\n' || c == '\r' {
			break
		}
		l.pos++
	}
	return kind
}

func (l *Lexer) scanStringLiteral() TokenKind {
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '\n' || c == '\r' {
			l.fail(FailUnexpectedEOF, l.pos, l.line, "unterminated string literal")
			return TokenStringLiteral
		}
		if c == '"' {
			// A doubled quote is an escaped quote inside the literal.
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '"' {
				l.pos += 2
				continue
			}
			l.pos++
			return TokenStringLiteral
		}
		l.pos++
	}
	l.fail(FailUnexpectedEOF, l.pos, l.line, "unterminated string literal")
	return TokenStringLiteral
}

// scanDateTimeLiteral recognizes #date#, #time# and #date time# forms.
// Anything that does not close on the same line is not a literal and the
// octothorpe lexes as a plain symbol instead.
func (l *Lexer) scanDateTimeLiteral() (TokenKind, bool) {
	end := l.pos + 1
	sawDigit := false
	for end < len(l.input) {
		c := l.input[end]
		if c == '#' {
			break
		}
		if c == '\n' || c == '\r' {
			return TokenUnknown, false
		}
		if !isDateTimeByte(c) {
			return TokenUnknown, false
		}
		if isDigit(c) {
			sawDigit = true
		}
		end++
	}
	if end >= len(l.input) || !sawDigit || !validDateTimeBody(l.input[l.pos+1:end]) {
		return TokenUnknown, false
	}
	l.pos = end + 1
	return TokenDateTimeLiteral, true
}

func (l *Lexer) scanIdentOrKeyword() TokenKind {
	start := l.pos
	for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
		l.pos++
	}
	text := l.input[start:l.pos]
	if kind := LookupKeyword(text); kind != TokenIdent {
		return kind
	}
	if len(text) > maxIdentifierLen {
		l.fail(FailIdentifierTooLong, start, l.line, text[:16]+"...")
	}
	return TokenIdent
}

func (l *Lexer) scanNumber() TokenKind {
	kind := TokenIntegerLiteral
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' &&
		l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		kind = TokenSingleLiteral
	}
	if l.pos < len(l.input) && (lower(l.input[l.pos]) == 'e' || lower(l.input[l.pos]) == 'd') {
		// Exponent only counts when digits follow, so "1e" stays "1","e".
		probe := l.pos + 1
		if probe < len(l.input) && (l.input[probe] == '+' || l.input[probe] == '-') {
			probe++
		}
		if probe < len(l.input) && isDigit(l.input[probe]) {
			l.pos = probe
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
			kind = TokenSingleLiteral
		}
	}
	if l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '%':
			l.pos++
			kind = TokenIntegerLiteral
		case '&':
			l.pos++
			kind = TokenLongLiteral
		case '!':
			l.pos++
			kind = TokenSingleLiteral
		case '#':
			l.pos++
			kind = TokenDoubleLiteral
		case '@':
			l.pos++
			kind = TokenDecimalLiteral
		}
	}
	return kind
}

func (l *Lexer) atRadixLiteral() bool {
	if l.pos+2 >= len(l.input) {
		return false
	}
	r := lower(l.input[l.pos+1])
	if r == 'h' {
		return isHexDigit(l.input[l.pos+2])
	}
	if r == 'o' {
		return l.input[l.pos+2] >= '0' && l.input[l.pos+2] <= '7'
	}
	return false
}

func (l *Lexer) scanRadixNumber() TokenKind {
	hex := lower(l.input[l.pos+1]) == 'h'
	l.pos += 2
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if hex && !isHexDigit(c) {
			break
		}
		if !hex && (c < '0' || c > '7') {
			break
		}
		l.pos++
	}
	if l.pos < len(l.input) && (l.input[l.pos] == '&' || l.input[l.pos] == '%') {
		l.pos++
	}
	return TokenLongLiteral
}

func (l *Lexer) scanSymbol() TokenKind {
	if l.pos+1 < len(l.input) {
		switch l.input[l.pos : l.pos+2] {
		case "<>":
			l.pos += 2
			return TokenNE
		case "<=":
			l.pos += 2
			return TokenLE
		case ">=":
			l.pos += 2
			return TokenGE
		}
	}
	kind, ok := symbolKinds[l.input[l.pos]]
	if !ok {
		l.pos++
		l.fail(FailUnknownToken, l.pos-1, l.line, string(l.input[l.pos-1]))
		return TokenUnknown
	}
	l.pos++
	return kind
}

func (l *Lexer) fail(kind FailureKind, offset, line int, detail string) {
	l.failures = append(l.failures, Failure{
		Kind:      kind,
		Offset:    offset,
		LineStart: line,
		LineEnd:   line,
		Detail:    detail,
	})
}

var symbolKinds = map[byte]TokenKind{
	'=':  TokenEq,
	'<':  TokenLT,
	'>':  TokenGT,
	'(':  TokenLParen,
	')':  TokenRParen,
	'{':  TokenLBrace,
	'}':  TokenRBrace,
	'[':  TokenLBracket,
	']':  TokenRBracket,
	',':  TokenComma,
	'+':  TokenPlus,
	'-':  TokenMinus,
	'*':  TokenStar,
	'/':  TokenSlash,
	'\\': TokenBackslash,
	'^':  TokenCaret,
	'.':  TokenDot,
	':':  TokenColon,
	';':  TokenSemicolon,
	'&':  TokenAmpersand,
	'$':  TokenDollar,
	'%':  TokenPercent,
	'#':  TokenHash,
	'!':  TokenBang,
	'@':  TokenAt,
	'_':  TokenUnderscore,
}

func isSymbolStart(c byte) bool {
	_, ok := symbolKinds[c]
	return ok || c == '<' || c == '>'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (lower(c) >= 'a' && lower(c) <= 'f')
}

func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isDateTimeByte(c byte) bool {
	return isDigit(c) || c == '/' || c == ':' || c == ' ' || c == '-' ||
		lower(c) == 'a' || lower(c) == 'p' || lower(c) == 'm'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// validDateTimeBody accepts "M/d/yyyy", "H:mm", "H:mm:ss", each optionally
// with an AM/PM marker, and the combined "date time" form.
func validDateTimeBody(body string) bool {
	fields := splitFields(body)
	if len(fields) == 0 || len(fields) > 3 {
		return false
	}
	i := 0
	ok := false
	if isDateField(fields[i]) {
		ok = true
		i++
	}
	if i < len(fields) && isTimeField(fields[i]) {
		ok = true
		i++
		if i < len(fields) && isMeridiem(fields[i]) {
			i++
		}
	}
	return ok && i == len(fields)
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fields = append(fields, s[start:i])
			start = -1
		}
	}
	return fields
}

func isDateField(s string) bool {
	parts := splitOn(s, '/')
	if len(parts) != 3 {
		parts = splitOn(s, '-')
	}
	if len(parts) != 3 {
		return false
	}
	return digitRange(parts[0], 1, 12) && digitRange(parts[1], 1, 31) && digitRange(parts[2], 0, 9999)
}

func isTimeField(s string) bool {
	parts := splitOn(s, ':')
	if len(parts) != 2 && len(parts) != 3 {
		return false
	}
	if !digitRange(parts[0], 0, 23) || !digitRange(parts[1], 0, 59) {
		return false
	}
	if len(parts) == 3 && !digitRange(parts[2], 0, 59) {
		return false
	}
	return true
}

func isMeridiem(s string) bool {
	if len(s) != 2 {
		return false
	}
	return (lower(s[0]) == 'a' || lower(s[0]) == 'p') && lower(s[1]) == 'm'
}

func splitOn(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func digitRange(s string, min, max int) bool {
	if s == "" || len(s) > 4 {
		return false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n >= min && n <= max
}

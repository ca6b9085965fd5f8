package parser

// Stream is a read cursor over a token sequence. Checkpoints are plain
// indices and cloning shares the backing slice, so save/restore is O(1)
// and no token is ever duplicated.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

func (s *Stream) Pos() int {
	return s.pos
}

func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.tokens)
}

func (s *Stream) Current() (Token, bool) {
	return s.At(s.pos)
}

// Peek looks n tokens past the current one without consuming. Peek(0) is
// Current.
func (s *Stream) Peek(n int) (Token, bool) {
	return s.At(s.pos + n)
}

func (s *Stream) At(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

func (s *Stream) Next() (Token, bool) {
	tok, ok := s.At(s.pos)
	if ok {
		s.pos++
	}
	return tok, ok
}

func (s *Stream) Reset() {
	s.pos = 0
}

func (s *Stream) Checkpoint() int {
	return s.pos
}

func (s *Stream) Restore(checkpoint int) {
	if checkpoint < 0 {
		checkpoint = 0
	}
	if checkpoint > len(s.tokens) {
		checkpoint = len(s.tokens)
	}
	s.pos = checkpoint
}

// Clone returns an independent cursor over the same tokens.
func (s *Stream) Clone() *Stream {
	return &Stream{tokens: s.tokens, pos: s.pos}
}

// IntoSuffix consumes the stream and returns a fresh one over the tokens
// from offset onward. The receiver is emptied so a stale cursor cannot be
// used by accident; this is the handoff point of the two-phase parse.
func (s *Stream) IntoSuffix(offset int) *Stream {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.tokens) {
		offset = len(s.tokens)
	}
	rest := &Stream{tokens: s.tokens[offset:]}
	s.tokens = nil
	s.pos = 0
	return rest
}

// Text reconstructs the source of all tokens in the stream regardless of
// cursor position.
func (s *Stream) Text() string {
	var out []byte
	for _, tok := range s.tokens {
		out = append(out, tok.Text...)
	}
	return string(out)
}

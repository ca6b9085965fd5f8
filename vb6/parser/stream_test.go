package parser

import "testing"

func streamOf(t *testing.T, src string) *Stream {
	t.Helper()
	return NewStream(mustTokenize(t, src))
}

func TestStreamCursor(t *testing.T) {
	s := streamOf(t, "a b c")

	tok, ok := s.Current()
	if !ok || tok.Text != "a" {
		t.Fatalf("Current = %v %v, want a", tok, ok)
	}
	if tok, _ := s.Peek(2); tok.Text != "b" {
		t.Errorf("Peek(2) = %q, want b", tok.Text)
	}
	if tok, _ := s.Current(); tok.Text != "a" {
		t.Errorf("Peek moved the cursor to %q", tok.Text)
	}

	s.Next()
	s.Next()
	if tok, _ := s.Current(); tok.Text != "b" {
		t.Errorf("after two Next, Current = %q, want b", tok.Text)
	}
}

func TestStreamCheckpointRestore(t *testing.T) {
	s := streamOf(t, "a b c")

	cp := s.Checkpoint()
	s.Next()
	s.Next()
	s.Next()
	s.Restore(cp)
	if tok, _ := s.Current(); tok.Text != "a" {
		t.Errorf("after Restore, Current = %q, want a", tok.Text)
	}

	s.Restore(-5)
	if s.Pos() != 0 {
		t.Errorf("negative restore must clamp to 0, got %d", s.Pos())
	}
	s.Restore(999)
	if !s.AtEnd() {
		t.Error("oversized restore must clamp to the end")
	}
}

func TestStreamExhaustion(t *testing.T) {
	s := streamOf(t, "a")
	s.Next()
	if !s.AtEnd() {
		t.Error("stream should be at end")
	}
	if _, ok := s.Next(); ok {
		t.Error("Next past the end must report no token")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current past the end must report no token")
	}
}

func TestStreamCloneIsIndependent(t *testing.T) {
	s := streamOf(t, "a b")
	clone := s.Clone()
	s.Next()
	if clone.Pos() != 0 {
		t.Error("advancing the original moved the clone")
	}
}

func TestStreamIntoSuffix(t *testing.T) {
	s := streamOf(t, "a b c")
	s.Next() // past "a"

	rest := s.IntoSuffix(s.Pos())
	if rest.Len() != 4 { // ws b ws c
		t.Errorf("rest.Len = %d, want 4", rest.Len())
	}
	if tok, _ := rest.Current(); tok.Kind != TokenWhitespace {
		t.Errorf("rest starts at %v, want the whitespace after a", tok.Kind)
	}
	if rest.Text() != " b c" {
		t.Errorf("rest.Text = %q, want %q", rest.Text(), " b c")
	}
	// the old cursor is dead after the handoff
	if s.Len() != 0 || !s.AtEnd() {
		t.Error("consumed stream must be empty")
	}
}

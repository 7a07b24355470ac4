package token

// Stream is a forward-only cursor over a borrowed token array. It does not
// own the underlying memory, which must outlive every call that reads from
// it.
type Stream struct {
	words  []uint32
	cursor int
}

// NewStream wraps a token array for reading.
func NewStream(words []uint32) *Stream {
	return &Stream{words: words}
}

// Next advances the cursor and returns the word it was pointing at. Calling
// Next past the end of the stream returns EndToken without advancing
// further.
func (s *Stream) Next() uint32 {
	if s.cursor >= len(s.words) {
		return EndToken
	}
	w := s.words[s.cursor]
	s.cursor++
	return w
}

// Skip advances the cursor by n words without returning them.
func (s *Stream) Skip(n uint32) {
	s.cursor += int(n)
	if s.cursor > len(s.words) {
		s.cursor = len(s.words)
	}
}

// PeekAt returns the word at offset tokens ahead of the cursor without
// advancing it. Returns EndToken if out of range.
func (s *Stream) PeekAt(offset int) uint32 {
	i := s.cursor + offset
	if i < 0 || i >= len(s.words) {
		return EndToken
	}
	return s.words[i]
}

// Offset returns the current cursor position, in words from the start.
func (s *Stream) Offset() int {
	return s.cursor
}

// Done reports whether the cursor has reached the end of the stream.
func (s *Stream) Done() bool {
	return s.cursor >= len(s.words)
}

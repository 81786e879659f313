package domain

// Sequence allocates process-unique, strictly increasing task numbers.
// It replaces implicit global state with an allocator owned by whichever
// scope constructs tasks. Access is expected to be single-threaded or
// externally serialized.
type Sequence struct {
	last int
}

// NewSequence creates a sequence whose first number is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next task number.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Advance raises the watermark so that future numbers stay above n.
// Called with the maximum restored number after deserialization; a value
// at or below the current watermark is a no-op.
func (s *Sequence) Advance(n int) {
	if n > s.last {
		s.last = n
	}
}

// Last returns the most recently issued (or restored) number.
func (s *Sequence) Last() int {
	return s.last
}

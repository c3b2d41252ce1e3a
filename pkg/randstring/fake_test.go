package randstring_test

import "sync"

// sequenceSource replays a fixed byte sequence cyclically and counts calls.
type sequenceSource struct {
	mu      sync.Mutex
	seq     []byte
	pos     int
	calls   int
	lengths []int
	closed  int
}

func newSequenceSource(seq ...byte) *sequenceSource {
	return &sequenceSource{seq: seq}
}

// sweep returns every byte value 0..255 in order.
func sweep() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func (s *sequenceSource) FillRandom(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.lengths = append(s.lengths, len(p))
	for i := range p {
		p[i] = s.seq[s.pos%len(s.seq)]
		s.pos++
	}
	return nil
}

func (s *sequenceSource) Close() error {
	s.closed++
	return nil
}

type failingSource struct {
	err error
}

func (s failingSource) FillRandom(_ []byte) error {
	return s.err
}

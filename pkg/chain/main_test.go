package chain

import (
	"io"
	"log/slog"
	"testing"
)

// newTestGenerator builds a seeded, fully deterministic generator for tests.
func newTestGenerator(t *testing.T, corpus []string, depth int, seed uint64) *Generator {
	t.Helper()
	g, err := New(corpus, depth, WithSource(NewSeededSource(seed)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// stubSource replays a fixed script of draws, failing the test if the script
// runs out or a value does not fit the requested range.
type stubSource struct {
	t     *testing.T
	ints  []int
	bools []bool
}

func (s *stubSource) IntN(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("stubSource: unexpected IntN(%d) call", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		s.t.Fatalf("stubSource: scripted value %d out of range [0,%d)", v, n)
	}
	return v
}

func (s *stubSource) Bool() bool {
	s.t.Helper()
	if len(s.bools) == 0 {
		s.t.Fatalf("stubSource: unexpected Bool() call")
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package chain

import (
	"strconv"
	"strings"
)

// lengthsKey is the pseudo-context under which the distiller records each
// token's rune count. Real contexts are lowercased and at most depth runes
// long, so an uppercase seven-rune key can never collide with one.
const lengthsKey = "LENGTHS"

// transitionRow accumulates occurrence counts for one context, preserving
// first-occurrence order of the outcomes so that a seeded Source yields the
// same output for the same construction.
type transitionRow struct {
	outcomes []string
	counts   map[string]int
}

func (r *transitionRow) record(to string) {
	if _, ok := r.counts[to]; !ok {
		r.outcomes = append(r.outcomes, to)
	}
	r.counts[to]++
}

// transitionMatrix is the intermediate context -> outcome -> count mapping
// built during distillation and discarded once the jump table exists.
type transitionMatrix struct {
	order []string
	rows  map[string]*transitionRow
}

func newTransitionMatrix() *transitionMatrix {
	return &transitionMatrix{rows: make(map[string]*transitionRow)}
}

func (m *transitionMatrix) record(from, to string) {
	row, ok := m.rows[from]
	if !ok {
		row = &transitionRow{counts: make(map[string]int)}
		m.rows[from] = row
		m.order = append(m.order, from)
	}
	row.record(to)
}

// normalize lower-cases and trims each corpus entry, discarding empties.
func normalize(corpus []string) []string {
	out := make([]string, 0, len(corpus))
	for _, w := range corpus {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// distill walks every normalized token with overlapping windows of width up
// to depth and records how often each context is followed by each
// continuation. The i=0 window has an empty context; that entry is what
// lets generation bootstrap from nothing. Counts are never smoothed: an
// unseen transition has probability zero, which keeps entropy values exact.
//
// The returned depth is the resolved chain depth: the requested depth capped
// at the longest token length, since a shorter corpus cannot populate longer
// contexts.
func distill(corpus []string, depth int) (*transitionMatrix, int) {
	m := newTransitionMatrix()
	longest := 0

	for _, w := range normalize(corpus) {
		runes := []rune(w)
		n := len(runes)
		if n > longest {
			longest = n
		}
		m.record(lengthsKey, strconv.Itoa(n))

		for i := 0; i < n; i++ {
			lo := i - depth
			if lo < 0 {
				lo = 0
			}
			hi := i + depth
			if hi > n {
				hi = n
			}
			from := string(runes[lo:i])
			to := string(runes[i:hi])
			if to == "" || from == to {
				continue
			}
			m.record(from, to)
		}
	}

	if longest < depth {
		depth = longest
	}
	return m, depth
}

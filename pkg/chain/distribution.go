package chain

import "math"

// Distribution is the immutable per-context sampling structure: parallel
// token/entropy slices, cumulative occurrence counts for inverse-CDF
// sampling, and the total occurrence count. entropies[i] is
// -log2(count[i]/total), so the entropy returned with a draw is exactly the
// information content of that draw.
type Distribution struct {
	tokens    []string
	entropies []float64
	counts    []int
	total     int
}

func newDistribution(row *transitionRow) *Distribution {
	total := 0
	for _, c := range row.counts {
		total += c
	}

	d := &Distribution{
		tokens:    make([]string, 0, len(row.outcomes)),
		entropies: make([]float64, 0, len(row.outcomes)),
		counts:    make([]int, 0, len(row.outcomes)),
		total:     total,
	}

	cum := 0
	for _, tok := range row.outcomes {
		freq := row.counts[tok]
		cum += freq
		d.tokens = append(d.tokens, tok)
		d.entropies = append(d.entropies, -math.Log2(float64(freq)/float64(total)))
		d.counts = append(d.counts, cum)
	}
	return d
}

// pick draws one weighted sample: probability of entry i is exactly
// counts'[i]/total, and the returned entropy is -log2 of that probability.
func (d *Distribution) pick(src Source) (string, float64) {
	n := src.IntN(d.total)
	for i, c := range d.counts {
		if n < c {
			return d.tokens[i], d.entropies[i]
		}
	}
	// counts[len-1] == total and n < total, so the scan always hits.
	last := len(d.tokens) - 1
	return d.tokens[last], d.entropies[last]
}

// shannon returns the Shannon entropy of the distribution in bits, the
// probability-weighted average of the per-entry entropies.
func (d *Distribution) shannon() float64 {
	h := 0.0
	prev := 0
	for i, c := range d.counts {
		p := float64(c-prev) / float64(d.total)
		h += p * d.entropies[i]
		prev = c
	}
	return h
}

// jumpTable maps a context to its outcome distribution. It is built once at
// generator construction and read-only afterwards.
type jumpTable map[string]*Distribution

func buildJumpTable(m *transitionMatrix) jumpTable {
	table := make(jumpTable, len(m.order))
	for _, ctx := range m.order {
		table[ctx] = newDistribution(m.rows[ctx])
	}
	return table
}

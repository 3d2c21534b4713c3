package chain

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Generator is the main entry point for the library. It holds the immutable
// jump table produced by training, the resolved chain depth, and the mutable
// random source advanced by every draw. A Generator is not safe for
// concurrent use; the jump table itself is read-only, so callers that need
// parallel generation should train once per goroutine (training is pure and
// cheap) or guard a shared instance externally.
type Generator struct {
	src    Source
	table  jumpTable
	depth  int
	logger *slog.Logger
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithSource injects a custom randomness source, typically a fixed-seed
// source from NewSeededSource for reproducible output.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithLogger sets the generator's logger. By default all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New trains a Generator on the given corpus with the given maximum chain
// depth. Corpus entries are lower-cased and trimmed; empty entries are
// dropped. It returns ErrBadDepth for a depth below one and ErrEmptyCorpus
// when the corpus yields no transitions at all.
func New(corpus []string, depth int, opts ...Option) (*Generator, error) {
	if depth < 1 {
		return nil, ErrBadDepth
	}

	matrix, resolved := distill(corpus, depth)
	if len(matrix.rows) == 0 {
		return nil, ErrEmptyCorpus
	}

	g := &Generator{
		table:  buildJumpTable(matrix),
		depth:  resolved,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewSource()
	}

	stats := g.Stats()
	g.logger.Info("model distilled",
		slog.Int("requested_depth", depth),
		slog.Int("resolved_depth", resolved),
		slog.Int("contexts", stats.Contexts),
		slog.Int("transitions", stats.Transitions),
	)

	return g, nil
}

// SetLogger replaces the generator's logger. A nil logger is ignored.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Depth returns the resolved chain depth, which may be lower than the depth
// requested at construction if the corpus could not support it.
func (g *Generator) Depth() int {
	return g.depth
}

// NextToken draws the next token for the given seed using
// longest-match-then-backoff: the trailing min(len(seed), depth) runes are
// tried first, and the context is shortened from the left until a trained
// entry is found. The empty context is always populated for a non-empty
// corpus, so ErrExhausted indicates a broken table, not bad input.
func (g *Generator) NextToken(seed string) (string, float64, error) {
	runes := []rune(strings.ToLower(seed))

	longest := len(runes)
	if longest > g.depth {
		longest = g.depth
	}

	// Bounded to depth+1 lookups by construction.
	for l := longest; l >= 0; l-- {
		ctx := string(runes[len(runes)-l:])
		if dist, ok := g.table[ctx]; ok {
			tok, bits := dist.pick(g.src)
			return tok, bits, nil
		}
	}

	g.logger.Warn("backoff exhausted", slog.String("seed", seed))
	return "", 0, ErrExhausted
}

// wordLength draws a target word length from the LENGTHS pseudo-context
// populated at distillation time.
func (g *Generator) wordLength() (int, float64, error) {
	dist, ok := g.table[lengthsKey]
	if !ok {
		return 0, 0, ErrExhausted
	}
	tok, bits := dist.pick(g.src)
	n, err := strconv.Atoi(tok)
	if err != nil {
		// LENGTHS entries are written as decimal strings by the distiller.
		return 0, 0, ErrExhausted
	}
	return n, bits, nil
}

// Stats is a snapshot of the trained model's size and starting entropy.
type Stats struct {
	Contexts    int     // number of trained contexts, LENGTHS included
	Transitions int     // number of distinct context->outcome pairs
	Occurrences int     // total recorded transition occurrences
	StartBits   float64 // Shannon entropy of the empty-context distribution
}

// Stats aggregates statistics over the jump table.
func (g *Generator) Stats() Stats {
	var s Stats
	for ctx, dist := range g.table {
		s.Contexts++
		s.Transitions += len(dist.tokens)
		s.Occurrences += dist.total
		if ctx == "" {
			s.StartBits = dist.shannon()
		}
	}
	return s
}

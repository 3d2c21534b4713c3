package chain

import "errors"

var (
	// ErrEmptyCorpus is returned by New when the corpus, after
	// normalization, contains no usable tokens and therefore yields an
	// empty transition matrix.
	ErrEmptyCorpus = errors.New("chain: corpus contains no usable tokens")

	// ErrBadDepth is returned by New when the requested chain depth is
	// less than one.
	ErrBadDepth = errors.New("chain: chain depth must be at least 1")

	// ErrExhausted is returned by NextToken when the context backoff ran
	// all the way down to the empty context without finding a match. A
	// table built from a non-empty corpus always has an empty-context
	// entry, so this signals an internal consistency failure rather than
	// a normal runtime condition.
	ErrExhausted = errors.New("chain: context backoff exhausted without a match")
)

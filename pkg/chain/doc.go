/*
Package chain trains a variable-order Markov chain over a word corpus and
uses it to synthesize new pronounceable strings, tracking the exact
information-theoretic entropy (in bits) of every generated output.

A Generator is built once from a corpus and a chain depth, producing an
immutable jump table of context -> weighted outcome distributions. Output is
driven by a small pattern language (words, chain tokens, digits, symbols,
literals and escapes); each draw charges -log2 of its own probability, so
the reported entropy of a generated secret is an exact guessing-resistance
estimate, not an approximation.

Randomness is injected through the Source interface. The default source is a
ChaCha8 generator seeded from crypto/rand; a fixed-seed source makes output
fully reproducible, which the test suite relies on.
*/
package chain

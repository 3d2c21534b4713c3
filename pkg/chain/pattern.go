package chain

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern class characters. Any other character is emitted verbatim, and a
// backslash escapes the character after it.
//
//	w  word (lower-case)        W  word, first letter capitalized
//	c  chain token              C  chain token, first letter capitalized
//	d  digit                    s  symbol
const (
	symbolSet = `@#!$%&=?^+-*"`
	digitSet  = "0987654321"
)

type opKind int

const (
	opWord opKind = iota
	opCapWord
	opChar
	opCapChar
	opDigit
	opSymbol
	opLiteral
)

// patternOp is one step of a classified pattern. lit is set for opLiteral.
type patternOp struct {
	kind opKind
	lit  rune
}

// classify performs a single pass over the pattern and produces the closed
// sequence of operations the engine executes, resolving escapes up front. A
// trailing backslash classifies as a literal backslash, so output and
// entropy accounting stay in step.
func classify(pattern string) []patternOp {
	ops := make([]patternOp, 0, len(pattern))
	escaped := false
	for _, r := range pattern {
		if escaped {
			ops = append(ops, patternOp{kind: opLiteral, lit: r})
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case 'w':
			ops = append(ops, patternOp{kind: opWord})
		case 'W':
			ops = append(ops, patternOp{kind: opCapWord})
		case 'c':
			ops = append(ops, patternOp{kind: opChar})
		case 'C':
			ops = append(ops, patternOp{kind: opCapChar})
		case 'd':
			ops = append(ops, patternOp{kind: opDigit})
		case 's':
			ops = append(ops, patternOp{kind: opSymbol})
		default:
			ops = append(ops, patternOp{kind: opLiteral, lit: r})
		}
	}
	if escaped {
		ops = append(ops, patternOp{kind: opLiteral, lit: '\\'})
	}
	return ops
}

// FromPattern generates one secret from the pattern and returns it together
// with its total entropy in bits, the sum of every class's contribution in
// order. Literals and escaped characters contribute zero bits.
func (g *Generator) FromPattern(pattern string) (string, float64, error) {
	ops := classify(pattern)

	var out strings.Builder
	bits := 0.0

	for i, op := range ops {
		switch op.kind {
		case opWord, opCapWord:
			word, h, err := g.word()
			if err != nil {
				return "", 0, err
			}
			if op.kind == opCapWord {
				word = capitalize(word)
			}
			out.WriteString(word)
			bits += h
			// Two abutting words would be indistinguishable once joined,
			// which invalidates the entropy sum; a separator keeps the
			// boundary recoverable.
			if i+1 < len(ops) && (ops[i+1].kind == opWord || ops[i+1].kind == opCapWord) {
				out.WriteByte('.')
			}
		case opChar, opCapChar:
			tok, h, err := g.NextToken(out.String())
			if err != nil {
				return "", 0, err
			}
			if op.kind == opCapChar {
				tok = capitalize(tok)
			}
			out.WriteString(tok)
			bits += h
		case opDigit:
			out.WriteByte(digitSet[g.src.IntN(len(digitSet))])
			bits += math.Log2(float64(len(digitSet)))
		case opSymbol:
			out.WriteByte(symbolSet[g.src.IntN(len(symbolSet))])
			bits += math.Log2(float64(len(symbolSet)))
		case opLiteral:
			out.WriteRune(op.lit)
		}
	}

	return out.String(), bits, nil
}

// Passphrase generates words dot-separated pseudo-words, equivalent to a
// pattern of that many w classes.
func (g *Generator) Passphrase(words int) (string, float64, error) {
	return g.FromPattern(strings.Repeat("w", words))
}

// word assembles one pseudo-word: a target length is drawn from the modeled
// length distribution (its entropy is charged to the word), then tokens are
// sampled with the word built so far as seed until the target is reached.
func (g *Generator) word() (string, float64, error) {
	head, bits, err := g.NextToken("")
	if err != nil {
		return "", 0, err
	}
	target, lengthBits, err := g.wordLength()
	if err != nil {
		return "", 0, err
	}
	bits += lengthBits

	for utf8.RuneCountInString(head) < target {
		tok, h, err := g.NextToken(head)
		if err != nil {
			return "", 0, err
		}
		head += tok
		bits += h
	}
	return head, bits, nil
}

// CVWord generates an alternating consonant/vowel word of n letters. The
// starting class costs one bit, each letter log2 of its alphabet size.
func (g *Generator) CVWord(n int) (string, float64) {
	const consonants = "qwrtpsdfgjklzxcvbnm"
	const vowels = "aeiou"

	cur, next := consonants, vowels
	if g.src.Bool() {
		cur, next = vowels, consonants
	}

	var out strings.Builder
	bits := 1.0
	for i := 0; i < n; i++ {
		out.WriteByte(cur[g.src.IntN(len(cur))])
		bits += math.Log2(float64(len(cur)))
		cur, next = next, cur
	}
	return out.String(), bits
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

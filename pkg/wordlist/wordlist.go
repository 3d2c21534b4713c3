// Package wordlist bundles the static training corpora used by the chain
// generator: an English list in the style of the EFF passphrase list, an
// Italian list, and a generated consonant-vowel pair list. Lists are plain
// sequences of words; the chain package normalizes them at training time.
package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed eff.txt
var effData string

//go:embed italian.txt
var italianData string

// Eff returns the bundled English word list.
func Eff() []string {
	return splitLines(effData)
}

// Italian returns the bundled Italian word list.
func Italian() []string {
	return splitLines(italianData)
}

// CV returns every consonant+vowel and vowel+consonant pair. Training on it
// produces maximally pronounceable alternating words.
func CV() []string {
	const consonants = "qwrtpsdfgjklzxcvbnm"
	const vowels = "aeiou"

	list := make([]string, 0, 2*len(consonants)*len(vowels))
	for _, c := range consonants {
		for _, v := range vowels {
			list = append(list, string(c)+string(v))
			list = append(list, string(v)+string(c))
		}
	}
	return list
}

// Styles lists the selectable corpus names.
func Styles() []string {
	return []string{"eff", "italian", "cv"}
}

// ByName returns the corpus for a style name from Styles.
func ByName(name string) ([]string, error) {
	switch strings.ToLower(name) {
	case "eff":
		return Eff(), nil
	case "italian":
		return Italian(), nil
	case "cv":
		return CV(), nil
	default:
		return nil, fmt.Errorf("unknown word list %q, use one of [eff italian cv]", name)
	}
}

func splitLines(data string) []string {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Package textnorm holds the string normalization shared by question parsing
// and answer validation.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// IgnoredPunctuation lists the characters dropped before answers are compared.
const IgnoredPunctuation = "?,!.:;"

var punctuationStripper = buildStripper(IgnoredPunctuation)

func buildStripper(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, c := range chars {
		pairs = append(pairs, string(c), "")
	}
	return strings.NewReplacer(pairs...)
}

// Collapse trims s and replaces every run of whitespace with a single space.
//
//	Collapse("  my   question ") == "my question"
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Comparable reduces s to the form used when matching an attempt against
// an accepted answer: NFC, case folded, punctuation from IgnoredPunctuation
// removed and whitespace collapsed.
//
// Punctuation is removed before whitespace is collapsed so that
// "answer , one" and "answer one" compare equal.
func Comparable(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	s = punctuationStripper.Replace(s)
	return Collapse(s)
}

// Equal reports whether a and b are the same once both are Comparable.
func Equal(a, b string) bool {
	return Comparable(a) == Comparable(b)
}

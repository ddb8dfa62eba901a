// Package textnorm turns instant answer prose into speakable sentences.
package textnorm

import (
	"regexp"
	"strings"
)

const protectedPeriod = "~.~"

// A single character followed by a period, at the start of the text or
// after a space, is an initial ("J. R. R. Tolkien"), not a sentence end.
var initialPattern = regexp.MustCompile(`(^| )([^ .])\.`)

// SplitSentences splits prose into sentences. Initials and "Inc." do not end
// a sentence, and one trailing ".", "?" or "!" is removed from the last one.
func SplitSentences(text string) []string {
	text = initialPattern.ReplaceAllString(text, "${1}${2}"+protectedPeriod)
	text = strings.ReplaceAll(text, "Inc.", "Inc"+protectedPeriod)
	for _, mark := range []string{"!", "?"} {
		text = strings.ReplaceAll(text, mark+" ", ". ")
	}

	sents := strings.Split(text, ". ")
	for i, s := range sents {
		sents[i] = strings.ReplaceAll(s, protectedPeriod, ".")
	}

	last := len(sents) - 1
	if HasTerminal(sents[last]) {
		sents[last] = sents[last][:len(sents[last])-1]
	}
	return sents
}

// HasTerminal reports whether s ends in ".", "?" or "!".
func HasTerminal(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '?', '!':
		return true
	}
	return false
}

// EnsureTerminal appends a period unless s already ends in terminal punctuation.
func EnsureTerminal(s string) string {
	if s == "" || HasTerminal(s) {
		return s
	}
	return s + "."
}

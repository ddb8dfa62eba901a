// Package utterance isolates the search topic from a spoken question.
package utterance

import (
	"slices"
	"strings"

	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
)

// SortVocabulary orders trigger phrases longest first, then alphabetically,
// so "ask duck duck go" is removed before "duck duck go".
func SortVocabulary(vocab []string) []string {
	out := slices.Clone(vocab)
	slices.SortFunc(out, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return out
}

// StripVocabulary removes every occurrence of each phrase, in order, and trims
// the result.
func StripVocabulary(utt string, sortedVocab []string) string {
	for _, voc := range sortedVocab {
		if voc == "" {
			continue
		}
		utt = strings.ReplaceAll(utt, voc, "")
	}
	return strings.TrimSpace(utt)
}

// ExtractTopic strips the first matching "<question word><verb> <article>"
// prefix. Combinations are tried in list order and the first match wins,
// with every article tried before the bare "<word><verb> " form.
func ExtractTopic(query string, lists localex.WordLists) (topic string, matched bool) {
	for _, prefix := range questionPrefixes(lists) {
		if strings.HasPrefix(query, prefix) {
			return query[len(prefix):], true
		}
	}
	return query, false
}

func questionPrefixes(lists localex.WordLists) []string {
	articles := make([]string, 0, len(lists.Articles)+1)
	for _, a := range lists.Articles {
		articles = append(articles, a+" ")
	}
	articles = append(articles, "")

	out := make([]string, 0, len(lists.QuestionWords)*len(lists.QuestionVerbs)*len(articles))
	for _, noun := range lists.QuestionWords {
		for _, verb := range lists.QuestionVerbs {
			for _, article := range articles {
				out = append(out, noun+verb+" "+article)
			}
		}
	}
	return out
}

// StripArticles removes the first "an ", "a " and "the " it finds, in that
// order, anywhere in the topic ("banana split" becomes "bananasplit").
func StripArticles(topic string) string {
	for _, article := range []string{"an ", "a ", "the "} {
		topic = strings.Replace(topic, article, "", 1)
	}
	return topic
}

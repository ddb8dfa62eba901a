// Package answer picks the speakable text out of an instant answer.
package answer

import (
	"strings"

	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
	textnormx "github.com/tanpawarit/ddg-instant-answer-skill/agent/textnorm"
	"github.com/tanpawarit/ddg-instant-answer-skill/pkg/ddg"
)

// placeholderAnswer marks answers the API fills in with a hash widget.
const placeholderAnswer = "HASH"

// Result is one of Direct, Abstract, Related or Empty.
type Result interface {
	isResult()
}

type Direct struct{ Text string }

type Abstract struct{ Text string }

type Related struct{ Text string }

type Empty struct{}

func (Direct) isResult()   {}
func (Abstract) isResult() {}
func (Related) isResult()  {}
func (Empty) isResult()    {}

// Classify reduces the API response to the highest priority usable field.
func Classify(res *ddg.Results) Result {
	if res == nil {
		return Empty{}
	}
	if res.Answer != nil && res.Answer.Text != "" && !strings.Contains(res.Answer.Text, placeholderAnswer) {
		return Direct{Text: res.Answer.Text}
	}
	if res.Abstract.Text != "" {
		return Abstract{Text: res.Abstract.Text}
	}
	if len(res.Related) > 0 && res.Related[0].Text != "" {
		return Related{Text: res.Related[0].Text}
	}
	return Empty{}
}

// Select renders r as a sentence about query. ok is false when there is
// nothing worth speaking; otherwise the text ends in ".", "?" or "!".
func Select(r Result, query string, lists localex.WordLists) (text string, ok bool) {
	switch v := r.(type) {
	case Direct:
		text = query + " is " + v.Text + "."
	case Abstract:
		text = strings.Join(textnormx.SplitSentences(v.Text), ". ")
	case Related:
		first := textnormx.SplitSentences(v.Text)[0]
		text = textnormx.FormatRelated(first, query, lists)
	default:
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return textnormx.EnsureTerminal(text), true
}

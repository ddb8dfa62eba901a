package textnorm

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
)

const (
	isVerb         = " is "
	inWord         = "in "
	categoryMarker = "()"
)

var categoryPattern = regexp.MustCompile(`\(([a-z ]+)\)`)

// FormatRelated rewrites a related-topic sentence such as
// "Big Ben A clock tower in London" into "Big Ben is a clock tower in London."
// query is the original search term; it bounds how far into the sentence the
// category and article may appear.
func FormatRelated(sentence, query string, lists localex.WordLists) string {
	ans := sentence

	if strings.HasSuffix(ans, "..") {
		ans = trimTruncation(ans, lists.StartWords)
	}

	// Step 2: "(lowercase words)" close to the subject is a category.
	var category string
	if loc := categoryPattern.FindStringSubmatchIndex(ans); loc != nil {
		start := utf8.RuneCountInString(ans[:loc[2]])
		if start <= 2*utf8.RuneCountInString(query) {
			category = ans[loc[2]:loc[3]]
			ans = strings.ReplaceAll(ans, "("+category+")", categoryMarker)
		}
	}

	// Step 3: split at the first article near the subject.
	words := strings.Fields(ans)
	limit := 2 * len(strings.Fields(query))
	title := cases.Title(language.Und)
	for _, article := range lists.Articles {
		index := slices.Index(words, title.String(article))
		if index < 0 {
			continue
		}
		if index <= limit {
			name := words[:index]
			desc := slices.Clone(words[index:])
			desc[0] = strings.ToLower(desc[0])
			ans = strings.Join(name, " ") + isVerb + strings.Join(desc, " ")
			break
		}
	}

	if category != "" {
		ans = strings.ReplaceAll(ans, categoryMarker, inWord+category)
	}

	return EnsureTerminal(ans)
}

// trimTruncation cleans an abstract cut off with "..": trailing periods go,
// then a final clause opened by a start word, then trailing start words and
// "-ing" words.
func trimTruncation(ans string, startWords []string) string {
	ans = strings.TrimRight(ans, ".")

	phrases := strings.Split(ans, ", ")
	last := strings.Fields(phrases[len(phrases)-1])
	if len(last) > 0 && slices.Contains(startWords, last[0]) {
		ans = strings.Join(phrases[:len(phrases)-1], ", ")
	}

	lastWord := lastSpaceWord(ans)
	for slices.Contains(startWords, lastWord) || strings.HasSuffix(lastWord, "ing") {
		next := strings.ReplaceAll(ans, " "+lastWord, "")
		if next == ans {
			break
		}
		ans = next
		lastWord = lastSpaceWord(ans)
	}
	return ans
}

func lastSpaceWord(s string) string {
	parts := strings.Split(s, " ")
	return parts[len(parts)-1]
}

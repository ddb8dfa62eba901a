package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
)

func englishLists(t *testing.T) localex.WordLists {
	t.Helper()
	lists, err := localex.Load("en-us")
	require.NoError(t, err)
	return lists
}

func TestFormatRelated(t *testing.T) {
	t.Parallel()

	lists := englishLists(t)
	tests := []struct {
		name     string
		sentence string
		query    string
		want     string
	}{
		{
			name:     "category and article",
			sentence: "Big Ben (clock) A clock tower at the Palace of Westminster",
			query:    "big ben",
			want:     "Big Ben in clock is a clock tower at the Palace of Westminster.",
		},
		{
			name:     "truncated with start word clause",
			sentence: "Springfield A town in Illinois, which is commonly known..",
			query:    "springfield",
			want:     "Springfield is a town in Illinois.",
		},
		{
			name:     "truncated with gerund tail",
			sentence: "Python A programming language, used for scripting and testing..",
			query:    "python",
			want:     "Python is a programming language, used for.",
		},
		{
			name:     "article too far from subject",
			sentence: "Mercury Planet closest to the Sun A small world",
			query:    "mercury",
			want:     "Mercury Planet closest to the Sun A small world.",
		},
		{
			name:     "category too far from subject",
			sentence: "Mercury A planet of the solar system (astronomy)",
			query:    "mercury",
			want:     "Mercury is a planet of the solar system (astronomy).",
		},
		{
			name:     "lowercase article is not a split point",
			sentence: "Big Ben, a clock tower in London, is iconic",
			query:    "big ben",
			want:     "Big Ben, a clock tower in London, is iconic.",
		},
		{
			name:     "single gerund word does not loop",
			sentence: "Something..",
			query:    "something",
			want:     "Something.",
		},
		{
			name:     "keeps existing punctuation",
			sentence: "Who A rock band?",
			query:    "who",
			want:     "Who is a rock band?",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatRelated(tt.sentence, tt.query, lists))
		})
	}
}

func TestFormatRelatedInsertsIsBeforeArticle(t *testing.T) {
	t.Parallel()

	got := FormatRelated("Big Ben (landmark) The great bell of the clock", "big ben", englishLists(t))
	idx := strings.Index(got, " is the great bell")
	require.GreaterOrEqual(t, idx, 0, "got %q", got)
	assert.True(t, strings.HasPrefix(got, "Big Ben in landmark is"), "got %q", got)
	assert.True(t, HasTerminal(got))
}

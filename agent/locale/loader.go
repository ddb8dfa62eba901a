package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
)

const DefaultLang = "en-us"

//go:embed data/*.yaml
var dataFS embed.FS

// WordLists holds one locale's vocabulary. Treat it as read-only once loaded.
type WordLists struct {
	QuestionWords []string `yaml:"question_words"`
	QuestionVerbs []string `yaml:"question_verbs"`
	Articles      []string `yaml:"articles"`
	StartWords    []string `yaml:"start_words"`
	Vocabulary    []string `yaml:"vocabulary"`
	Dialog        Dialog   `yaml:"dialog"`
}

type Dialog struct {
	SpecificResponse []string `yaml:"specific_response"`
}

// Load returns the embedded word lists for lang (e.g. "en-us").
func Load(lang string) (WordLists, error) {
	lang = normalizeLang(lang)
	raw, err := dataFS.ReadFile("data/" + lang + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return WordLists{}, fmt.Errorf("%w: lang=%s", contractx.ErrLocaleMissing, lang)
		}
		return WordLists{}, fmt.Errorf("read locale %s: %w", lang, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a vocabulary document.
func Parse(raw []byte) (WordLists, error) {
	var lists WordLists
	if err := yaml.Unmarshal(raw, &lists); err != nil {
		return WordLists{}, fmt.Errorf("decode locale vocabulary: %w", err)
	}
	if err := lists.Validate(); err != nil {
		return WordLists{}, err
	}
	return lists, nil
}

// Available lists the embedded locales.
func Available() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			out = append(out, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(out)
	return out
}

func (w WordLists) Validate() error {
	switch {
	case len(w.QuestionWords) == 0:
		return fmt.Errorf("%w: question_words is empty", contractx.ErrValidation)
	case len(w.QuestionVerbs) == 0:
		return fmt.Errorf("%w: question_verbs is empty", contractx.ErrValidation)
	case len(w.Articles) == 0:
		return fmt.Errorf("%w: articles is empty", contractx.ErrValidation)
	}
	return nil
}

// LeadIn is the announcement spoken before a directly requested answer.
func (w WordLists) LeadIn() string {
	for _, line := range w.Dialog.SpecificResponse {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	lang = strings.ReplaceAll(lang, "_", "-")
	if lang == "" {
		return DefaultLang
	}
	return lang
}

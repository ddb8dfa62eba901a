package skillnode

import (
	"fmt"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
	utterancex "github.com/tanpawarit/ddg-instant-answer-skill/agent/utterance"
)

// StripVocabulary removes the skill's trigger phrases on the ask path.
func StripVocabulary(in *GraphState, sortedVocab []string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Mode == ModeAsk {
		in.Topic = utterancex.StripVocabulary(in.Topic, sortedVocab)
	}
	return in, nil
}

func ExtractTopic(in *GraphState, lists localex.WordLists) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	in.Topic, in.Matched = utterancex.ExtractTopic(in.Topic, lists)
	return in, nil
}

// StripArticles drops leftover articles on the ask path.
func StripArticles(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Mode == ModeAsk {
		in.Topic = utterancex.StripArticles(in.Topic)
	}
	return in, nil
}

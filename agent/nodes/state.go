package skillnode

import (
	"fmt"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
)

// Mode selects which entry point a graph run serves.
type Mode string

const (
	// ModeAsk is the intent path: the user addressed the skill by name.
	ModeAsk Mode = "ask"
	// ModeCommonQuery is the arbitration path: only question-shaped
	// utterances are answered.
	ModeCommonQuery Mode = "common_query"
)

type GraphInput struct {
	Mode Mode
	Text string
}

type GraphOutput struct {
	Query  string
	Topic  string
	Answer string
	Found  bool
}

type GraphState struct {
	Mode  Mode
	Query string

	Topic   string
	Matched bool

	Answer string
	Found  bool
}

func ValidateRequest(in GraphInput) (*GraphState, error) {
	switch in.Mode {
	case ModeAsk, ModeCommonQuery:
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", contractx.ErrValidation, in.Mode)
	}

	return &GraphState{
		Mode:  in.Mode,
		Query: in.Text,
		Topic: in.Text,
	}, nil
}

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	return GraphOutput{
		Query:  in.Query,
		Topic:  in.Topic,
		Answer: in.Answer,
		Found:  in.Found && in.Answer != "",
	}, nil
}

package contract

import (
	"context"

	"github.com/tanpawarit/ddg-instant-answer-skill/pkg/ddg"
)

// Host is the assistant runtime the skill speaks through.
type Host interface {
	EmitSpeech(ctx context.Context, text string) error
	EmitConfidenceMatch(ctx context.Context, query string, level ConfidenceLevel, answer string) error
}

// Searcher is the remote instant answer provider.
type Searcher interface {
	Query(ctx context.Context, query string) (*ddg.Results, error)
	Detail(ctx context.Context, detailURL string) (*ddg.Results, error)
}

// Answerer turns a topic into a speakable answer; ok is false when there is none.
type Answerer interface {
	Query(ctx context.Context, topic string) (answer string, ok bool)
}

// Lookuper is the error-reporting form of Answerer used by agent tools.
type Lookuper interface {
	Lookup(ctx context.Context, topic string) (string, error)
}

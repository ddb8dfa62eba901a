package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
	nodex "github.com/tanpawarit/ddg-instant-answer-skill/agent/nodes"
	utterancex "github.com/tanpawarit/ddg-instant-answer-skill/agent/utterance"
	logx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/logger"
)

type Config struct {
	Locale string `split_words:"true" default:"en-us"`
}

// Skill answers "what is X" questions for a host assistant. Calls must be
// serialized by the host.
type Skill struct {
	host     contractx.Host
	answerer contractx.Answerer
	lists    localex.WordLists
	vocab    []string
	leadIn   string

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	newRequestID func() string
}

func New(host contractx.Host, answerer contractx.Answerer, lists localex.WordLists) (*Skill, error) {
	if host == nil {
		return nil, errors.New("host is required")
	}
	if answerer == nil {
		return nil, errors.New("answerer is required")
	}
	if err := lists.Validate(); err != nil {
		return nil, err
	}

	s := &Skill{
		host:         host,
		answerer:     answerer,
		lists:        lists,
		vocab:        utterancex.SortVocabulary(lists.Vocabulary),
		leadIn:       lists.LeadIn(),
		newRequestID: uuid.NewString,
	}

	graphRunner, err := s.compileHandleGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// HandleAsk serves an utterance that explicitly addressed the skill. When an
// answer is found the host speaks the lead-in and then the answer; otherwise
// nothing is spoken.
func (s *Skill) HandleAsk(ctx context.Context, utterance string) error {
	ctx = logx.WithRequestID(ctx, s.newRequestID())

	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		Mode: nodex.ModeAsk,
		Text: utterance,
	})
	if err != nil {
		return err
	}
	if !out.Found {
		logx.FromContext(ctx).Debug().Str("topic", out.Topic).Msg("no answer to speak")
		return nil
	}

	if s.leadIn != "" {
		if err := s.host.EmitSpeech(ctx, s.leadIn); err != nil {
			return fmt.Errorf("%w: %v", contractx.ErrHostEmitFailed, err)
		}
	}
	if err := s.host.EmitSpeech(ctx, out.Answer); err != nil {
		return fmt.Errorf("%w: %v", contractx.ErrHostEmitFailed, err)
	}
	return nil
}

// MatchQueryPhrase offers an answer to common-query arbitration. It reports
// whether a match was emitted.
func (s *Skill) MatchQueryPhrase(ctx context.Context, query string) (bool, error) {
	ctx = logx.WithRequestID(ctx, s.newRequestID())

	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		Mode: nodex.ModeCommonQuery,
		Text: query,
	})
	if err != nil {
		return false, err
	}
	if !out.Found {
		logx.FromContext(ctx).Debug().Msg("DDG has no answer")
		return false, nil
	}

	if err := s.host.EmitConfidenceMatch(ctx, out.Query, contractx.ConfidenceCategory, out.Answer); err != nil {
		return false, fmt.Errorf("%w: %v", contractx.ErrHostEmitFailed, err)
	}
	return true, nil
}

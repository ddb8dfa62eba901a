// Package lookup runs one instant answer query and turns it into a sentence.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	answerx "github.com/tanpawarit/ddg-instant-answer-skill/agent/answer"
	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
	"github.com/tanpawarit/ddg-instant-answer-skill/pkg/ddg"
	logx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/logger"
)

// detailSuffix asks the result page for its XML rendering.
const detailSuffix = "?o=x"

var (
	_ contractx.Answerer = (*Service)(nil)
	_ contractx.Lookuper = (*Service)(nil)
)

type Service struct {
	searcher contractx.Searcher
	lists    localex.WordLists
}

func New(searcher contractx.Searcher, lists localex.WordLists) (*Service, error) {
	if searcher == nil {
		return nil, errors.New("instant answer searcher is required")
	}
	if err := lists.Validate(); err != nil {
		return nil, err
	}
	return &Service{searcher: searcher, lists: lists}, nil
}

// Query is Lookup with every failure logged and reported as "no answer".
func (s *Service) Query(ctx context.Context, topic string) (string, bool) {
	text, err := s.Lookup(ctx, topic)
	if err != nil {
		logger := logx.FromContext(ctx)
		switch {
		case errors.Is(err, contractx.ErrLookup):
			logger.Warn().Err(err).Str("topic", topic).Msg("instant answer lookup failed")
		default:
			logger.Debug().Err(err).Str("topic", topic).Msg("no instant answer")
		}
		return "", false
	}
	return text, true
}

// Lookup performs at most two requests: the query itself and, for a
// disambiguation result, the detail document of the first related topic.
func (s *Service) Lookup(ctx context.Context, topic string) (string, error) {
	logger := logx.FromContext(ctx)
	logger.Debug().Str("query", topic).Msg("instant answer query")

	if len(topic) == 0 {
		return "", contractx.ErrEmptyTopic
	}

	res, err := s.searcher.Query(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrLookup, err)
	}
	if res == nil {
		return "", contractx.ErrNoAnswer
	}

	logger.Info().Str("image", res.Image).Msg("instant answer image")
	logger.Debug().Str("type", res.Type.String()).Msg("instant answer type")

	if res.Type == ddg.TypeDisambiguation && len(res.Related) > 0 {
		res = s.disambiguate(ctx, res)
	}

	text, ok := answerx.Select(answerx.Classify(res), topic, s.lists)
	if !ok {
		return "", contractx.ErrNoAnswer
	}
	return text, nil
}

// disambiguate swaps in the detail document of the first related topic,
// keeping the original result whenever that document is unavailable.
func (s *Service) disambiguate(ctx context.Context, res *ddg.Results) *ddg.Results {
	logger := logx.FromContext(ctx)

	related := strings.TrimSpace(res.Related[0].URL)
	if related == "" {
		return res
	}
	detailURL := related + detailSuffix
	logger.Debug().Str("url", detailURL).Msg("disambiguating")

	detailed, err := s.searcher.Detail(ctx, detailURL)
	if err != nil {
		logger.Warn().Err(err).Str("url", detailURL).Msg("disambiguation detail failed, keeping original result")
		return res
	}
	if detailed == nil {
		return res
	}
	return detailed
}

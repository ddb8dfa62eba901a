package skillnode

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
	logx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/logger"
)

// Lookup queries the answerer. Common queries without a recognised question
// prefix are not looked up at all.
func Lookup(
	ctx context.Context,
	in *GraphState,
	answerer contractx.Answerer,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if in.Mode == ModeCommonQuery && !in.Matched {
		logx.FromContext(ctx).Debug().Str("query", in.Query).Msg("not a question for this skill")
		return in, nil
	}

	in.Answer, in.Found = answerer.Query(ctx, in.Topic)
	return in, nil
}

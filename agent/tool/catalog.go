package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
)

const (
	ToolInstantAnswerLookup = "instant_answer.lookup"
)

var _ einotool.InvokableTool = (*LookupTool)(nil)

// LookupTool exposes the instant answer lookup to eino agents.
type LookupTool struct {
	lookup contractx.Lookuper
}

func NewLookupTool(lookup contractx.Lookuper) (*LookupTool, error) {
	if lookup == nil {
		return nil, errors.New("lookup is required")
	}
	return &LookupTool{lookup: lookup}, nil
}

func (t *LookupTool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return LookupToolInfo(), nil
}

func LookupToolInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolInstantAnswerLookup,
		Desc: "Answer a 'what is' or 'who is' question with a short sentence from DuckDuckGo instant answers.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {Type: schema.String, Desc: "Topic to look up, without question words", Required: true},
		}),
	}
}

// InvokableRun returns a JSON encoded contract.LookupResult. "No answer" is a
// result, not an error; only malformed arguments fail the call.
func (t *LookupTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...einotool.Option) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrValidation, ToolInstantAnswerLookup, err)
	}

	query := strings.TrimSpace(args.Query)
	out := contractx.LookupResult{Query: query}

	answer, err := t.lookup.Lookup(ctx, query)
	switch {
	case err == nil:
		out.Answer = answer
		out.Found = true
	case errors.Is(err, contractx.ErrNoAnswer):
	default:
		out.Error = err.Error()
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal lookup result: %w", err)
	}
	return string(encoded), nil
}

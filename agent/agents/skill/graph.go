package skill

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/tanpawarit/ddg-instant-answer-skill/agent/nodes"
)

func (s *Skill) compileHandleGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("strip_vocabulary",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.StripVocabulary(in, s.vocab)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node strip_vocabulary: %w", err)
	}

	if err := graph.AddLambdaNode("extract_topic",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExtractTopic(in, s.lists)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_topic: %w", err)
	}

	if err := graph.AddLambdaNode("strip_articles",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.StripArticles(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node strip_articles: %w", err)
	}

	if err := graph.AddLambdaNode("lookup",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Lookup(ctx, in, s.answerer)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node lookup: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "strip_vocabulary"},
		{"strip_vocabulary", "extract_topic"},
		{"extract_topic", "strip_articles"},
		{"strip_articles", "lookup"},
		{"lookup", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("skill.handle_utterance"))
	if err != nil {
		return nil, fmt.Errorf("compile skill graph: %w", err)
	}
	return runner, nil
}

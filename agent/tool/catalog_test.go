package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
)

type fakeLookup struct {
	answers map[string]string
	err     error
}

func (f *fakeLookup) Lookup(ctx context.Context, topic string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if answer, ok := f.answers[topic]; ok {
		return answer, nil
	}
	return "", contractx.ErrNoAnswer
}

func runTool(t *testing.T, lt *LookupTool, args string) contractx.LookupResult {
	t.Helper()

	raw, err := lt.InvokableRun(context.Background(), args)
	if err != nil {
		t.Fatalf("InvokableRun() error = %v", err)
	}
	var out contractx.LookupResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode tool output: %v", err)
	}
	return out
}

func TestLookupToolInfo(t *testing.T) {
	t.Parallel()

	lt, err := NewLookupTool(&fakeLookup{})
	if err != nil {
		t.Fatalf("NewLookupTool() error = %v", err)
	}
	info, err := lt.Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.Name != ToolInstantAnswerLookup {
		t.Fatalf("unexpected tool name: %s", info.Name)
	}
}

func TestLookupToolFound(t *testing.T) {
	t.Parallel()

	lt, _ := NewLookupTool(&fakeLookup{answers: map[string]string{"earth": "Earth is a planet."}})
	out := runTool(t, lt, `{"query":" earth "}`)
	if !out.Found || out.Answer != "Earth is a planet." {
		t.Fatalf("unexpected result: %#v", out)
	}
}

func TestLookupToolNoAnswerIsNotAnError(t *testing.T) {
	t.Parallel()

	lt, _ := NewLookupTool(&fakeLookup{})
	out := runTool(t, lt, `{"query":"xyzzy"}`)
	if out.Found || out.Error != "" {
		t.Fatalf("unexpected result: %#v", out)
	}
}

func TestLookupToolReportsLookupFailure(t *testing.T) {
	t.Parallel()

	lt, _ := NewLookupTool(&fakeLookup{err: fmt.Errorf("%w: timeout", contractx.ErrLookup)})
	out := runTool(t, lt, `{"query":"earth"}`)
	if out.Found || out.Error == "" {
		t.Fatalf("expected error in result, got %#v", out)
	}
}

func TestLookupToolInvalidArgs(t *testing.T) {
	t.Parallel()

	lt, _ := NewLookupTool(&fakeLookup{})
	_, err := lt.InvokableRun(context.Background(), `not json`)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

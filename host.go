package main

import (
	"context"
	"fmt"
	"io"

	contractx "github.com/tanpawarit/ddg-instant-answer-skill/agent/contract"
)

var _ contractx.Host = (*stdoutHost)(nil)

// stdoutHost prints speech line by line. Logs go to stderr so the output
// stays pipeable.
type stdoutHost struct {
	out io.Writer
}

func newStdoutHost(out io.Writer) *stdoutHost {
	return &stdoutHost{out: out}
}

func (h *stdoutHost) EmitSpeech(_ context.Context, text string) error {
	_, err := fmt.Fprintln(h.out, text)
	return err
}

func (h *stdoutHost) EmitConfidenceMatch(_ context.Context, query string, level contractx.ConfidenceLevel, answer string) error {
	_, err := fmt.Fprintf(h.out, "[%s] %s: %s\n", level, query, answer)
	return err
}

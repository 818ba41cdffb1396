// Package trace provides the line-oriented observer sink that batch
// execution failures are reported to.
package trace

import "context"

// Sink is an append-only, line-oriented text consumer.
// The processor hands it one line per Emit call, with no trailing
// separator included; writer-backed sinks add their own line breaks.
type Sink interface {
	Emit(ctx context.Context, line string) error
}

// NopSink discards every line. It is the default sink when none is injected.
type NopSink struct{}

// NewNopSink creates a sink that drops all output
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (s *NopSink) Emit(ctx context.Context, line string) error {
	return nil
}

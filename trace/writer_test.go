package trace

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink_EmitAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	ctx := context.Background()
	require.NoError(t, sink.Emit(ctx, "operation ingest: batch 1/2 failed"))
	require.NoError(t, sink.Emit(ctx, "ingest would exceed heap capacity"))

	assert.Equal(t,
		"operation ingest: batch 1/2 failed\ningest would exceed heap capacity\n",
		buf.String())
}

func TestNopSink_DiscardsEverything(t *testing.T) {
	sink := NewNopSink()
	assert.NoError(t, sink.Emit(context.Background(), "anything"))
}

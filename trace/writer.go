package trace

import (
	"context"
	"io"
	"sync"
)

// WriterSink 把每行追加换行符后写入底层 io.Writer
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink 创建基于 io.Writer 的跟踪输出
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(ctx context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, line+"\n")
	return err
}

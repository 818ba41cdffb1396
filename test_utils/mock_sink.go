package test_utils

import (
	"context"
	"sync"
)

// MockSink 记录所有输出行的跟踪实现，便于测试断言
type MockSink struct {
	mu    sync.Mutex
	lines []string

	// FailWith 不为 nil 时，Emit 返回该错误但仍记录该行
	FailWith error
}

// NewMockSink 创建一个新的MockSink实例
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Emit 记录一行输出
func (s *MockSink) Emit(ctx context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	return s.FailWith
}

// GetLines 返回已记录行的拷贝
func (s *MockSink) GetLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Clear 清空已记录的行
func (s *MockSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

package test_utils

import (
	"fmt"
	"strings"
	"sync"
)

// MockLogger 把日志行记录在内存中，测试可以对输出内容断言
// Echo 为 true 时同时打印到标准输出，便于排查失败用例
type MockLogger struct {
	mu      sync.Mutex
	entries []string

	Debug bool // 是否记录Debug级别日志
	Echo  bool // 是否同时打印到标准输出
}

// NewMockLogger 创建一个新的MockLogger实例
func NewMockLogger(debug bool) *MockLogger {
	return &MockLogger{Debug: debug}
}

// record 格式化一行日志并记录
func (m *MockLogger) record(level, format string, args ...interface{}) {
	line := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))

	m.mu.Lock()
	m.entries = append(m.entries, line)
	m.mu.Unlock()

	if m.Echo {
		fmt.Println(line)
	}
}

// Debugf 记录Debug级别日志
func (m *MockLogger) Debugf(format string, args ...interface{}) {
	if m.Debug {
		m.record("DEBUG", format, args...)
	}
}

// Infof 记录Info级别日志
func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.record("INFO", format, args...)
}

// Warnf 记录Warn级别日志
func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.record("WARN", format, args...)
}

// Errorf 记录Error级别日志
func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.record("ERROR", format, args...)
}

// GetEntries 返回已记录日志行的拷贝
func (m *MockLogger) GetEntries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Contains 判断是否存在包含指定子串的日志行
func (m *MockLogger) Contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, line := range m.entries {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

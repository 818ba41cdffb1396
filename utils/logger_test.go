package utils

import (
	"strings"
	"testing"
)

// captureLogger 把带级别前缀的日志行收集到内存，方便按级别断言
type captureLogger struct {
	lines []string
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{}
}

func (c *captureLogger) Infof(format string, args ...interface{}) {
	c.lines = append(c.lines, "[INFO] "+format)
}

func (c *captureLogger) Warnf(format string, args ...interface{}) {
	c.lines = append(c.lines, "[WARN] "+format)
}

func (c *captureLogger) Errorf(format string, args ...interface{}) {
	c.lines = append(c.lines, "[ERROR] "+format)
}

func (c *captureLogger) Debugf(format string, args ...interface{}) {
	c.lines = append(c.lines, "[DEBUG] "+format)
}

func (c *captureLogger) output() string {
	return strings.Join(c.lines, "\n")
}

func TestLeveledLogger_ErrorLevel(t *testing.T) {
	capture := newCaptureLogger()
	leveledLogger := NewLeveledLoggerWithLevel(capture, ErrorLevel)

	// 错误级别下，低级别日志全部被过滤
	leveledLogger.Debugf("This is debug")
	leveledLogger.Infof("This is info")
	leveledLogger.Warnf("This is warn")
	leveledLogger.Errorf("This is error")

	output := capture.output()
	for _, filtered := range []string{"[DEBUG]", "[INFO]", "[WARN]"} {
		if strings.Contains(output, filtered) {
			t.Errorf("错误级别下不应输出 %s 日志, 实际输出: %s", filtered, output)
		}
	}
	if !strings.Contains(output, "[ERROR] This is error") {
		t.Errorf("错误级别下应输出错误日志, 实际输出: %s", output)
	}
}

func TestLeveledLogger_DebugLevel(t *testing.T) {
	capture := newCaptureLogger()
	leveledLogger := NewLeveledLoggerWithLevel(capture, DebugLevel)

	// 调试级别放行所有日志
	leveledLogger.Debugf("This is debug")
	leveledLogger.Infof("This is info")
	leveledLogger.Warnf("This is warn")
	leveledLogger.Errorf("This is error")

	output := capture.output()
	for _, level := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(output, level) {
			t.Errorf("调试级别下应输出 %s 日志, 实际输出: %s", level, output)
		}
	}
}

func TestLeveledLogger_WarnLevelBoundary(t *testing.T) {
	capture := newCaptureLogger()
	leveledLogger := NewLeveledLoggerWithLevel(capture, WarnLevel)

	leveledLogger.Infof("filtered info")
	leveledLogger.Warnf("kept warn")

	output := capture.output()
	if strings.Contains(output, "[INFO]") {
		t.Errorf("警告级别下不应输出信息日志, 实际输出: %s", output)
	}
	if !strings.Contains(output, "[WARN] kept warn") {
		t.Errorf("警告级别下应输出警告日志, 实际输出: %s", output)
	}
}

func TestLeveledLogger_NilInnerFallsBack(t *testing.T) {
	// inner 为 nil 时回退到默认实现，不应 panic
	leveledLogger := NewLeveledLoggerWithLevel(nil, ErrorLevel)
	leveledLogger.Infof("should be filtered anyway")
}

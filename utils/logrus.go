package utils

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger 基于 logrus 的结构化日志实现
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger 创建 logrus 适配器，entry 为 nil 时回退到默认 logrus 实例
func NewLogrusLogger(entry *logrus.Entry) *LogrusLogger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.New())
	}
	return &LogrusLogger{entry: entry}
}

func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

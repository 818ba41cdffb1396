// Package utils 提供日志等横切工具
package utils

import (
	"log"
)

// Logger 是注入到处理器等组件的日志接口
// 四个格式化方法对应四个常用级别，输出去向由实现方决定
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// DefaultLogger 基于标准库 log 的缺省实现，组件未注入日志器时使用
type DefaultLogger struct{}

// NewDefaultLogger 返回缺省日志实现
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+format, args...)
}

// LogLevel 日志级别
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// LeveledLogger 包装一个 Logger，过滤低于指定级别的日志
type LeveledLogger struct {
	inner Logger
	level LogLevel
}

// NewLeveledLoggerWithLevel 创建带级别过滤的日志包装器
func NewLeveledLoggerWithLevel(inner Logger, level LogLevel) *LeveledLogger {
	if inner == nil {
		inner = NewDefaultLogger()
	}
	return &LeveledLogger{inner: inner, level: level}
}

func (l *LeveledLogger) Debugf(format string, args ...interface{}) {
	if l.level <= DebugLevel {
		l.inner.Debugf(format, args...)
	}
}

func (l *LeveledLogger) Infof(format string, args ...interface{}) {
	if l.level <= InfoLevel {
		l.inner.Infof(format, args...)
	}
}

func (l *LeveledLogger) Warnf(format string, args ...interface{}) {
	if l.level <= WarnLevel {
		l.inner.Warnf(format, args...)
	}
}

func (l *LeveledLogger) Errorf(format string, args ...interface{}) {
	if l.level <= ErrorLevel {
		l.inner.Errorf(format, args...)
	}
}

package batch_heap

import (
	"github.com/iheCoder/batch_heap/heap"
	"github.com/iheCoder/batch_heap/metrics"
	"github.com/iheCoder/batch_heap/trace"
	"github.com/iheCoder/batch_heap/utils"
)

// ProcessorOption 定义处理器的配置选项
type ProcessorOption[T heap.Scalar, A any] func(*Processor[T, A])

// WithLogger 设置自定义日志记录器
func WithLogger[T heap.Scalar, A any](logger utils.Logger) ProcessorOption[T, A] {
	return func(p *Processor[T, A]) {
		if logger != nil {
			p.Logger = logger
		}
	}
}

// WithSink 设置跟踪输出，构造时注入一次，替代逐调用传递
func WithSink[T heap.Scalar, A any](sink trace.Sink) ProcessorOption[T, A] {
	return func(p *Processor[T, A]) {
		if sink != nil {
			p.Sink = sink
		}
	}
}

// WithMetrics 启用指标上报，manager 为 nil 时使用默认管理器
func WithMetrics[T heap.Scalar, A any](manager *metrics.MetricsManager) ProcessorOption[T, A] {
	return func(p *Processor[T, A]) {
		p.UseMetrics = true
		if manager != nil {
			p.Metrics = manager
		}
	}
}

// WithProcessorID 设置处理器ID，用于诊断和指标标签
func WithProcessorID[T heap.Scalar, A any](id string) ProcessorOption[T, A] {
	return func(p *Processor[T, A]) {
		if id != "" {
			p.ID = id
		}
	}
}

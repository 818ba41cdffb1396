package batch_heap

import (
	"github.com/iheCoder/batch_heap/heap"
)

// PropertyArg 是分类操作单个批次的参数
type PropertyArg[T heap.Scalar] struct {
	Name      string
	Pos       int
	Count     int
	Predicate func(T) bool
}

// Classify 对堆内驻留数据逐批求值谓词，并把结果记录为命名布尔属性数组
// 调用 Perform 时不提供输入（nil input），即对堆自身的驻留数据进行处理
type Classify[T heap.Scalar] struct {
	property  string
	predicate func(T) bool
}

// NewClassify 创建一个分类操作，绑定属性名和谓词
func NewClassify[T heap.Scalar](property string, predicate func(T) bool) *Classify[T] {
	return &Classify[T]{
		property:  property,
		predicate: predicate,
	}
}

func (op *Classify[T]) Name() string {
	return "classify"
}

// MakeArg 返回当前批次的属性写入参数
func (op *Classify[T]) MakeArg(data []T, batchIndex, batchSize, pos, count int) PropertyArg[T] {
	return PropertyArg[T]{
		Name:      op.property,
		Pos:       pos,
		Count:     count,
		Predicate: op.predicate,
	}
}

// Do 把谓词结果写入属性数组
// 位置0的批次负责分配数组，后续批次要求数组已存在（批次顺序由 Processor 保证）
func (op *Classify[T]) Do(h *heap.Heap[T], arg PropertyArg[T]) error {
	return h.SetOrExtendProperty(arg.Name, arg.Pos, arg.Count, arg.Predicate)
}

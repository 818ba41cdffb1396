package batch_heap

import (
	"github.com/iheCoder/batch_heap/heap"
	"github.com/pkg/errors"
)

// Ingest 把新的输入数据按批次追加到堆
// 适用于输入数据与堆内已有内容不相交的场景
type Ingest[T heap.Scalar] struct{}

// NewIngest 创建一个摄入操作
func NewIngest[T heap.Scalar]() *Ingest[T] {
	return &Ingest[T]{}
}

func (op *Ingest[T]) Name() string {
	return "ingest"
}

// MakeArg 返回当前批次对应的输入切片
func (op *Ingest[T]) MakeArg(data []T, batchIndex, batchSize, pos, count int) []T {
	return data[pos : pos+count]
}

// Do 把批次切片追加到堆
// Append 本身不复查边界，剩余空间在这里检查
func (op *Ingest[T]) Do(h *heap.Heap[T], arg []T) error {
	if h.Size()+len(arg) > h.Capacity() {
		return errors.Errorf("ingest would exceed heap capacity: size=%d, batch=%d, capacity=%d",
			h.Size(), len(arg), h.Capacity())
	}

	h.Append(arg)
	return nil
}

package batch_heap

import (
	"github.com/iheCoder/batch_heap/heap"
)

// Operation is an interface that batch operations must implement.
// T is the heap element type; A is the per-batch argument type built by MakeArg.
type Operation[T heap.Scalar, A any] interface {
	// Name returns a stable identifier for the operation type, used only for diagnostics
	Name() string

	// MakeArg builds the argument for one batch from the full data slice and
	// the batch geometry. batchIndex is 1-based. MakeArg is a pure function of
	// its inputs plus instance configuration and must not mutate the heap.
	MakeArg(data []T, batchIndex, batchSize, pos, count int) A

	// Do applies the operation to the heap using the argument built by MakeArg.
	// Do is the only point where heap mutation occurs and may fail.
	Do(h *heap.Heap[T], arg A) error
}

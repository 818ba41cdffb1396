// Package heap 提供容量固定、只增不减的泛型缓冲区，
// 以及与缓冲区位置一一对齐的命名布尔属性表
package heap

import "sort"

// Scalar 约束堆元素为固定布局、可整体拷贝的标量值类型
// 不允许指针或任何间接引用，保证 Append 可以按连续内存块拷贝
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Heap 是一个容量固定的只增缓冲区，外加一张命名布尔属性表
// 属性数组长度恒等于容量，与缓冲区位置对齐
//
// 非线程安全：设计上由单一调用方独占持有，一次 Perform 执行期间
// 不允许任何并发修改（见 Processor 的串行模型）
type Heap[T Scalar] struct {
	capacity   int
	data       []T
	size       int
	properties map[string][]bool
}

// New 创建一个固定容量的堆，容量在创建后不可变更
func New[T Scalar](capacity int) (*Heap[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Heap[T]{
		capacity:   capacity,
		data:       make([]T, capacity),
		properties: make(map[string][]bool),
	}, nil
}

// Capacity 返回堆的固定容量
func (h *Heap[T]) Capacity() int {
	return h.capacity
}

// Size 返回当前已写入有效数据的位置数量，只增不减
func (h *Heap[T]) Size() int {
	return h.size
}

// Resident 返回已写入数据的前缀视图 data[:size]（非拷贝）
func (h *Heap[T]) Resident() []T {
	return h.data[:h.size]
}

// Data 返回整个容量范围的缓冲区视图（非拷贝），写入边界之后的位置为零值
func (h *Heap[T]) Data() []T {
	return h.data
}

// Append 将 input 从写入边界处开始连续拷贝进缓冲区，并推进 size
// 前置条件 size+len(input) <= capacity 由调用方（Ingest 操作）保证，这里不再复查
func (h *Heap[T]) Append(input []T) {
	copy(h.data[h.size:], input)
	h.size += len(input)
}

// Stats 汇总堆的只读统计信息，供监控接口使用
type Stats struct {
	Capacity   int      `json:"capacity"`
	Size       int      `json:"size"`
	Properties []string `json:"properties"`
}

// Stats 返回当前堆的统计快照，属性名按字典序排列
func (h *Heap[T]) Stats() Stats {
	names := make([]string, 0, len(h.properties))
	for name := range h.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	return Stats{
		Capacity:   h.capacity,
		Size:       h.size,
		Properties: names,
	}
}

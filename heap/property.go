package heap

import (
	"github.com/pkg/errors"
)

// GetProperty 返回指定名称的属性数组及其是否存在
// 返回的是底层数组本身（非拷贝）；不存在时显式返回 false，绝不返回空数组兜底
func (h *Heap[T]) GetProperty(name string) ([]bool, bool) {
	arr, ok := h.properties[name]
	return arr, ok
}

// SetOrExtendProperty 对缓冲区位置 [pos, pos+count) 逐一求值 predicate，
// 并把结果写入同名属性数组的相同下标，其余下标保持不变
//
// pos == 0 表示该属性的首个批次：分配一个 capacity 长度的全新数组，
// 覆盖同名旧数组；pos > 0 要求数组已存在，否则说明该属性位置0的首批次
// 从未执行（批次乱序），返回状态错误
func (h *Heap[T]) SetOrExtendProperty(name string, pos, count int, predicate func(T) bool) error {
	if pos < 0 || count < 0 || pos+count > h.capacity {
		return errors.Wrapf(ErrPropertyRangeOutOfBounds,
			"property %q range [%d, %d), capacity %d", name, pos, pos+count, h.capacity)
	}

	var arr []bool
	if pos == 0 {
		arr = make([]bool, h.capacity)
		h.properties[name] = arr
	} else {
		var ok bool
		arr, ok = h.properties[name]
		if !ok {
			return errors.Wrapf(ErrPropertyNotAllocated,
				"property %q extended at pos %d but its first batch at pos 0 never ran", name, pos)
		}
	}

	for i := pos; i < pos+count; i++ {
		arr[i] = predicate(h.data[i])
	}

	return nil
}

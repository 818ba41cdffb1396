package heap

import "errors"

var (
	ErrInvalidCapacity = errors.New("heap: capacity must be positive")

	// 属性状态错误定义 - 用于区分批次乱序导致的未分配状态和普通的越界错误
	ErrPropertyNotAllocated     = errors.New("heap: property not allocated")
	ErrPropertyRangeOutOfBounds = errors.New("heap: property range out of bounds")
)

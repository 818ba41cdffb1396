package model

import (
	"errors"
)

// 批次处理相关的默认配置常量
const (
	DefaultBatchSize = 64 // 默认批次大小，调用方未指定时使用
)

// 配置错误定义 - 在任何批次执行前同步校验，直接返回给调用方，
// 不会被批次循环的错误边界吸收为布尔结果
var (
	ErrInvalidBatchSize     = errors.New("batch size must be positive")
	ErrBatchSizeExceedsData = errors.New("batch size exceeds input length")
	ErrDataExceedsCapacity  = errors.New("input length exceeds heap capacity")
)

// BatchInfo 描述单个批次的几何信息
// 批次序号从1开始；Count 等于批次大小，仅最后一个批次可能是余数
// 只在一次 Perform 调用内部存在，不做任何持久化
type BatchInfo struct {
	BatchIndex int `json:"batch_index"`
	BatchSize  int `json:"batch_size"`
	Pos        int `json:"pos"`
	Count      int `json:"count"`
}

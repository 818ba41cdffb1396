package batch_heap

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/iheCoder/batch_heap/heap"
	"github.com/iheCoder/batch_heap/metrics"
	"github.com/iheCoder/batch_heap/model"
	"github.com/iheCoder/batch_heap/trace"
	"github.com/iheCoder/batch_heap/utils"
	"github.com/pkg/errors"
)

// Processor 把总输入划分为批次，并串行驱动一个操作作用于堆
//
// 批次严格按序执行：第 k+1 个批次必须等第 k 个批次的动作完成后才开始，
// 因为后续批次可能依赖只有首个批次才会建立的状态（例如属性数组在位置0的分配）
type Processor[T heap.Scalar, A any] struct {
	// 核心字段
	ID     string
	Logger utils.Logger
	Sink   trace.Sink

	// 指标上报配置
	UseMetrics bool
	Metrics    *metrics.MetricsManager
}

// NewProcessor 创建一个新的处理器实例，使用选项模式配置可选参数
func NewProcessor[T heap.Scalar, A any](options ...ProcessorOption[T, A]) *Processor[T, A] {
	p := &Processor[T, A]{
		ID:     generateProcessorID(),
		Logger: utils.NewDefaultLogger(),
		Sink:   trace.NewNopSink(),

		UseMetrics: false,
		Metrics:    metrics.NewMetricsManager(),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// generateProcessorID 生成唯一的处理器ID
func generateProcessorID() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}
	return fmt.Sprintf("%s-%d-%s", hostname, os.Getpid(), uuid.New().String()[:8])
}

// Perform 把 input（为 nil 时取堆内驻留数据）划分为批次并串行执行 op
//
// 返回值约定：
//   - 配置错误（批次大小非法、批次大小超过数据长度、数据长度超过堆容量）
//     在任何批次执行前直接作为 error 返回，不会被批次边界吸收
//   - 批次执行期间的任何失败被边界捕获：立即停止剩余批次、保留已执行批次
//     的变更（不回滚）、向 Sink 输出失败批次序号/总批次数及完整的错误原因链，
//     返回 (false, nil)
//   - 全部批次完成返回 (true, nil)
//
// ctx 仅传递给 Sink 等外部输出；批次循环一旦开始不会被取消
func (p *Processor[T, A]) Perform(ctx context.Context, op Operation[T, A], input []T, h *heap.Heap[T], batchSize int) (bool, error) {
	start := time.Now()

	if batchSize <= 0 {
		return false, errors.Wrapf(model.ErrInvalidBatchSize, "batch size %d", batchSize)
	}

	data := input
	if data == nil {
		data = h.Resident()
	}

	// 空输入：零个批次，视为平凡成功
	if len(data) == 0 {
		p.Logger.Debugf("操作 %s 输入为空，没有批次需要执行", op.Name())
		return true, nil
	}

	if batchSize > len(data) {
		return false, errors.Wrapf(model.ErrBatchSizeExceedsData,
			"batch size %d, input length %d", batchSize, len(data))
	}
	if len(data) > h.Capacity() {
		return false, errors.Wrapf(model.ErrDataExceedsCapacity,
			"input length %d, heap capacity %d", len(data), h.Capacity())
	}

	batches := partitionBatches(len(data), batchSize)
	p.Logger.Infof("处理器 %s 开始执行操作 %s: 数据长度=%d, 批次大小=%d, 总批次数=%d",
		p.ID, op.Name(), len(data), batchSize, len(batches))

	for _, b := range batches {
		arg := op.MakeArg(data, b.BatchIndex, b.BatchSize, b.Pos, b.Count)

		if err := p.runBatch(op, h, arg); err != nil {
			p.reportFailure(ctx, op.Name(), b.BatchIndex, len(batches), err)

			if p.UseMetrics {
				p.Metrics.IncBatchFailures(op.Name())
				p.Metrics.ObservePerform(op.Name(), false, time.Since(start))
				p.Metrics.SetHeapOccupancy(p.ID, h.Size(), h.Capacity())
			}
			return false, nil
		}

		if p.UseMetrics {
			p.Metrics.IncBatchesProcessed(op.Name())
		}
	}

	if p.UseMetrics {
		p.Metrics.ObservePerform(op.Name(), true, time.Since(start))
		p.Metrics.SetHeapOccupancy(p.ID, h.Size(), h.Capacity())
	}

	p.Logger.Infof("操作 %s 全部 %d 个批次执行完成", op.Name(), len(batches))
	return true, nil
}

// partitionBatches 计算批次划分
// 整除时没有尾部短批次；不整除时最后一个批次的数量为余数
func partitionBatches(dataLen, batchSize int) []model.BatchInfo {
	fullBatches := dataLen / batchSize
	remainder := dataLen % batchSize

	totalBatches := fullBatches
	if remainder > 0 {
		totalBatches++
	}

	batches := make([]model.BatchInfo, 0, totalBatches)
	for batchIndex := 1; batchIndex <= totalBatches; batchIndex++ {
		count := batchSize
		if batchIndex > fullBatches {
			count = remainder
		}

		batches = append(batches, model.BatchInfo{
			BatchIndex: batchIndex,
			BatchSize:  batchSize,
			Pos:        (batchIndex - 1) * batchSize,
			Count:      count,
		})
	}

	return batches
}

// runBatch 执行单个批次的动作，并把 panic 统一转换为 error
// 谓词等调用方代码可能 panic，不能让它越过 Perform 边界
func (p *Processor[T, A]) runBatch(op Operation[T, A], h *heap.Heap[T], arg A) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("operation %s panicked: %v", op.Name(), r)
		}
	}()

	return op.Do(h, arg)
}

// reportFailure 向 Sink 输出失败批次的上下文，以及从外到内逐层展开的错误原因链
func (p *Processor[T, A]) reportFailure(ctx context.Context, opName string, batchIndex, totalBatches int, batchErr error) {
	p.Logger.Errorf("操作 %s 第 %d/%d 批次执行失败: %v", opName, batchIndex, totalBatches, batchErr)

	p.emit(ctx, fmt.Sprintf("operation %s: batch %d/%d failed", opName, batchIndex, totalBatches))

	var prev string
	for cause := batchErr; cause != nil; cause = stderrors.Unwrap(cause) {
		msg := cause.Error()
		// pkg/errors 的 withStack 与 withMessage 共享同一文案，跳过连续重复行
		if msg == prev {
			continue
		}
		p.emit(ctx, msg)
		prev = msg
	}
}

// emit 输出一行到 Sink；Sink 自身的失败只记日志，不影响执行结果
func (p *Processor[T, A]) emit(ctx context.Context, line string) {
	if err := p.Sink.Emit(ctx, line); err != nil {
		p.Logger.Warnf("写入跟踪输出失败: %v", err)
	}
}

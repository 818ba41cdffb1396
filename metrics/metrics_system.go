package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// 默认命名空间
	DefaultNamespace = "batch_heap"
)

var (
	// 全局命名空间，可以通过配置修改
	namespace = DefaultNamespace

	// === Perform 相关指标 ===

	// Perform 调用总数，按操作名和结果（success/failure）区分
	PerformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "performs_total",
			Help:      "Total number of Perform calls by operation and result.",
		},
		[]string{"operation", "result"},
	)

	// 单次 Perform 调用的耗时分布
	PerformDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "perform_duration_seconds",
			Help:      "Duration distribution of Perform calls.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"operation"},
	)

	// === 批次相关指标 ===

	// 成功执行完成的批次总数
	BatchesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_processed_total",
			Help:      "Total number of batches successfully processed by operation.",
		},
		[]string{"operation"},
	)

	// 执行失败并终止 Perform 的批次总数
	BatchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_failures_total",
			Help:      "Total number of batch failures that aborted a Perform call.",
		},
		[]string{"operation"},
	)

	// === 堆相关指标 ===

	// 堆当前已写入的槽位数量
	HeapSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_size",
			Help:      "Number of heap slots currently holding appended data.",
		},
		[]string{"processor_id"},
	)

	// 堆占用率（size/capacity）
	HeapUtilization = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_utilization",
			Help:      "Ratio of heap size to heap capacity.",
		},
		[]string{"processor_id"},
	)
)

// MetricsManager 管理监控指标的结构体
type MetricsManager struct {
	namespace string
	enabled   bool
}

// NewMetricsManager 创建新的指标管理器
func NewMetricsManager(customNamespace ...string) *MetricsManager {
	ns := namespace
	if len(customNamespace) > 0 && customNamespace[0] != "" {
		ns = customNamespace[0]
	}

	return &MetricsManager{
		namespace: ns,
		enabled:   true,
	}
}

// SetEnabled 设置监控系统开关
func (m *MetricsManager) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// IsEnabled 检查监控系统是否启用
func (m *MetricsManager) IsEnabled() bool {
	return m.enabled
}

// === Perform 相关指标操作方法 ===

// ObservePerform 记录一次 Perform 调用的结果和耗时
func (m *MetricsManager) ObservePerform(operation string, success bool, duration time.Duration) {
	if !m.enabled {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	PerformsTotal.WithLabelValues(operation, result).Inc()
	PerformDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncBatchesProcessed 增加成功批次计数
func (m *MetricsManager) IncBatchesProcessed(operation string) {
	if !m.enabled {
		return
	}
	BatchesProcessedTotal.WithLabelValues(operation).Inc()
}

// IncBatchFailures 增加失败批次计数
func (m *MetricsManager) IncBatchFailures(operation string) {
	if !m.enabled {
		return
	}
	BatchFailuresTotal.WithLabelValues(operation).Inc()
}

// === 堆相关指标操作方法 ===

// SetHeapOccupancy 更新堆占用指标
func (m *MetricsManager) SetHeapOccupancy(processorID string, size, capacity int) {
	if !m.enabled {
		return
	}
	HeapSize.WithLabelValues(processorID).Set(float64(size))
	if capacity > 0 {
		HeapUtilization.WithLabelValues(processorID).Set(float64(size) / float64(capacity))
	}
}

// StartMetricsServer 启动指标HTTP服务
func (m *MetricsManager) StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return http.ListenAndServe(addr, mux)
}

// GetMetricsHandler 返回指标处理器，用于挂载到已有的HTTP服务
func (m *MetricsManager) GetMetricsHandler() http.Handler {
	if !m.enabled {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "metrics disabled", http.StatusServiceUnavailable)
		})
	}
	return promhttp.Handler()
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/iheCoder/batch_heap/utils"
)

// HeapStatsResponse 堆统计响应结构
type HeapStatsResponse struct {
	// Capacity 堆的固定容量
	Capacity int `json:"capacity"`
	// Size 当前已写入的槽位数量
	Size int `json:"size"`
	// Utilization 占用率（size/capacity）
	Utilization float64 `json:"utilization"`
	// Properties 已分配的属性名列表，按字典序
	Properties []string `json:"properties"`
}

// ErrorResponse 通用错误响应结构
type ErrorResponse struct {
	// Success 操作是否成功
	Success bool `json:"success"`
	// Message 响应消息
	Message string `json:"message"`
}

// HeapStatsHandler HTTP处理器，返回堆的统计快照
func HeapStatsHandler(stats StatsProvider, logger utils.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 设置响应头
		w.Header().Set("Content-Type", "application/json")

		// 只接受GET请求
		if r.Method != http.MethodGet {
			response := ErrorResponse{
				Success: false,
				Message: "只支持GET方法",
			}
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(response)
			return
		}

		if stats == nil {
			response := ErrorResponse{
				Success: false,
				Message: "未配置堆统计来源",
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(response)
			return
		}

		s := stats.Stats()
		response := HeapStatsResponse{
			Capacity:   s.Capacity,
			Size:       s.Size,
			Properties: s.Properties,
		}
		if s.Capacity > 0 {
			response.Utilization = float64(s.Size) / float64(s.Capacity)
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Errorf("编码堆统计响应失败: %v", err)
		}
	}
}

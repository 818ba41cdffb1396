package http

import (
	"net/http"
	"time"

	"github.com/iheCoder/batch_heap/heap"
	"github.com/iheCoder/batch_heap/utils"
)

// StatsProvider 提供堆统计信息
// *heap.Heap[T] 通过其 Stats 方法满足该接口
type StatsProvider interface {
	Stats() heap.Stats
}

// Router HTTP路由器
type Router struct {
	stats  StatsProvider
	logger utils.Logger
}

// NewRouter 创建新的路由器
func NewRouter(stats StatsProvider, logger utils.Logger) *Router {
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Router{
		stats:  stats,
		logger: logger,
	}
}

// SetupRoutes 设置路由
func (rt *Router) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API路由
	mux.HandleFunc("/api/v1/heap/stats", HeapStatsHandler(rt.stats, rt.logger))
	mux.HandleFunc("/health", rt.healthCheckHandler)

	// 添加中间件
	return rt.withMiddleware(mux)
}

// healthCheckHandler 健康检查处理器
func (rt *Router) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","service":"batch-heap"}`))
}

// withMiddleware 添加中间件
func (rt *Router) withMiddleware(handler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", rt.loggingMiddleware(rt.corsMiddleware(handler)))
	return mux
}

// loggingMiddleware 日志中间件
func (rt *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// 包装ResponseWriter以捕获状态码
		wrappedWriter := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(wrappedWriter, r)

		duration := time.Since(start)
		rt.logger.Infof("HTTP %s %s - %d - %v", r.Method, r.URL.Path, wrappedWriter.statusCode, duration)
	})
}

// corsMiddleware 跨域中间件
func (rt *Router) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter 包装 http.ResponseWriter 以记录状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/handler"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/metrics"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。
// ヘッダが無ければ生成し、下流呼び出しへ伝搬できるようリクエストのコンテキストにも設定する。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(httputil.HeaderTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(handler.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(httputil.WithTraceID(c.Request.Context(), traceID))
		c.Header(httputil.HeaderTraceID, traceID)
		c.Next()
	}
}

// LoggingMiddleware はリクエストログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info("request completed",
			logging.WithTraceID(c.GetString(handler.TraceIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			logging.WithHTTPStatus(c.Writer.Status()),
			logging.WithLatency(time.Since(start).Milliseconds()),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					logging.WithTraceID(c.GetString(handler.TraceIDKey)),
					logging.WithEventID("PANIC_RECOVERED"),
					slog.Any("error", err),
				)
				httputil.AbortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
			}
		}()
		c.Next()
	}
}

// MetricsMiddleware はルート単位のリクエスト数とレイテンシを記録する。
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		collector.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

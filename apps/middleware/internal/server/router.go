package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/handler"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/metrics"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.RequestHandler, collector *metrics.Collector) {
	// ヘルスチェック・メトリクス
	engine.GET("/health", h.HandleHealth)
	engine.GET("/metrics", gin.WrapH(collector.Handler()))

	api := engine.Group("/api")
	{
		api.POST("/request", h.HandleCreate)
		api.GET("/request/:externalRequestId", h.HandleGet)
		api.PATCH("/request/:externalRequestId/:state", h.HandleTransition)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/dto"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

// HandleHealth はGET /health のハンドラー。Valkeyに届かなければ503を返す。
func (h *RequestHandler) HandleHealth(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			slog.Warn("health check failed",
				logging.WithTraceID(c.GetString(TraceIDKey)),
				logging.WithEventID("HEALTH_VALKEY_ERR"),
				logging.WithError(err),
			)
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Valkey: "unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Valkey: "ok"})
}

// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/dto"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/usecase"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

// TraceIDKey はgin.ContextにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// Pinger はヘルスチェックで使う接続確認のインターフェース。
type Pinger interface {
	Ping(ctx context.Context) error
}

// RequestHandler はリクエストAPIのハンドラー。
type RequestHandler struct {
	useCase usecase.RequestUseCaseInterface
	pinger  Pinger
}

// NewRequestHandler は新しいRequestHandlerを生成する。
func NewRequestHandler(useCase usecase.RequestUseCaseInterface, pinger Pinger) *RequestHandler {
	return &RequestHandler{
		useCase: useCase,
		pinger:  pinger,
	}
}

// HandleCreate はPOST /api/request のハンドラー。
// 成功時は台帳のレスポンスボディをそのまま返す。
func (h *RequestHandler) HandleCreate(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)

	var req dto.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(traceID),
			logging.WithEventID("REQ_VALIDATION_ERR"),
			logging.WithError(err),
		)
		httputil.WriteError(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	body, err := h.useCase.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, traceID, "", err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// HandleTransition はPATCH /api/request/:externalRequestId/:state のハンドラー。
func (h *RequestHandler) HandleTransition(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)
	externalID := c.Param("externalRequestId")

	resp, err := h.useCase.Transition(c.Request.Context(), externalID, c.Param("state"))
	if err != nil {
		h.handleError(c, traceID, externalID, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGet はGET /api/request/:externalRequestId のハンドラー。
func (h *RequestHandler) HandleGet(c *gin.Context) {
	traceID := c.GetString(TraceIDKey)
	externalID := c.Param("externalRequestId")

	view, err := h.useCase.Get(c.Request.Context(), externalID)
	if err != nil {
		h.handleError(c, traceID, externalID, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleError はエラーレスポンスを処理する。
func (h *RequestHandler) handleError(c *gin.Context, traceID, externalID string, err error) {
	var problemErr *usecase.ProblemError
	if errors.As(err, &problemErr) {
		attrs := []any{
			logging.WithTraceID(traceID),
			logging.WithEventID(problemErr.EventID),
			logging.WithHTTPStatus(problemErr.Status),
		}
		if externalID != "" {
			attrs = append(attrs, logging.WithExternalID(externalID))
		}
		if problemErr.Cause != nil {
			attrs = append(attrs, logging.WithError(problemErr.Cause))
		}
		slog.Log(c.Request.Context(), problemErr.LogLevel(), problemErr.Message, attrs...)
		c.JSON(problemErr.Status, problemErr.ToErrorBody())
		return
	}

	// 予期しないエラー
	slog.Error("unexpected error",
		logging.WithTraceID(traceID),
		logging.WithEventID("REQ_UNEXPECTED_ERR"),
		logging.WithError(err),
	)
	httputil.WriteError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

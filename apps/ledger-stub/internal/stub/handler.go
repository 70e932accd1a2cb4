package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

// CreateResponse はPOST /api/create のレスポンス。
type CreateResponse struct {
	RequestID       string `json:"requestId"`
	ExternalID      string `json:"externalId"`
	Message         string `json:"message"`
	TransactionHash string `json:"transactionHash"`
}

// Handler は台帳スタブのHTTPハンドラー。
type Handler struct {
	registry *Registry
}

// NewHandler は新しいHandlerを生成する。
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// Register はルーティングを設定する。
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/health", h.HandleHealth)

	api := engine.Group("/api")
	{
		api.POST("/create", h.HandleCreate)
		api.GET("/request/:id", h.HandleGet)
		api.GET("/requests", h.HandleList)
	}
}

// HandleCreate はPOST /api/create のハンドラー。
func (h *Handler) HandleCreate(c *gin.Context) {
	var body createBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httputil.WriteError(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if missing := body.missing(); len(missing) > 0 {
		httputil.WriteError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	var (
		contractAddress string
		numUsers        int
		durationMins    *int
	)
	if err := json.Unmarshal(body["contractAddress"], &contractAddress); err != nil {
		httputil.WriteError(c, http.StatusBadRequest, "contractAddress must be a string")
		return
	}
	if err := json.Unmarshal(body["numUsers"], &numUsers); err != nil {
		httputil.WriteError(c, http.StatusBadRequest, "numUsers must be an integer")
		return
	}
	if err := json.Unmarshal(body["durationMins"], &durationMins); err != nil {
		httputil.WriteError(c, http.StatusBadRequest, "durationMins must be an integer or null")
		return
	}

	entry := h.registry.Create(contractAddress, numUsers, durationMins)
	slog.Info("ledger request created",
		logging.WithEventID("LEDGER_STUB_CREATE"),
		logging.WithExternalID(entry.RequestID),
		slog.Int("num_users", numUsers),
	)

	c.JSON(http.StatusOK, CreateResponse{
		RequestID:       entry.RequestID,
		ExternalID:      entry.RequestID,
		Message:         "Request created successfully",
		TransactionHash: newHexID(),
	})
}

// HandleGet はGET /api/request/:id のハンドラー。
func (h *Handler) HandleGet(c *gin.Context) {
	entry, ok := h.registry.Get(c.Param("id"))
	if !ok {
		httputil.WriteError(c, http.StatusNotFound, "Request not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// HandleList はGET /api/requests のハンドラー。
func (h *Handler) HandleList(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// HandleHealth はGET /health のハンドラー。
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ledger-stub"})
}

// Package ledger は台帳サービスのクライアントを提供する。
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/downstream"
	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
)

// BackendName は台帳サービスのバックエンド名。
const BackendName = "ledger"

// ActionCreate は登録操作名。
const ActionCreate = "create"

// Client は台帳サービスクライアントの実装
type Client struct {
	caller  *downstream.Caller
	baseURL string
}

// NewClient は新しい台帳サービスクライアントを生成する。
func NewClient(cfg *config.Config, observer downstream.Observer) *Client {
	return &Client{
		caller:  downstream.NewCaller(BackendName, config.CBNameLedger, cfg.DownstreamTimeout, observer),
		baseURL: strings.TrimRight(cfg.LedgerURL, "/"),
	}
}

// Create はリクエストを台帳サービスに登録し、払い出された外部IDを返す。
func (c *Client) Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	body, err := c.caller.Do(ctx, ActionCreate, http.MethodPost, c.baseURL+"/create", req)
	if err != nil {
		return nil, err
	}

	var parsed createResponseJSON
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apperr.NewBackendError(BackendName, ActionCreate, http.StatusOK,
			fmt.Errorf("%w: %v", apperr.ErrInvalidResponse, err))
	}

	externalID := parsed.ExternalID
	if externalID == "" {
		externalID = parsed.RequestID
	}
	if externalID == "" {
		return nil, apperr.NewBackendError(BackendName, ActionCreate, http.StatusOK, apperr.ErrMissingExternalID)
	}

	return &CreateResponse{
		ExternalID: externalID,
		Body:       json.RawMessage(body),
	}, nil
}

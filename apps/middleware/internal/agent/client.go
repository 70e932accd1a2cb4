// Package agent はRANエージェントのクライアントを提供する。
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/downstream"
	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// BackendName はRANエージェントのバックエンド名。
const BackendName = "agent"

// Client はRANエージェントクライアントの実装
type Client struct {
	caller      *downstream.Caller
	resourceURL string
	feature     string
}

// NewClient は新しいRANエージェントクライアントを生成する。
func NewClient(cfg *config.Config, observer downstream.Observer) *Client {
	return &Client{
		caller:      downstream.NewCaller(BackendName, config.CBNameAgent, cfg.DownstreamTimeout, observer),
		resourceURL: strings.TrimRight(cfg.AgentURL, "/") + "/resource/" + url.PathEscape(cfg.AgentGNBID),
		feature:     cfg.AgentFeatureName,
	}
}

// Restart はgNodeBを指定の設定で再起動する。
func (c *Client) Restart(ctx context.Context, rc *RestartConfig) error {
	_, err := c.call(ctx, ActionRestart, rc.Parameters())
	return err
}

// GetAllUEs はエージェントに登録された全UEを取得する。
func (c *Client) GetAllUEs(ctx context.Context) ([]*model.UE, error) {
	body, err := c.call(ctx, ActionGetAllUEs, nil)
	if err != nil {
		return nil, err
	}

	var resp getAllUEsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.NewBackendError(BackendName, ActionGetAllUEs, http.StatusOK,
			fmt.Errorf("%w: %v", apperr.ErrInvalidResponse, err))
	}
	return resp.UEs, nil
}

// UpdateUEs は指定したUEをエージェントに書き戻す。
func (c *Client) UpdateUEs(ctx context.Context, ues []*model.UE) error {
	_, err := c.call(ctx, ActionUpdateUEs, ues)
	return err
}

func (c *Client) call(ctx context.Context, action string, params any) ([]byte, error) {
	return c.caller.Do(ctx, action, http.MethodPatch, c.resourceURL, newEnvelope(c.feature, action, params))
}

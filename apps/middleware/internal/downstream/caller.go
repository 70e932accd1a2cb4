// Package downstream は台帳・RANエージェントへのHTTP呼び出しの共通処理を提供する。
package downstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

// 呼び出し結果のラベル
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeTimeout     = "timeout"
	OutcomeCircuitOpen = "circuit_open"
)

// Observer は下流呼び出しの結果を受け取る。
type Observer interface {
	ObserveDownstream(backend, action, outcome string, elapsed time.Duration)
}

// Caller はサーキットブレーカー越しにHTTP呼び出しを行う。
type Caller struct {
	backend    string
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	observer   Observer
}

// NewCaller は新しいCallerを生成する。
func NewCaller(backend, cbName string, timeout time.Duration, observer Observer) *Caller {
	cbSettings := gobreaker.Settings{
		Name:        cbName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Caller{
		backend:    backend,
		httpClient: resty.New().SetTimeout(timeout),
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		observer:   observer,
	}
}

// Do はJSONボディ付きのリクエストを送信し、2xxの場合にレスポンスボディを返す。
// 2xx以外・タイムアウト・接続失敗はすべて*apperr.BackendErrorとして返す。
// 5xxと通信失敗のみブレーカーの失敗として数える。
func (c *Caller) Do(ctx context.Context, action, method, url string, body any) ([]byte, error) {
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		req := c.httpClient.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json")
		if traceID := httputil.TraceIDFromContext(ctx); traceID != "" {
			req.SetHeader(httputil.HeaderTraceID, traceID)
		}
		if body != nil {
			req.SetBody(body)
		}

		resp, err := req.Execute(method, url)
		if err != nil {
			if isTimeout(err) {
				return nil, apperr.NewBackendError(c.backend, action, 0, fmt.Errorf("%w: %w", apperr.ErrGatewayTimeout, err))
			}
			return nil, apperr.NewBackendError(c.backend, action, 0, err)
		}

		status := resp.StatusCode()
		if status >= 500 {
			return nil, apperr.NewBackendError(c.backend, action, status, errors.New(resp.String()))
		}
		if !resp.IsSuccess() {
			// ブレーカーの失敗には数えない
			return apperr.NewBackendError(c.backend, action, status, errors.New(resp.String())), nil
		}
		return resp.Body(), nil
	})

	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = apperr.NewBackendError(c.backend, action, 0, apperr.ErrCircuitOpen)
		}
		c.finish(ctx, action, err, elapsed)
		return nil, err
	}
	if backendErr, ok := result.(*apperr.BackendError); ok {
		c.finish(ctx, action, backendErr, elapsed)
		return nil, backendErr
	}

	respBody, ok := result.([]byte)
	if !ok {
		err := apperr.NewBackendError(c.backend, action, 0, apperr.ErrInvalidResponse)
		c.finish(ctx, action, err, elapsed)
		return nil, err
	}
	c.finish(ctx, action, nil, elapsed)
	return respBody, nil
}

// finish は呼び出し結果をログとObserverに記録する。
func (c *Caller) finish(ctx context.Context, action string, err error, elapsed time.Duration) {
	outcome := Outcome(err)
	if c.observer != nil {
		c.observer.ObserveDownstream(c.backend, action, outcome, elapsed)
	}

	attrs := []any{
		logging.WithTraceID(httputil.TraceIDFromContext(ctx)),
		logging.WithBackend(c.backend, action),
		logging.WithLatency(elapsed.Milliseconds()),
	}
	if err == nil {
		slog.Debug("downstream call succeeded", attrs...)
		return
	}

	var backendErr *apperr.BackendError
	if errors.As(err, &backendErr) && backendErr.StatusCode != 0 {
		attrs = append(attrs, logging.WithHTTPStatus(backendErr.StatusCode))
	}
	attrs = append(attrs, logging.WithEventID("DOWNSTREAM_ERR"), logging.WithError(err))
	slog.Warn("downstream call failed", attrs...)
}

// Outcome はエラーをメトリクス用の結果ラベルに分類する。
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperr.ErrGatewayTimeout):
		return OutcomeTimeout
	case errors.Is(err, apperr.ErrCircuitOpen):
		return OutcomeCircuitOpen
	default:
		return OutcomeError
	}
}

// isTimeout はトランスポート層のタイムアウトかどうかを判定する。
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

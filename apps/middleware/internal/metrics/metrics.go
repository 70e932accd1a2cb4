// Package metrics はミドルウェアのPrometheusメトリクスを提供する。
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はミドルウェアのメトリクスをまとめて保持する。
// メソッドはnilレシーバでも安全に呼び出せる。
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests        *prometheus.CounterVec
	HTTPDurations       *prometheus.HistogramVec
	DownstreamCalls     *prometheus.CounterVec
	DownstreamDurations *prometheus.HistogramVec
	StateTransitions    *prometheus.CounterVec
	Restorations        *prometheus.CounterVec
}

// NewCollector はメトリクスを登録する。regがnilの場合はデフォルトレジストリを使う。
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	httpRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "middleware_http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"}), "middleware_http_requests_total")
	if err != nil {
		return nil, err
	}
	httpDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "middleware_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "route"}), "middleware_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}
	downstreamCalls, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "middleware_downstream_calls_total",
		Help: "Outbound ledger and agent calls by backend, action and outcome.",
	}, []string{"backend", "action", "outcome"}), "middleware_downstream_calls_total")
	if err != nil {
		return nil, err
	}
	downstreamDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "middleware_downstream_call_duration_seconds",
		Help:    "Outbound call latency in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"backend", "action"}), "middleware_downstream_call_duration_seconds")
	if err != nil {
		return nil, err
	}
	transitions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "middleware_request_state_transitions_total",
		Help: "Persisted request state changes by resulting state.",
	}, []string{"state"}), "middleware_request_state_transitions_total")
	if err != nil {
		return nil, err
	}
	restorations, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "middleware_restorations_total",
		Help: "Restoration runs by result (expired, restore_failed, skipped).",
	}, []string{"result"}), "middleware_restorations_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:            gatherer,
		HTTPRequests:        httpRequests,
		HTTPDurations:       httpDurations,
		DownstreamCalls:     downstreamCalls,
		DownstreamDurations: downstreamDurations,
		StateTransitions:    transitions,
		Restorations:        restorations,
	}, nil
}

// ObserveHTTP はHTTPリクエスト1件を記録する。
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDownstream は下流呼び出し1件を記録する。
func (c *Collector) ObserveDownstream(backend, action, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.DownstreamCalls.WithLabelValues(backend, action, outcome).Inc()
	c.DownstreamDurations.WithLabelValues(backend, action).Observe(elapsed.Seconds())
}

// RecordState は永続化された状態変化を記録する。
func (c *Collector) RecordState(state string) {
	if c == nil {
		return
	}
	c.StateTransitions.WithLabelValues(state).Inc()
}

// RecordRestore は復元処理の結果を記録する。
func (c *Collector) RecordRestore(result string) {
	if c == nil {
		return
	}
	c.Restorations.WithLabelValues(result).Inc()
}

// Handler は/metrics用のハンドラーを返す。
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

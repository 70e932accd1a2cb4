package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	c, err := NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}
	return c
}

func TestObserveDownstream(t *testing.T) {
	c := newTestCollector(t)

	c.ObserveDownstream("agent", "restart", "success", 20*time.Millisecond)
	c.ObserveDownstream("agent", "restart", "error", time.Millisecond)
	c.ObserveDownstream("agent", "restart", "success", time.Millisecond)

	if got := testutil.ToFloat64(c.DownstreamCalls.WithLabelValues("agent", "restart", "success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.DownstreamCalls.WithLabelValues("agent", "restart", "error")); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}

func TestRecordStateAndRestore(t *testing.T) {
	c := newTestCollector(t)

	c.RecordState("Pending")
	c.RecordState("Completed")
	c.RecordState("Completed")
	c.RecordRestore("expired")

	if got := testutil.ToFloat64(c.StateTransitions.WithLabelValues("Completed")); got != 2 {
		t.Errorf("Completed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Restorations.WithLabelValues("expired")); got != 1 {
		t.Errorf("expired = %v, want 1", got)
	}
}

func TestObserveHTTPUnmatchedRoute(t *testing.T) {
	c := newTestCollector(t)
	c.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched = %v, want 1", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveHTTP("GET", "/health", 200, time.Millisecond)
	c.ObserveDownstream("ledger", "create", "success", time.Millisecond)
	c.RecordState("Pending")
	c.RecordRestore("expired")
	if c.Handler() == nil {
		t.Error("Handler() should fall back to the default gatherer")
	}
}

func TestDoubleRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector() error = %v", err)
	}
	if first.StateTransitions != second.StateTransitions {
		t.Error("second collector should reuse the registered vectors")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := newTestCollector(t)
	c.RecordState("Expired")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `middleware_request_state_transitions_total{state="Expired"} 1`) {
		t.Errorf("metrics output missing transition counter:\n%s", rec.Body.String())
	}
}

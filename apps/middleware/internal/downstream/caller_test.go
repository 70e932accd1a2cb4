package downstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveDownstream(_, _, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func TestDoSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.Header.Get(httputil.HeaderTraceID) != "trace-1" {
			t.Errorf("trace header = %q", r.Header.Get(httputil.HeaderTraceID))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"a":1}` {
			t.Errorf("body = %s", body)
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	obs := &recordingObserver{}
	c := NewCaller("agent", "test-agent", time.Second, obs)
	ctx := httputil.WithTraceID(context.Background(), "trace-1")

	body, err := c.Do(ctx, "restart", http.MethodPatch, server.URL, map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != OutcomeSuccess {
		t.Errorf("outcomes = %v", obs.outcomes)
	}
}

func TestDoNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"client error", http.StatusBadRequest},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("nope"))
			}))
			defer server.Close()

			c := NewCaller("ledger", "test-ledger", time.Second, nil)
			_, err := c.Do(context.Background(), "create", http.MethodPost, server.URL, nil)

			var backendErr *apperr.BackendError
			if !errors.As(err, &backendErr) {
				t.Fatalf("error = %v, want BackendError", err)
			}
			if backendErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", backendErr.StatusCode, tt.status)
			}
			if backendErr.Backend != "ledger" || backendErr.Action != "create" {
				t.Errorf("backend/action = %s/%s", backendErr.Backend, backendErr.Action)
			}
			if Outcome(err) != OutcomeError {
				t.Errorf("Outcome() = %s", Outcome(err))
			}
		})
	}
}

func TestDoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	obs := &recordingObserver{}
	c := NewCaller("agent", "test-timeout", 50*time.Millisecond, obs)
	_, err := c.Do(context.Background(), "get_all_ues", http.MethodPatch, server.URL, nil)

	if !errors.Is(err, apperr.ErrGatewayTimeout) {
		t.Fatalf("error = %v, want ErrGatewayTimeout", err)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != OutcomeTimeout {
		t.Errorf("outcomes = %v", obs.outcomes)
	}
}

func TestDoConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewCaller("agent", "test-conn", time.Second, nil)
	_, err := c.Do(context.Background(), "restart", http.MethodPatch, url, nil)

	var backendErr *apperr.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("error = %v, want BackendError", err)
	}
	if backendErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", backendErr.StatusCode)
	}
}

func TestDoCircuitOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewCaller("agent", "test-cb", time.Second, nil)
	for i := 0; i < 5; i++ {
		_, _ = c.Do(context.Background(), "restart", http.MethodPatch, server.URL, nil)
	}

	_, err := c.Do(context.Background(), "restart", http.MethodPatch, server.URL, nil)
	if !errors.Is(err, apperr.ErrCircuitOpen) {
		t.Fatalf("error = %v, want ErrCircuitOpen", err)
	}
	if Outcome(err) != OutcomeCircuitOpen {
		t.Errorf("Outcome() = %s", Outcome(err))
	}
}

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewCaller("ledger", "test-4xx", time.Second, nil)
	for i := 0; i < 10; i++ {
		_, err := c.Do(context.Background(), "create", http.MethodPost, server.URL, nil)
		if errors.Is(err, apperr.ErrCircuitOpen) {
			t.Fatalf("breaker opened after %d client errors", i)
		}
	}
}

package httputil

import (
	"context"
	"testing"
)

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	if got := TraceIDFromContext(ctx); got != "" {
		t.Errorf("TraceIDFromContext(empty) = %q", got)
	}

	ctx = WithTraceID(ctx, "trace-001")
	if got := TraceIDFromContext(ctx); got != "trace-001" {
		t.Errorf("TraceIDFromContext() = %q, want trace-001", got)
	}
}

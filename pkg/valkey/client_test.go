package valkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(DefaultOptions().WithAddr(mr.Addr()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := client.Get(ctx, "k").Result()
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v", got, err)
	}
}

func TestNewClientWithPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("pw")

	if _, err := NewClient(TUIOptions().WithAddr(mr.Addr())); err == nil {
		t.Error("NewClient() without password should fail")
	}

	client, err := NewClient(TUIOptions().WithAddr(mr.Addr()).WithPassword("pw"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_ = client.Close()
}

func TestNewClientConnectionError(t *testing.T) {
	opts := DefaultOptions().
		WithAddr("localhost:59999").
		WithTimeouts(100*time.Millisecond, 100*time.Millisecond)
	opts.MaxRetries = 0

	client, err := NewClient(opts)
	if err == nil {
		client.Close()
		t.Fatal("NewClient() should return error for unreachable address")
	}
}

func TestIsKeyNotFound(t *testing.T) {
	if !IsKeyNotFound(redis.Nil) {
		t.Error("IsKeyNotFound(redis.Nil) = false")
	}
	if IsKeyNotFound(errors.New("other")) {
		t.Error("IsKeyNotFound(other) = true")
	}
	if IsKeyNotFound(nil) {
		t.Error("IsKeyNotFound(nil) = true")
	}
}

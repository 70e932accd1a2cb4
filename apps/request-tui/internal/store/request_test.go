package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *RequestStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRequestStore(client)
}

func putRequest(t *testing.T, mr *miniredis.Miniredis, id string, fields ...string) {
	t.Helper()
	mr.HSet(RequestKey(id), fields...)
}

func TestRequestStore_Get(t *testing.T) {
	mr, s := setupTestStore(t)
	putRequest(t, mr, "r1",
		"id", "r1",
		"external_request_id", "0xabc",
		"state", "Completed",
		"shared_tac", "10",
		"ue_imsis", `["001010000000001"]`,
		"duration_mins", "30",
	)

	req, err := s.Get(context.Background(), "r1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if req.ExternalID != "0xabc" || req.State != model.StateCompleted {
		t.Errorf("unexpected request: %+v", req)
	}
	if req.DurationMins != 30 {
		t.Errorf("DurationMins = %d, want 30", req.DurationMins)
	}
}

func TestRequestStore_GetNotFound(t *testing.T) {
	_, s := setupTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("err = %v, want ErrRequestNotFound", err)
	}
}

func TestRequestStore_List(t *testing.T) {
	mr, s := setupTestStore(t)
	putRequest(t, mr, "r1", "id", "r1", "state", "Pending")
	putRequest(t, mr, "r2", "state", "Rejected")
	putRequest(t, mr, "bad", "duration_mins", "not-a-number")
	mr.Set("idx:ext:0xabc", "r1")

	requests, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("len = %d, want 2", len(requests))
	}

	byID := map[string]*model.Request{}
	for _, r := range requests {
		byID[r.ID] = r
	}
	if byID["r1"] == nil || byID["r1"].State != model.StatePending {
		t.Errorf("r1 = %+v", byID["r1"])
	}
	// idフィールドがなければキーから補完する
	if byID["r2"] == nil || byID["r2"].State != model.StateRejected {
		t.Errorf("r2 = %+v", byID["r2"])
	}
}

func TestRequestStore_ListEmpty(t *testing.T) {
	_, s := setupTestStore(t)

	requests, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if requests == nil || len(requests) != 0 {
		t.Errorf("requests = %v, want empty slice", requests)
	}
}

func TestRequestStore_RestoreJob(t *testing.T) {
	mr, s := setupTestStore(t)
	job := model.RestoreJob{RequestID: "r1", SharedTAC: 10, DurationMins: 5}
	raw, _ := json.Marshal(job)
	mr.Set(RestoreJobKey("r1"), string(raw))

	got, err := s.RestoreJob(context.Background(), "r1")
	if err != nil {
		t.Fatalf("RestoreJob failed: %v", err)
	}
	if got == nil || got.SharedTAC != 10 || got.DurationMins != 5 {
		t.Errorf("job = %+v", got)
	}

	none, err := s.RestoreJob(context.Background(), "r2")
	if err != nil || none != nil {
		t.Errorf("RestoreJob(r2) = %v, %v; want nil, nil", none, err)
	}

	mr.Set(RestoreJobKey("r3"), "{broken")
	if _, err := s.RestoreJob(context.Background(), "r3"); err == nil {
		t.Error("expected decode error")
	}
}

func TestRequestStore_RestoreSummary(t *testing.T) {
	mr, s := setupTestStore(t)
	first := time.UnixMilli(1_700_000_000_000)
	_, _ = mr.ZAdd(KeyRestoreDue, float64(first.UnixMilli()+60_000), "r2")
	_, _ = mr.ZAdd(KeyRestoreDue, float64(first.UnixMilli()), "r1")
	_, _ = mr.ZAdd(KeyRestoreInflight, float64(first.UnixMilli()), "r0")

	summary, err := s.RestoreSummary(context.Background())
	if err != nil {
		t.Fatalf("RestoreSummary failed: %v", err)
	}
	if summary.Due != 2 || summary.Inflight != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if !summary.NextDue.Equal(first) {
		t.Errorf("NextDue = %v, want %v", summary.NextDue, first)
	}
}

func TestRequestStore_RestoreSummaryEmpty(t *testing.T) {
	_, s := setupTestStore(t)

	summary, err := s.RestoreSummary(context.Background())
	if err != nil {
		t.Fatalf("RestoreSummary failed: %v", err)
	}
	if summary.Due != 0 || summary.Inflight != 0 || !summary.NextDue.IsZero() {
		t.Errorf("summary = %+v", summary)
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

func newJob(id string, due time.Time) *model.RestoreJob {
	return &model.RestoreJob{
		RequestID:    id,
		ExternalID:   "ext-" + id,
		SharedTAC:    1,
		TenantPLMN:   "00101",
		DurationMins: 1,
		ScheduledAt:  due.Add(-time.Minute),
		DueAt:        due,
	}
}

func TestRestoreQueueClaimDue(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	for _, job := range []*model.RestoreJob{
		newJob("a", now.Add(-2*time.Minute)),
		newJob("b", now.Add(-time.Minute)),
		newJob("c", now.Add(time.Hour)),
	} {
		if err := q.Enqueue(ctx, job); err != nil {
			t.Fatalf("Enqueue failed: %v", err)
		}
	}

	n, err := q.Pending(ctx)
	if err != nil || n != 3 {
		t.Fatalf("Pending = %d, %v; want 3", n, err)
	}

	jobs, err := q.ClaimDue(ctx, now, 1)
	if err != nil {
		t.Fatalf("ClaimDue failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].RequestID != "a" {
		t.Fatalf("first claim = %+v, want [a]", jobs)
	}

	jobs, err = q.ClaimDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("ClaimDue failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].RequestID != "b" {
		t.Fatalf("second claim = %+v, want [b]", jobs)
	}
	if jobs[0].ExternalID != "ext-b" || jobs[0].SharedTAC != 1 {
		t.Errorf("payload not decoded: %+v", jobs[0])
	}

	members, _ := mr.ZMembers(KeyRestoreInflight)
	if len(members) != 2 {
		t.Errorf("inflight = %v, want a and b", members)
	}

	jobs, _ = q.ClaimDue(ctx, now, 10)
	if len(jobs) != 0 {
		t.Errorf("claim with nothing due returned %d jobs", len(jobs))
	}
}

func TestRestoreQueueComplete(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	now := time.Now()

	_ = q.Enqueue(ctx, newJob("ok", now.Add(-time.Second)))
	_ = q.Enqueue(ctx, newJob("ng", now.Add(-time.Second)))
	jobs, err := q.ClaimDue(ctx, now, 10)
	if err != nil || len(jobs) != 2 {
		t.Fatalf("ClaimDue = %+v, %v", jobs, err)
	}
	claimed := map[string]*model.RestoreJob{}
	for _, j := range jobs {
		claimed[j.RequestID] = j
	}

	if current, err := q.Complete(ctx, claimed["ok"], false); err != nil || !current {
		t.Fatalf("Complete(ok) = %v, %v", current, err)
	}
	if current, err := q.Complete(ctx, claimed["ng"], true); err != nil || !current {
		t.Fatalf("Complete(ng) = %v, %v", current, err)
	}

	if mr.Exists(KeyPrefixRestoreJob + "ok") {
		t.Error("payload of successful job should be deleted")
	}
	if !mr.Exists(KeyPrefixRestoreJob + "ng") {
		t.Error("payload of failed job should be kept")
	}
	if mr.Exists(KeyRestoreInflight) {
		members, _ := mr.ZMembers(KeyRestoreInflight)
		t.Errorf("inflight should be empty, got %v", members)
	}
}

func TestRestoreQueueCompleteKeepsRescheduledJob(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	if err := q.Enqueue(ctx, newJob("r1", now.Add(-time.Minute))); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	jobs, err := q.ClaimDue(ctx, now, 10)
	if err != nil || len(jobs) != 1 {
		t.Fatalf("ClaimDue = %+v, %v", jobs, err)
	}
	if jobs[0].Token == "" {
		t.Fatal("claimed job should carry a token")
	}

	// 実行中に同じリクエストが再度スケジュールされる
	if err := q.Enqueue(ctx, newJob("r1", now.Add(time.Hour))); err != nil {
		t.Fatalf("re-Enqueue failed: %v", err)
	}

	current, err := q.Complete(ctx, jobs[0], false)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if current {
		t.Error("Complete should report the claimed job as superseded")
	}

	if n, _ := q.Pending(ctx); n != 1 {
		t.Errorf("pending after complete = %d, want 1", n)
	}
	if !mr.Exists(KeyPrefixRestoreJob + "r1") {
		t.Fatal("payload of the rescheduled job was deleted")
	}

	jobs, err = q.ClaimDue(ctx, now.Add(2*time.Hour), 10)
	if err != nil || len(jobs) != 1 || !jobs[0].DueAt.Equal(now.Add(time.Hour)) {
		t.Errorf("reclaim = %+v, %v; want the rescheduled job", jobs, err)
	}
}

func TestRestoreQueueCompleteMissingPayload(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	now := time.Now()

	_ = q.Enqueue(ctx, newJob("lost", now.Add(-time.Second)))
	jobs, _ := q.ClaimDue(ctx, now, 10)
	if len(jobs) != 1 {
		t.Fatalf("ClaimDue = %+v", jobs)
	}
	mr.Del(KeyPrefixRestoreJob + "lost")

	current, err := q.Complete(ctx, jobs[0], false)
	if err != nil || current {
		t.Errorf("Complete = %v, %v; want false, nil", current, err)
	}
	if mr.Exists(KeyRestoreInflight) {
		t.Error("inflight should be cleared when the payload is gone")
	}
}

func TestRestoreQueueMissingPayloadIsSkipped(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	now := time.Now()

	_ = q.Enqueue(ctx, newJob("gone", now.Add(-time.Second)))
	mr.Del(KeyPrefixRestoreJob + "gone")

	jobs, err := q.ClaimDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("ClaimDue failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("jobs = %+v, want none", jobs)
	}
	if mr.Exists(KeyRestoreInflight) {
		t.Error("orphan id should be removed from inflight")
	}
}

func TestRestoreQueueRequeueStale(t *testing.T) {
	mr, vc := newTestValkeyClient(t)
	q := NewRestoreQueue(vc)
	ctx := context.Background()
	claimedAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	_ = q.Enqueue(ctx, newJob("x", claimedAt.Add(-time.Minute)))
	if _, err := q.ClaimDue(ctx, claimedAt, 10); err != nil {
		t.Fatalf("ClaimDue failed: %v", err)
	}

	n, err := q.RequeueStale(ctx, 10*time.Minute, claimedAt.Add(5*time.Minute))
	if err != nil || n != 0 {
		t.Fatalf("RequeueStale (fresh) = %d, %v; want 0", n, err)
	}

	later := claimedAt.Add(11 * time.Minute)
	n, err = q.RequeueStale(ctx, 10*time.Minute, later)
	if err != nil || n != 1 {
		t.Fatalf("RequeueStale = %d, %v; want 1", n, err)
	}
	if mr.Exists(KeyRestoreInflight) {
		t.Error("inflight should be empty after requeue")
	}

	jobs, err := q.ClaimDue(ctx, later, 10)
	if err != nil || len(jobs) != 1 || jobs[0].RequestID != "x" {
		t.Errorf("reclaim = %+v, %v", jobs, err)
	}
}

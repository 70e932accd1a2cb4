package model

import "time"

// RestoreJob は期間満了時に実行する復元処理の予約を表す。
// Valkeyキー: restore:job:{RequestID}（JSON）、期限インデックス restore:due（ZSET）
type RestoreJob struct {
	RequestID    string    `json:"request_id"`
	ExternalID   string    `json:"external_id"`
	SharedTAC    int       `json:"shared_tac"`
	TenantPLMN   string    `json:"tenant_plmn"`
	DurationMins int       `json:"duration_mins"`
	OriginalUEs  []*UE     `json:"original_ues,omitempty"` // 制限追加前のUE（手動復旧用）
	ScheduledAt  time.Time `json:"scheduled_at"`
	DueAt        time.Time `json:"due_at"`
	Token        string    `json:"token,omitempty"` // 登録ごとに払い出す識別子
}

// Duration は復元までの待ち時間を返す。
func (j *RestoreJob) Duration() time.Duration {
	return time.Duration(j.DurationMins) * time.Minute
}

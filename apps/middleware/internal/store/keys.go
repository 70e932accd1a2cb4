package store

// Valkeyキープレフィックス
const (
	KeyPrefixRequest       = "req:"         // リクエストレコード（Hash）
	KeyPrefixExternalIndex = "idx:ext:"     // 外部ID → 内部IDインデックス（String）
	KeyPrefixRestoreJob    = "restore:job:" // 復元ジョブ本体（JSON）
)

// 復元ジョブのキュー（ZSET）
const (
	KeyRestoreDue      = "restore:due"      // score = 実行予定時刻（unixミリ秒）
	KeyRestoreInflight = "restore:inflight" // score = 取得時刻（unixミリ秒）
)

// リクエストHashのフィールド名（Upsertの既定値設定で使用）
const (
	fieldID         = "id"
	fieldExternalID = "external_request_id"
	fieldState      = "state"
	fieldCreatedAt  = "created_at"
)

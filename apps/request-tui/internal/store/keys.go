package store

// Valkeyキー（ミドルウェアと同じ命名）
const (
	PrefixRequest      = "req:"
	PrefixRestoreJob   = "restore:job:"
	KeyRestoreDue      = "restore:due"
	KeyRestoreInflight = "restore:inflight"
)

// RequestKey はリクエストレコードのキーを返す。
func RequestKey(id string) string {
	return PrefixRequest + id
}

// RestoreJobKey は復元ジョブのキーを返す。
func RestoreJobKey(id string) string {
	return PrefixRestoreJob + id
}

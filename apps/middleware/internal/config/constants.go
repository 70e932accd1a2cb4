package config

import "time"

// DefaultAgentNSSAI はAGENT_NSSAI未設定時のベースラインNSSAI。
const DefaultAgentNSSAI = `[{"sst":1},{"sst":1,"sd":10},{"sst":1,"sd":11},{"sst":1,"sd":12}]`

// Circuit Breaker設定（台帳・エージェント共通）
const (
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// Circuit Breaker名
const (
	CBNameLedger = "ledger"
	CBNameAgent  = "ran-agent"
)

// 復元ジョブ設定
const (
	// RestoreStaleAfter を超えて処理中のままのジョブは前回プロセスの取り残しとみなす
	RestoreStaleAfter = 10 * time.Minute
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 10 * time.Second
)

// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// リクエスト関連エラー
var (
	// ErrRequestNotFound はリクエストレコードが見つからない場合のエラー
	ErrRequestNotFound = errors.New("request not found")
	// ErrInvalidState は不正な状態名エラー
	ErrInvalidState = errors.New("invalid state")
	// ErrExternalIDConflict は設定済みの外部IDを別の値で上書きしようとした場合のエラー
	ErrExternalIDConflict = errors.New("external request id already assigned")
	// ErrInvalidTAC は整数として解釈できないTACのエラー
	ErrInvalidTAC = errors.New("invalid TAC")
)

// 下流サービス関連エラー
var (
	// ErrGatewayTimeout は下流サービスの応答タイムアウトエラー
	ErrGatewayTimeout = errors.New("gateway timeout")
	// ErrCircuitOpen はサーキットブレーカーがOpen状態のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")
	// ErrMissingExternalID は台帳レスポンスに外部IDが含まれない場合のエラー
	ErrMissingExternalID = errors.New("ledger response has no external id")
	// ErrInvalidResponse は下流サービスのレスポンス解析エラー
	ErrInvalidResponse = errors.New("invalid response")
)

// インフラ関連エラー
var (
	// ErrValkeyUnavailable はValkey接続・コマンドエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")
	// ErrKeyNotFound はValkeyキーが存在しない場合のエラー
	ErrKeyNotFound = errors.New("key not found")
)

package apperr

import (
	"fmt"
	"strings"
)

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Fields  []string // 不足・不正なフィールド名
	Message string   // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: message,
	}
}

// BackendError は下流サービス（台帳・エージェント）との通信エラーを表す。
type BackendError struct {
	Backend    string // 下流サービス名（ledger, agent）
	Action     string // 実行した操作
	StatusCode int    // HTTPステータスコード（通信失敗時は0）
	Cause      error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend error: backend=%s, action=%s, statusCode=%d, cause=%v",
			e.Backend, e.Action, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("backend error: backend=%s, action=%s, statusCode=%d",
		e.Backend, e.Action, e.StatusCode)
}

// Unwrap は根本原因を返す。
func (e *BackendError) Unwrap() error {
	return e.Cause
}

// NewBackendError はBackendErrorを生成する。
func NewBackendError(backend, action string, statusCode int, cause error) *BackendError {
	return &BackendError{
		Backend:    backend,
		Action:     action,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// ValkeyError はValkeyとの操作エラーを表す。
type ValkeyError struct {
	Operation string // 操作名（HSET, HGETALL等）
	Key       string // 操作対象のキー
	Cause     error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *ValkeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("valkey error: operation=%s, key=%s, cause=%v",
			e.Operation, e.Key, e.Cause)
	}
	return fmt.Sprintf("valkey error: operation=%s, key=%s", e.Operation, e.Key)
}

// Unwrap は根本原因を返す。
func (e *ValkeyError) Unwrap() error {
	return e.Cause
}

// NewValkeyError はValkeyErrorを生成する。
// 原因はErrValkeyUnavailableでラップされ、errors.Isで判定できる。
func NewValkeyError(operation, key string, cause error) *ValkeyError {
	wrapped := ErrValkeyUnavailable
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrValkeyUnavailable, cause)
	}
	return &ValkeyError{
		Operation: operation,
		Key:       key,
		Cause:     wrapped,
	}
}

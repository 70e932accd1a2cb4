// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import "net/http"

// ErrorBody はエラーレスポンスの本文。
// ステータスコード以外の構造化エラーコードは持たず、人間可読のメッセージのみを返す。
type ErrorBody struct {
	Error string `json:"error"`
}

// NewErrorBody は新しいErrorBodyを生成する。
func NewErrorBody(message string) *ErrorBody {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &ErrorBody{Error: message}
}

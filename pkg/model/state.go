package model

import (
	"fmt"
	"strings"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
)

// State はリクエストのライフサイクル状態を表す。
// 保存時は先頭大文字の表記に正規化する。
type State string

// リクエスト状態
const (
	StateCreated       State = "Created"
	StatePending       State = "Pending"
	StateAccepted      State = "Accepted"
	StateRejected      State = "Rejected"
	StateCompleted     State = "Completed"
	StateExpired       State = "Expired"
	StateRestoreFailed State = "RestoreFailed"
)

// storableStates はストアが受け付ける状態（小文字キー）。
var storableStates = map[string]State{
	"created":       StateCreated,
	"pending":       StatePending,
	"accepted":      StateAccepted,
	"rejected":      StateRejected,
	"completed":     StateCompleted,
	"expired":       StateExpired,
	"restorefailed": StateRestoreFailed,
}

// ParseState は大文字小文字を区別せずに状態名を解釈する。前後の空白は許容しない。
func ParseState(s string) (State, error) {
	st, ok := storableStates[strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidState, s)
	}
	return st, nil
}

// ParseTransitionTarget は外部から指定できる遷移先（accepted/rejected/completed）を解釈する。
func ParseTransitionTarget(s string) (State, error) {
	st, err := ParseState(s)
	if err != nil {
		return "", err
	}
	switch st {
	case StateAccepted, StateRejected, StateCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q is not a transition target", apperr.ErrInvalidState, s)
	}
}

// IsRestoreTerminal は復元処理の終端状態かどうかを返す。
func (s State) IsRestoreTerminal() bool {
	return s == StateExpired || s == StateRestoreFailed
}

// String はfmt.Stringerを実装する。
func (s State) String() string {
	return string(s)
}

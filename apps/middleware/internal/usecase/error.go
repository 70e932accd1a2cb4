package usecase

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
)

// ProblemError はビジネスロジックエラーを表す。
// DetailがそのままHTTPレスポンスのエラーメッセージになる。
type ProblemError struct {
	Status  int
	Title   string
	Detail  string
	Message string // ログメッセージ
	EventID string
	Cause   error
}

// Error はerrorインターフェースを実装する。
func (e *ProblemError) Error() string {
	return e.Detail
}

// Unwrap は原因エラーを返す。
func (e *ProblemError) Unwrap() error {
	return e.Cause
}

// Is はイベントIDが一致するProblemErrorを同一とみなす。
func (e *ProblemError) Is(target error) bool {
	t, ok := target.(*ProblemError)
	return ok && t.EventID == e.EventID
}

// ToErrorBody はレスポンスボディに変換する。
func (e *ProblemError) ToErrorBody() *httputil.ErrorBody {
	return httputil.NewErrorBody(e.Detail)
}

// LogLevel はログレベルを返す。
func (e *ProblemError) LogLevel() slog.Level {
	switch {
	case e.Status >= 500:
		return slog.LevelError
	case e.Status == http.StatusNotFound:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// withCause は原因を付与したコピーを返す。
func (e *ProblemError) withCause(cause error) *ProblemError {
	c := *e
	c.Cause = cause
	return &c
}

// withDetail は詳細メッセージを差し替えたコピーを返す。
func (e *ProblemError) withDetail(detail string) *ProblemError {
	c := *e
	c.Detail = detail
	return &c
}

// 定義済みエラー
var (
	ErrValidation = &ProblemError{
		Status:  http.StatusBadRequest,
		Title:   "Bad Request",
		Detail:  "Invalid request",
		Message: "request validation failed",
		EventID: "REQ_VALIDATION_ERR",
	}

	ErrInvalidTransition = &ProblemError{
		Status:  http.StatusBadRequest,
		Title:   "Bad Request",
		Detail:  "Invalid state. Must be one of: accepted, rejected, completed",
		Message: "invalid transition target",
		EventID: "REQ_STATE_INVALID",
	}

	ErrRequestNotFound = &ProblemError{
		Status:  http.StatusNotFound,
		Title:   "Not Found",
		Detail:  "Request not found",
		Message: "external request id not found",
		EventID: "REQ_NOT_FOUND",
	}

	ErrDataInconsistency = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Request record could not be loaded",
		Message: "external id resolved but record is missing or corrupt",
		EventID: "REQ_DATA_INCONSISTENT",
	}

	ErrLedgerForward = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Failed to forward request to ledger",
		Message: "ledger create failed",
		EventID: "LEDGER_CREATE_ERR",
	}

	ErrLedgerTimeout = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Ledger service timed out",
		Message: "ledger create timed out",
		EventID: "LEDGER_TIMEOUT",
	}

	ErrLedgerNoExternalID = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Ledger response did not contain an external id",
		Message: "ledger response missing external id",
		EventID: "LEDGER_NO_EXTERNAL_ID",
	}

	ErrAgentRestart = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Failed to restart gNodeB with tenant configuration",
		Message: "agent restart failed",
		EventID: "AGENT_RESTART_ERR",
	}

	ErrAgentTimeout = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "RAN agent timed out",
		Message: "agent restart timed out",
		EventID: "AGENT_TIMEOUT",
	}

	ErrStore = &ProblemError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Detail:  "Database error",
		Message: "request store operation failed",
		EventID: "VALKEY_CONN_ERR",
	}
)

// validationProblem はバリデーションエラーを400のProblemErrorに変換する。
func validationProblem(err error) *ProblemError {
	return ErrValidation.withDetail(err.Error()).withCause(err)
}

// ledgerProblem は台帳呼び出しのエラーを分類する。
func ledgerProblem(err error) *ProblemError {
	switch {
	case errors.Is(err, apperr.ErrMissingExternalID):
		return ErrLedgerNoExternalID.withCause(err)
	case errors.Is(err, apperr.ErrGatewayTimeout):
		return ErrLedgerTimeout.withCause(err)
	default:
		return ErrLedgerForward.withCause(err)
	}
}

// agentProblem はrestart呼び出しのエラーを分類する。
func agentProblem(err error) *ProblemError {
	if errors.Is(err, apperr.ErrGatewayTimeout) {
		return ErrAgentTimeout.withCause(err)
	}
	return ErrAgentRestart.withCause(err)
}

// storeProblem はストアのエラーを分類する。
func storeProblem(err error) *ProblemError {
	if errors.Is(err, apperr.ErrRequestNotFound) {
		return ErrRequestNotFound.withCause(err)
	}
	return ErrStore.withCause(err)
}

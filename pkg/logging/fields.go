package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldRequestID  = "request_id"
	FieldExternalID = "external_id"
	FieldState      = "state"
	FieldBackend    = "backend"
	FieldAction     = "action"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldIMSI       = "imsi"
	FieldUECount    = "ue_count"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithRequestID は内部リクエストIDのslog.Attrを返す。
func WithRequestID(id string) slog.Attr {
	return slog.String(FieldRequestID, id)
}

// WithExternalID は台帳が払い出した外部IDのslog.Attrを返す。
func WithExternalID(id string) slog.Attr {
	return slog.String(FieldExternalID, id)
}

// WithState はリクエスト状態のslog.Attrを返す。
func WithState(state string) slog.Attr {
	return slog.String(FieldState, state)
}

// WithBackend は下流サービス名と操作名のslog.Attrを返す。
func WithBackend(backend, action string) slog.Attr {
	return slog.Group("downstream",
		slog.String(FieldBackend, backend),
		slog.String(FieldAction, action),
	)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithUECount は処理対象UE数のslog.Attrを返す。
func WithUECount(n int) slog.Attr {
	return slog.Int(FieldUECount, n)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithIMSI はマスキングされたIMSIのslog.Attrを返す。
func (cf *CommonFields) WithIMSI(imsi string) slog.Attr {
	return slog.String(FieldIMSI, cf.masker.IMSI(imsi))
}

// WithIMSIs はマスキングされたIMSI一覧のslog.Attrを返す。
func (cf *CommonFields) WithIMSIs(imsis []string) slog.Attr {
	masked := make([]string, len(imsis))
	for i, imsi := range imsis {
		masked[i] = cf.masker.IMSI(imsi)
	}
	return slog.Any(FieldIMSI, masked)
}

// RequestLogFields はリクエスト処理ログ用の共通フィールドを返す。
func (cf *CommonFields) RequestLogFields(traceID, eventID, externalID string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		WithExternalID(externalID),
	}
}

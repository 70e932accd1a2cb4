// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
)

// CreateRequest はPOST /api/request のリクエストボディを表す。
type CreateRequest struct {
	PrivateKey      string          `json:"privateKey"`
	ContractAddress string          `json:"contractAddress"`
	SharedTAC       FlexString      `json:"sharedTAC"`
	UEIMSIs         []string        `json:"ueImsis"`
	DurationMins    *int            `json:"durationMins,omitempty"`
	TenantPLMN      *string         `json:"tenantPLMN,omitempty"`
	TenantAMFIP     *string         `json:"tenantAMFIP,omitempty"`
	TenantAMFPort   *int            `json:"tenantAMFPort,omitempty"`
	TenantNSSAI     json.RawMessage `json:"tenantNSSAI,omitempty"`
}

// Validate は必須フィールドの有無とTACの形式を検証する。
func (r *CreateRequest) Validate() error {
	var missing []string
	if r.PrivateKey == "" {
		missing = append(missing, "privateKey")
	}
	if r.ContractAddress == "" {
		missing = append(missing, "contractAddress")
	}
	if strings.TrimSpace(r.SharedTAC.String()) == "" {
		missing = append(missing, "sharedTAC")
	}
	if len(r.UEIMSIs) == 0 {
		missing = append(missing, "ueImsis")
	}
	if len(missing) > 0 {
		return apperr.NewValidationError("Missing required fields", missing...)
	}

	if _, err := strconv.Atoi(strings.TrimSpace(r.SharedTAC.String())); err != nil {
		return apperr.NewValidationError("sharedTAC must be an integer", "sharedTAC")
	}
	if r.TenantAMFPort != nil && (*r.TenantAMFPort < 0 || *r.TenantAMFPort > 65535) {
		return apperr.NewValidationError("tenantAMFPort must be between 0 and 65535", "tenantAMFPort")
	}
	return nil
}

// NSSAI はtenantNSSAIを返す。未指定またはnullならnil。
func (r *CreateRequest) NSSAI() json.RawMessage {
	trimmed := bytes.TrimSpace(r.TenantNSSAI)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}

// FlexString はJSONの文字列と数値のどちらでも受け付ける文字列。
// sharedTACは数値でも文字列でも送られてくる。
type FlexString string

// UnmarshalJSON はjson.Unmarshalerを実装する。
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// String はfmt.Stringerを実装する。
func (f FlexString) String() string {
	return string(f)
}

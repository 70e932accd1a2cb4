// Package model はアプリケーション間で共有するデータモデルを定義する。
package model

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
)

// Request はテナントへの無線リソース割当リクエストを表す。
// Valkeyキー: req:{ID}（Hash）
type Request struct {
	ID              string `redis:"id"`                  // 内部ID（UUID）
	ExternalID      string `redis:"external_request_id"` // 台帳が払い出した外部ID
	PrivateKey      string `redis:"private_key"`         // 台帳向け秘密鍵（検証しない）
	ContractAddress string `redis:"contract_address"`    // 台帳向けコントラクトアドレス（検証しない）
	SharedTAC       string `redis:"shared_tac"`          // 割り当てるTAC（整数の文字列表現）
	UEIMSIsJSON     string `redis:"ue_imsis"`            // テナントUEのIMSI一覧（JSON配列）
	DurationMins    int    `redis:"duration_mins"`       // 割当期間（分）。0以下は自動失効なし
	TenantPLMN      string `redis:"tenant_plmn"`         // テナントPLMN
	TenantAMFIP     string `redis:"tenant_amf_ip"`       // テナントAMFのIPアドレス
	TenantAMFPort   int    `redis:"tenant_amf_port"`     // テナントAMFのポート（0は未指定）
	TenantNSSAIJSON string `redis:"tenant_nssai"`        // テナントNSSAI（JSON配列）
	State           State  `redis:"state"`               // ライフサイクル状態
	CreatedAt       string `redis:"created_at"`          // 作成日時（RFC3339）
}

// TenantAMFAddr はテナントAMFの接続先を返す。
// IPとポートが揃っていれば "ip:port"、IPのみなら "ip"、IPがなければ空文字。
func (r *Request) TenantAMFAddr() string {
	return JoinAMFAddr(r.TenantAMFIP, r.TenantAMFPort)
}

// JoinAMFAddr はAMFのIPとポートから接続先文字列を組み立てる。
func JoinAMFAddr(ip string, port int) string {
	if ip == "" {
		return ""
	}
	if port <= 0 {
		return ip
	}
	return net.JoinHostPort(ip, strconv.Itoa(port))
}

// IMSIs は保存されたIMSI一覧をデコードする。
func (r *Request) IMSIs() ([]string, error) {
	var imsis []string
	if err := json.Unmarshal([]byte(r.UEIMSIsJSON), &imsis); err != nil {
		return nil, fmt.Errorf("decode ue_imsis: %w", err)
	}
	return imsis, nil
}

// TenantNSSAI は保存されたNSSAI一覧を返す。未指定ならnil。
func (r *Request) TenantNSSAI() (json.RawMessage, error) {
	if r.TenantNSSAIJSON == "" {
		return nil, nil
	}
	raw := json.RawMessage(r.TenantNSSAIJSON)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode tenant_nssai: invalid JSON")
	}
	return raw, nil
}

// TAC は共有TACを整数として返す。
func (r *Request) TAC() (int, error) {
	return ParseTAC(r.SharedTAC)
}

// ParseTAC はTACの文字列表現を整数に変換する。
func ParseTAC(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperr.ErrInvalidTAC, s)
	}
	return n, nil
}

// HasDuration は自動失効の期間が設定されているかどうかを返す。
func (r *Request) HasDuration() bool {
	return r.DurationMins > 0
}

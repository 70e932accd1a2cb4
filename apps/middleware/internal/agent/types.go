package agent

import (
	"encoding/json"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// エージェントのアクション名
const (
	ActionRestart   = "restart"
	ActionGetAllUEs = "get_all_ues"
	ActionUpdateUEs = "update_ues"
)

// restartパラメータ名（gNodeBベースライン）
const (
	ParamGTPAddr   = "PRMT_GTP_ADDR"
	ParamTDDConfig = "PRMT_TDD_CONFIG"
	ParamAMFAddr   = "PRMT_AMF_ADDR"
	ParamNSSAI     = "PRMT_NSSAI"
	ParamPLMN      = "PRMT_PLMN"
	ParamTAC       = "PRMT_TAC"
)

// restartパラメータ名（テナント）
const (
	ParamAMFAddrTenant = "PRMT_AMF_ADDR_TENANT"
	ParamNSSAITenant   = "PRMT_NSSAI_TENANT"
	ParamPLMNTenant    = "PRMT_PLMN_TENANT"
	ParamTACTenant     = "PRMT_TAC_TENANT"
)

// Baseline はテナント以外のgNodeB設定を表す。復元時はこれだけで再起動する。
type Baseline struct {
	GTPAddr   string
	TDDConfig int
	AMFAddr   string
	NSSAI     json.RawMessage
	PLMN      string
	TAC       int
}

// NewBaseline は設定からBaselineを生成する。
func NewBaseline(cfg *config.Config) Baseline {
	return Baseline{
		GTPAddr:   cfg.AgentGTPAddr,
		TDDConfig: cfg.AgentTDDConfig,
		AMFAddr:   cfg.AgentAMFAddr,
		NSSAI:     json.RawMessage(cfg.AgentNSSAI),
		PLMN:      cfg.AgentPLMN,
		TAC:       cfg.AgentTAC,
	}
}

// Tenant はテナント向けのgNodeB設定を表す。空のフィールドは送信しない。
type Tenant struct {
	AMFAddr string
	NSSAI   json.RawMessage
	PLMN    string
	TAC     *int
}

// RestartConfig はrestartアクションの設定。Tenantがnilならベースラインのみで再起動する。
type RestartConfig struct {
	Baseline Baseline
	Tenant   *Tenant
}

// Parameters はrestartのaction_parametersを組み立てる。
func (r *RestartConfig) Parameters() map[string]any {
	params := make(map[string]any)
	b := r.Baseline
	if b.GTPAddr != "" {
		params[ParamGTPAddr] = b.GTPAddr
	}
	params[ParamTDDConfig] = b.TDDConfig
	if b.AMFAddr != "" {
		params[ParamAMFAddr] = b.AMFAddr
	}
	if len(b.NSSAI) > 0 {
		params[ParamNSSAI] = b.NSSAI
	}
	if b.PLMN != "" {
		params[ParamPLMN] = b.PLMN
	}
	params[ParamTAC] = b.TAC

	if t := r.Tenant; t != nil {
		if t.AMFAddr != "" {
			params[ParamAMFAddrTenant] = t.AMFAddr
		}
		if len(t.NSSAI) > 0 {
			params[ParamNSSAITenant] = t.NSSAI
		}
		if t.PLMN != "" {
			params[ParamPLMNTenant] = t.PLMN
		}
		if t.TAC != nil {
			params[ParamTACTenant] = *t.TAC
		}
	}
	return params
}

// envelope はエージェントの汎用アクションRPCのリクエストボディ。
type envelope struct {
	ActivationFeature []activationFeature `json:"activation_feature"`
}

type activationFeature struct {
	Name                  string           `json:"name"`
	FeatureCharacteristic []characteristic `json:"feature_characteristic"`
}

type characteristic struct {
	Name  string              `json:"name"`
	Value characteristicValue `json:"value"`
}

type characteristicValue struct {
	Value any `json:"value"`
}

// newEnvelope はアクション名とパラメータからリクエストボディを組み立てる。
// paramsがnilの場合はaction_parametersを含めない。
func newEnvelope(feature, action string, params any) *envelope {
	chars := []characteristic{
		{Name: "action", Value: characteristicValue{Value: action}},
	}
	if params != nil {
		chars = append(chars, characteristic{Name: "action_parameters", Value: characteristicValue{Value: params}})
	}
	return &envelope{
		ActivationFeature: []activationFeature{{
			Name:                  feature,
			FeatureCharacteristic: chars,
		}},
	}
}

// getAllUEsResponse はget_all_uesのレスポンスボディ。
type getAllUEsResponse struct {
	UEs []*model.UE `json:"ues"`
}

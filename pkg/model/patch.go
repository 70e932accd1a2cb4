package model

// RequestPatch はRequestの部分更新を表す。
// nilのフィールドは更新しない。
type RequestPatch struct {
	ExternalID      *string `redis:"external_request_id"`
	PrivateKey      *string `redis:"private_key"`
	ContractAddress *string `redis:"contract_address"`
	SharedTAC       *string `redis:"shared_tac"`
	UEIMSIsJSON     *string `redis:"ue_imsis"`
	DurationMins    *int    `redis:"duration_mins"`
	TenantPLMN      *string `redis:"tenant_plmn"`
	TenantAMFIP     *string `redis:"tenant_amf_ip"`
	TenantAMFPort   *int    `redis:"tenant_amf_port"`
	TenantNSSAIJSON *string `redis:"tenant_nssai"`
	State           *State  `redis:"state"`
}

// StatePatch は状態のみを更新するパッチを返す。
func StatePatch(s State) *RequestPatch {
	return &RequestPatch{State: &s}
}

// Ptr は値のポインタを返す。
func Ptr[T any](v T) *T {
	return &v
}

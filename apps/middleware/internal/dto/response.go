package dto

// TransitionResponse はPATCH /api/request/:externalRequestId/:state のレスポンスを表す。
type TransitionResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ExternalRequestID string `json:"external_requestId"`
	State             string `json:"state"`
}

// RequestView はGET /api/request/:externalRequestId のレスポンスを表す。
// 秘密鍵とコントラクトアドレスは返さない。
type RequestView struct {
	ID            string   `json:"id"`
	ExternalID    string   `json:"externalRequestId"`
	State         string   `json:"state"`
	SharedTAC     string   `json:"sharedTAC"`
	UEIMSIs       []string `json:"ueImsis"`
	DurationMins  int      `json:"durationMins,omitempty"`
	TenantPLMN    string   `json:"tenantPLMN,omitempty"`
	TenantAMFAddr string   `json:"tenantAMFAddr,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
	Valkey string `json:"valkey"`
}

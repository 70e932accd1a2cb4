package ledger

import "encoding/json"

// CreateRequest は台帳サービスへの登録リクエストを表す。
type CreateRequest struct {
	PrivateKey      string `json:"privateKey"`
	ContractAddress string `json:"contractAddress"`
	NumUsers        int    `json:"numUsers"`
	DurationMins    *int   `json:"durationMins"`
}

// CreateResponse は台帳サービスの登録結果を表す。
type CreateResponse struct {
	ExternalID string          // 台帳が払い出した外部ID
	Body       json.RawMessage // 呼び出し元へそのまま返すレスポンスボディ
}

// createResponseJSON は外部IDの抽出に使うレスポンスの一部。
// 旧来の台帳サービスはrequestIdで外部IDを返す。
type createResponseJSON struct {
	ExternalID string `json:"externalId"`
	RequestID  string `json:"requestId"`
}

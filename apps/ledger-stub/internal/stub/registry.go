// Package stub は台帳サービスのインメモリ実装を提供する。
package stub

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Entry は登録されたリクエストを表す。秘密鍵は保持しない。
type Entry struct {
	RequestID       string `json:"requestId"`
	ContractAddress string `json:"contractAddress"`
	NumUsers        int    `json:"numUsers"`
	DurationMins    *int   `json:"durationMins"`
	Status          string `json:"status"`
}

// Registry は登録済みリクエストを登録順に保持する。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	newID   func() string
}

// NewRegistry は新しいRegistryを生成する。
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		newID:   newHexID,
	}
}

// Create はリクエストを登録し、払い出したIDを設定したEntryを返す。
func (r *Registry) Create(contractAddress string, numUsers int, durationMins *int) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := &Entry{
		RequestID:       r.newID(),
		ContractAddress: contractAddress,
		NumUsers:        numUsers,
		DurationMins:    durationMins,
		Status:          "pending",
	}
	r.entries[e.RequestID] = e
	r.order = append(r.order, e.RequestID)
	return e
}

// Get はIDでEntryを取得する。
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

// List は登録順に全Entryを返す。
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// newHexID はトランザクション風の0x付き16進IDを生成する。
func newHexID() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// createBody はPOST /api/create のリクエストボディ。
// 各フィールドの有無を判定するためRawMessageで受ける。
type createBody map[string]json.RawMessage

var requiredFields = []string{"privateKey", "contractAddress", "numUsers", "durationMins"}

func (b createBody) missing() []string {
	var out []string
	for _, f := range requiredFields {
		if _, ok := b[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

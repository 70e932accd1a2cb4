package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// memStore はテスト用のインメモリRequestStore。
type memStore struct {
	mu         sync.Mutex
	records    map[string]*model.Request
	index      map[string]string
	upserts    int
	failUpsert error
	failGet    error
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[string]*model.Request),
		index:   make(map[string]string),
	}
}

func (s *memStore) Upsert(_ context.Context, id string, p *model.RequestPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	if s.failUpsert != nil {
		return s.failUpsert
	}

	r, ok := s.records[id]
	if !ok {
		r = &model.Request{ID: id, State: model.StateCreated, CreatedAt: "2026-04-01T09:00:00Z"}
		s.records[id] = r
	}
	if p.ExternalID != nil {
		if r.ExternalID != "" && r.ExternalID != *p.ExternalID {
			return apperr.ErrExternalIDConflict
		}
		r.ExternalID = *p.ExternalID
		s.index[*p.ExternalID] = id
	}
	setString(&r.PrivateKey, p.PrivateKey)
	setString(&r.ContractAddress, p.ContractAddress)
	setString(&r.SharedTAC, p.SharedTAC)
	setString(&r.UEIMSIsJSON, p.UEIMSIsJSON)
	setString(&r.TenantPLMN, p.TenantPLMN)
	setString(&r.TenantAMFIP, p.TenantAMFIP)
	setString(&r.TenantNSSAIJSON, p.TenantNSSAIJSON)
	if p.DurationMins != nil {
		r.DurationMins = *p.DurationMins
	}
	if p.TenantAMFPort != nil {
		r.TenantAMFPort = *p.TenantAMFPort
	}
	if p.State != nil {
		st, err := model.ParseState(string(*p.State))
		if err != nil {
			return err
		}
		r.State = st
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func (s *memStore) Get(_ context.Context, id string) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, s.failGet
	}
	r, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", apperr.ErrRequestNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (s *memStore) FindIDByExternalID(_ context.Context, externalID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.index[externalID]
	if !ok {
		return "", fmt.Errorf("%w: external_id=%s", apperr.ErrRequestNotFound, externalID)
	}
	return id, nil
}

func (s *memStore) FindByExternalID(ctx context.Context, externalID string) (*model.Request, error) {
	id, err := s.FindIDByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// put はレコードを直接登録する。
func (s *memStore) put(r *model.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.records[r.ID] = &cp
	if r.ExternalID != "" {
		s.index[r.ExternalID] = r.ID
	}
}

// state は保存されている状態を返す。
func (s *memStore) state(id string) model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		return r.State
	}
	return ""
}

// count は保存されているレコード数を返す。
func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Package usecase はリクエストのライフサイクル管理を提供する。
package usecase

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=usecase

import (
	"context"
	"encoding/json"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/agent"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/dto"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/ledger"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// RequestStore はリクエストレコードのデータアクセスのインターフェース。
type RequestStore interface {
	Upsert(ctx context.Context, id string, patch *model.RequestPatch) error
	Get(ctx context.Context, id string) (*model.Request, error)
	FindIDByExternalID(ctx context.Context, externalID string) (string, error)
	FindByExternalID(ctx context.Context, externalID string) (*model.Request, error)
}

// LedgerClient は台帳サービスのインターフェース。
type LedgerClient interface {
	Create(ctx context.Context, req *ledger.CreateRequest) (*ledger.CreateResponse, error)
}

// AgentClient はRANエージェントのインターフェース。
type AgentClient interface {
	Restart(ctx context.Context, rc *agent.RestartConfig) error
	GetAllUEs(ctx context.Context) ([]*model.UE, error)
	UpdateUEs(ctx context.Context, ues []*model.UE) error
}

// RestoreScheduler は期間満了時の復元を予約するインターフェース。
type RestoreScheduler interface {
	Schedule(ctx context.Context, job *model.RestoreJob) error
}

// Recorder は状態遷移の計測のインターフェース。
type Recorder interface {
	RecordState(state string)
	RecordRestore(result string)
}

// RequestUseCaseInterface はHTTPハンドラーから見たユースケースのインターフェース。
type RequestUseCaseInterface interface {
	Create(ctx context.Context, req *dto.CreateRequest) (json.RawMessage, error)
	Transition(ctx context.Context, externalID, target string) (*dto.TransitionResponse, error)
	Get(ctx context.Context, externalID string) (*dto.RequestView, error)
}

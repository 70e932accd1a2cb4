package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/agent"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/dto"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/ledger"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/restriction"
	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// RequestUseCase はリクエストのライフサイクルを管理する。
type RequestUseCase struct {
	store       RequestStore
	ledger      LedgerClient
	agent       AgentClient
	scheduler   RestoreScheduler
	recorder    Recorder
	baseline    agent.Baseline
	defaultPLMN string
	fields      *logging.CommonFields
	newID       func() string
	now         func() time.Time
}

// NewRequestUseCase は新しいRequestUseCaseを生成する。recorderはnilでもよい。
func NewRequestUseCase(
	store RequestStore,
	ledgerClient LedgerClient,
	agentClient AgentClient,
	scheduler RestoreScheduler,
	recorder Recorder,
	cfg *config.Config,
) *RequestUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &RequestUseCase{
		store:       store,
		ledger:      ledgerClient,
		agent:       agentClient,
		scheduler:   scheduler,
		recorder:    recorder,
		baseline:    agent.NewBaseline(cfg),
		defaultPLMN: cfg.DefaultTenantPLMN,
		fields:      logging.NewCommonFields(logging.NewMasker(cfg.LogMaskIMSI)),
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// Create はリクエストを記録して台帳に転送し、台帳のレスポンスボディをそのまま返す。
// 検証は保存より前に行うため、検証エラー時はレコードを作らない。
// 台帳呼び出しに失敗した場合、レコードはCreatedのまま残す。
func (u *RequestUseCase) Create(ctx context.Context, req *dto.CreateRequest) (json.RawMessage, error) {
	// 1. 入力検証
	if err := req.Validate(); err != nil {
		return nil, validationProblem(err)
	}

	// 2. Createdで保存
	id := u.newID()
	imsisJSON, err := json.Marshal(req.UEIMSIs)
	if err != nil {
		return nil, validationProblem(err)
	}
	patch := &model.RequestPatch{
		PrivateKey:      model.Ptr(req.PrivateKey),
		ContractAddress: model.Ptr(req.ContractAddress),
		SharedTAC:       model.Ptr(req.SharedTAC.String()),
		UEIMSIsJSON:     model.Ptr(string(imsisJSON)),
		DurationMins:    req.DurationMins,
		TenantPLMN:      req.TenantPLMN,
		TenantAMFIP:     req.TenantAMFIP,
		TenantAMFPort:   req.TenantAMFPort,
	}
	if nssai := req.NSSAI(); nssai != nil {
		patch.TenantNSSAIJSON = model.Ptr(string(nssai))
	}
	if err := u.store.Upsert(ctx, id, patch); err != nil {
		return nil, storeProblem(err)
	}
	u.recorder.RecordState(string(model.StateCreated))
	u.log(ctx, slog.LevelInfo, "request recorded", "REQ_CREATED",
		logging.WithRequestID(id),
		logging.WithUECount(len(req.UEIMSIs)),
		u.fields.WithIMSIs(req.UEIMSIs),
	)

	// 3. 台帳へ転送
	resp, err := u.ledger.Create(ctx, &ledger.CreateRequest{
		PrivateKey:      req.PrivateKey,
		ContractAddress: req.ContractAddress,
		NumUsers:        len(req.UEIMSIs),
		DurationMins:    req.DurationMins,
	})
	if err != nil {
		return nil, ledgerProblem(err)
	}

	// 4. 外部IDとPendingを保存
	err = u.store.Upsert(ctx, id, &model.RequestPatch{
		ExternalID: model.Ptr(resp.ExternalID),
		State:      model.Ptr(model.StatePending),
	})
	if err != nil {
		return nil, storeProblem(err)
	}
	u.recorder.RecordState(string(model.StatePending))
	u.log(ctx, slog.LevelInfo, "request forwarded to ledger", "REQ_CREATE_OK",
		logging.WithRequestID(id),
		logging.WithExternalID(resp.ExternalID),
	)

	return resp.Body, nil
}

// Transition は外部IDで指定したリクエストを遷移させる。
// acceptedの場合はエージェントの再構成を行い、結果に応じてAcceptedまたはCompletedを保存する。
func (u *RequestUseCase) Transition(ctx context.Context, externalID, target string) (*dto.TransitionResponse, error) {
	state, err := model.ParseTransitionTarget(target)
	if err != nil {
		return nil, ErrInvalidTransition.withCause(err)
	}

	id, err := u.store.FindIDByExternalID(ctx, externalID)
	if err != nil {
		return nil, storeProblem(err)
	}

	final := state
	if state == model.StateAccepted {
		final, err = u.accept(ctx, id, externalID)
	} else {
		err = u.setState(ctx, id, state)
	}
	if err != nil {
		return nil, err
	}

	u.log(ctx, slog.LevelInfo, "request transitioned", "REQ_TRANSITION_OK",
		logging.WithRequestID(id),
		logging.WithExternalID(externalID),
		logging.WithState(string(final)),
	)
	return &dto.TransitionResponse{
		Success:           true,
		Message:           fmt.Sprintf("Request %s updated to %s", externalID, final),
		ExternalRequestID: externalID,
		State:             string(final),
	}, nil
}

// accept はテナント設定での再起動とUE制限の追加を行い、保存した状態を返す。
// 再起動に失敗した場合は状態を変更しない。
// UEの取得または更新に失敗した場合はAcceptedで止める。
func (u *RequestUseCase) accept(ctx context.Context, id, externalID string) (model.State, error) {
	req, err := u.store.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, apperr.ErrRequestNotFound) {
			return "", ErrDataInconsistency.withCause(err)
		}
		return "", storeProblem(err)
	}

	tac, err := req.TAC()
	if err != nil {
		return "", ErrDataInconsistency.withCause(err)
	}
	nssai, err := req.TenantNSSAI()
	if err != nil {
		return "", ErrDataInconsistency.withCause(err)
	}
	plmn := u.tenantPLMN(req.TenantPLMN)

	// 1. テナント設定で再起動
	err = u.agent.Restart(ctx, &agent.RestartConfig{
		Baseline: u.baseline,
		Tenant: &agent.Tenant{
			AMFAddr: req.TenantAMFAddr(),
			NSSAI:   nssai,
			PLMN:    req.TenantPLMN,
			TAC:     &tac,
		},
	})
	if err != nil {
		return "", agentProblem(err)
	}

	// 2. 非テナントUEへの制限を計算
	ues, err := u.agent.GetAllUEs(ctx)
	if err != nil {
		return u.partial(ctx, id, "AGENT_GET_UES_ERR", err)
	}
	imsis, err := req.IMSIs()
	if err != nil {
		return u.partial(ctx, id, "REQ_IMSI_DECODE_ERR", err)
	}
	plan := restriction.PlanRestrict(ues, imsis, tac, plmn)

	// 3. 変更があれば書き戻す
	if len(plan.Modified) > 0 {
		if err := u.agent.UpdateUEs(ctx, plan.Modified); err != nil {
			return u.partial(ctx, id, "AGENT_UPDATE_UES_ERR", err)
		}
		u.log(ctx, slog.LevelInfo, "restrictions added", "RESTRICT_ADD_OK",
			logging.WithRequestID(id),
			logging.WithUECount(len(plan.Modified)),
		)
	}

	if err := u.setState(ctx, id, model.StateCompleted); err != nil {
		return "", err
	}

	// 4. 期間があれば復元を予約（変更UEが無くても再起動は元に戻す）
	if req.HasDuration() {
		u.schedule(ctx, req, tac, plmn, plan.Originals)
	}
	return model.StateCompleted, nil
}

// partial は途中失敗をAcceptedとして保存する。
func (u *RequestUseCase) partial(ctx context.Context, id, eventID string, cause error) (model.State, error) {
	u.log(ctx, slog.LevelWarn, "acceptance stopped after restart", eventID,
		logging.WithRequestID(id),
		logging.WithError(cause),
	)
	if err := u.setState(ctx, id, model.StateAccepted); err != nil {
		return "", err
	}
	return model.StateAccepted, nil
}

// schedule は復元ジョブを予約する。失敗はログに残すのみで状態は変えない。
func (u *RequestUseCase) schedule(ctx context.Context, req *model.Request, tac int, plmn string, originals []*model.UE) {
	now := u.now()
	job := &model.RestoreJob{
		RequestID:    req.ID,
		ExternalID:   req.ExternalID,
		SharedTAC:    tac,
		TenantPLMN:   plmn,
		DurationMins: req.DurationMins,
		OriginalUEs:  originals,
		ScheduledAt:  now,
	}
	job.DueAt = now.Add(job.Duration())

	if err := u.scheduler.Schedule(ctx, job); err != nil {
		u.log(ctx, slog.LevelError, "failed to schedule restoration", "RESTORE_SCHEDULE_ERR",
			logging.WithRequestID(req.ID),
			logging.WithError(err),
		)
	}
}

// Restore は期間満了したリクエストのテナント設定とUE制限を元に戻す。
// 失敗時はRestoreFailedを保存し、原因を返す。既に終端状態なら何もしない。
func (u *RequestUseCase) Restore(ctx context.Context, job *model.RestoreJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = u.restoreFailed(ctx, job, "RESTORE_PANIC", fmt.Errorf("restore panicked: %v", r))
		}
	}()

	req, getErr := u.store.Get(ctx, job.RequestID)
	switch {
	case getErr == nil && req.State.IsRestoreTerminal():
		u.log(ctx, slog.LevelInfo, "restoration already finished", "RESTORE_SKIP",
			logging.WithRequestID(job.RequestID),
			logging.WithState(string(req.State)),
		)
		return nil
	case getErr != nil:
		u.log(ctx, slog.LevelWarn, "could not load record before restoration", "RESTORE_LOAD_ERR",
			logging.WithRequestID(job.RequestID),
			logging.WithError(getErr),
		)
	}

	// 1. ベースラインのみで再起動
	if err := u.agent.Restart(ctx, &agent.RestartConfig{Baseline: u.baseline}); err != nil {
		return u.restoreFailed(ctx, job, "RESTORE_RESTART_ERR", err)
	}

	// 2. 全UEから制限を除去
	ues, err := u.agent.GetAllUEs(ctx)
	if err != nil {
		return u.restoreFailed(ctx, job, "RESTORE_GET_UES_ERR", err)
	}
	modified := restriction.PlanRelease(ues, job.SharedTAC, u.tenantPLMN(job.TenantPLMN))
	if len(modified) > 0 {
		if err := u.agent.UpdateUEs(ctx, modified); err != nil {
			return u.restoreFailed(ctx, job, "RESTORE_UPDATE_UES_ERR", err)
		}
	}

	// 3. Expiredを保存
	if err := u.store.Upsert(ctx, job.RequestID, model.StatePatch(model.StateExpired)); err != nil {
		return u.restoreFailed(ctx, job, "RESTORE_PERSIST_ERR", err)
	}
	u.recorder.RecordState(string(model.StateExpired))
	u.recorder.RecordRestore("expired")
	u.log(ctx, slog.LevelInfo, "restoration completed", "RESTORE_OK",
		logging.WithRequestID(job.RequestID),
		logging.WithExternalID(job.ExternalID),
		logging.WithUECount(len(modified)),
	)
	return nil
}

// restoreFailed はRestoreFailedを保存し、causeを返す。保存の失敗はログのみ。
func (u *RequestUseCase) restoreFailed(ctx context.Context, job *model.RestoreJob, eventID string, cause error) error {
	u.log(ctx, slog.LevelError, "restoration failed", eventID,
		logging.WithRequestID(job.RequestID),
		logging.WithExternalID(job.ExternalID),
		logging.WithError(cause),
	)
	if err := u.store.Upsert(ctx, job.RequestID, model.StatePatch(model.StateRestoreFailed)); err != nil {
		u.log(ctx, slog.LevelError, "failed to persist RestoreFailed", "RESTORE_PERSIST_ERR",
			logging.WithRequestID(job.RequestID),
			logging.WithError(err),
		)
	} else {
		u.recorder.RecordState(string(model.StateRestoreFailed))
	}
	u.recorder.RecordRestore("failed")
	return cause
}

// Get は外部IDでリクエストを取得する。
func (u *RequestUseCase) Get(ctx context.Context, externalID string) (*dto.RequestView, error) {
	req, err := u.store.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, storeProblem(err)
	}
	imsis, err := req.IMSIs()
	if err != nil {
		return nil, ErrDataInconsistency.withCause(err)
	}
	return &dto.RequestView{
		ID:            req.ID,
		ExternalID:    req.ExternalID,
		State:         string(req.State),
		SharedTAC:     req.SharedTAC,
		UEIMSIs:       imsis,
		DurationMins:  req.DurationMins,
		TenantPLMN:    req.TenantPLMN,
		TenantAMFAddr: req.TenantAMFAddr(),
		CreatedAt:     req.CreatedAt,
	}, nil
}

func (u *RequestUseCase) setState(ctx context.Context, id string, state model.State) error {
	if err := u.store.Upsert(ctx, id, model.StatePatch(state)); err != nil {
		return storeProblem(err)
	}
	u.recorder.RecordState(string(state))
	return nil
}

// tenantPLMN は制限を登録するPLMNを返す。未指定なら既定値。
func (u *RequestUseCase) tenantPLMN(plmn string) string {
	if plmn == "" {
		return u.defaultPLMN
	}
	return plmn
}

func (u *RequestUseCase) log(ctx context.Context, level slog.Level, msg, eventID string, attrs ...slog.Attr) {
	base := []slog.Attr{
		logging.WithTraceID(httputil.TraceIDFromContext(ctx)),
		logging.WithEventID(eventID),
	}
	slog.LogAttrs(ctx, level, msg, append(base, attrs...)...)
}

type nopRecorder struct{}

func (nopRecorder) RecordState(string)   {}
func (nopRecorder) RecordRestore(string) {}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance. The pool is
// shared with the other postgres adapters and is owned by the caller.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// SaveRun inserts the run and every attempted resource in one transaction.
func (r *CampaignRepository) SaveRun(ctx context.Context, run domain.CampaignRun) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO campaign_runs
    (id, tenant_id, campaign_name, objective, outcome, success, failure_kind, failure_message, created_at)
VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),NULLIF($8,''),$9)`,
		run.ID, run.TenantID, run.CampaignName, string(run.Objective), string(run.Outcome), run.Success,
		string(run.FailureKind), run.FailureMsg, run.CreatedAt)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, res := range run.Resources {
		batch.Queue(`INSERT INTO campaign_resources
    (run_id, position, resource_type, remote_id, status, creative_idx, error_kind, error_message)
VALUES ($1,$2,$3,NULLIF($4,''),$5,$6,NULLIF($7,''),NULLIF($8,''))`,
			run.ID, i, string(res.ResourceType), res.RemoteID, string(res.Status), res.Index,
			string(res.ErrorKind), res.Error)
	}
	if batch.Len() > 0 {
		err = tx.SendBatch(ctx, batch).Close()
	}
	return err
}

// GetRun returns a run with its resources in creation order.
func (r *CampaignRepository) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	var (
		run                domain.CampaignRun
		objective, outcome string
		kind, msg          *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, campaign_name, objective, outcome, success, failure_kind, failure_message, created_at
FROM campaign_runs WHERE id = $1`, id).
		Scan(&run.ID, &run.TenantID, &run.CampaignName, &objective, &outcome, &run.Success, &kind, &msg, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	run.Objective = domain.Objective(objective)
	run.Outcome = domain.Outcome(outcome)
	run.FailureKind = domain.Kind(deref(kind))
	run.FailureMsg = deref(msg)

	rows, err := r.pool.Query(ctx, `SELECT resource_type, remote_id, status, creative_idx, error_kind, error_message
FROM campaign_resources WHERE run_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	run.Resources, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CreationResult, error) {
		var (
			res                      domain.CreationResult
			typ, status              string
			remoteID, errKind, errMs *string
		)
		err := row.Scan(&typ, &remoteID, &status, &res.Index, &errKind, &errMs)
		res.ResourceType = domain.ResourceType(typ)
		res.Status = domain.CreationStatus(status)
		res.RemoteID = deref(remoteID)
		res.ErrorKind = domain.Kind(deref(errKind))
		res.Error = deref(errMs)
		return res, err
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListOrphans returns the campaigns and ad groups created by unsuccessful
// runs of a tenant, newest first.
func (r *CampaignRepository) ListOrphans(ctx context.Context, tenantID string) ([]domain.Orphan, error) {
	rows, err := r.pool.Query(ctx, `SELECT cr.id, cr.tenant_id, res.resource_type, res.remote_id, cr.created_at
FROM campaign_runs cr
JOIN campaign_resources res ON res.run_id = cr.id
WHERE cr.tenant_id = $1
  AND NOT cr.success
  AND res.status = $2
  AND res.resource_type IN ($3, $4)
ORDER BY cr.created_at DESC, res.position`,
		tenantID, string(domain.StatusCreated), string(domain.ResourceCampaign), string(domain.ResourceAdGroup))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Orphan, error) {
		var (
			o   domain.Orphan
			typ string
		)
		err := row.Scan(&o.RunID, &o.TenantID, &typ, &o.RemoteID, &o.CreatedAt)
		o.ResourceType = domain.ResourceType(typ)
		return o, err
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

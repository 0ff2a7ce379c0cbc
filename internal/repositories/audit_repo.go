package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/backend/internal/models"
)

const DefaultAuditLimit = 500

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

type AuditFilter struct {
	Limit                int
	ExcludeSystemActions bool
}

// ListRecent returns the most recent change records, newest first.
func (r *AuditRepo) ListRecent(ctx context.Context, f AuditFilter) ([]models.ChangeRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultAuditLimit
	}

	excluded := []string{}
	if f.ExcludeSystemActions {
		excluded = models.SystemActions
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, COALESCE(action, ''), COALESCE(entity_type, ''), entity_id,
		       before_state, after_state, metadata, created_at, department,
		       operation, table_name, record_id, old_data, new_data
		FROM audit_logs
		WHERE lower(COALESCE(NULLIF(action, ''), operation, '')) <> ALL($1::text[])
		ORDER BY created_at DESC
		LIMIT $2
	`, excluded, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.ChangeRecord, 0, limit)
	for rows.Next() {
		var rec models.ChangeRecord
		if err := rows.Scan(&rec.ID, &rec.ActorUserID, &rec.Action, &rec.EntityType, &rec.EntityID,
			&rec.BeforeState, &rec.AfterState, &rec.Metadata, &rec.OccurredAt, &rec.Department,
			&rec.Operation, &rec.TableName, &rec.RecordID, &rec.OldData, &rec.NewData); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

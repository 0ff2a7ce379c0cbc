package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/backend/internal/models"
)

// LookupRepo serves the batched id lookups used to label audit records. Every query takes
// the ids as a text array and casts it, so callers pass plain strings.
type LookupRepo struct {
	pool *pgxpool.Pool
}

func NewLookupRepo(pool *pgxpool.Pool) *LookupRepo {
	return &LookupRepo{pool: pool}
}

func (r *LookupRepo) UsersByIDs(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT p.id::text, p.first_name, p.last_name, p.email, p.employee_number,
		       d.name, p.office_location
		FROM profiles p
		LEFT JOIN departments d ON d.id = p.department_id
		WHERE p.id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.UserSummary, error) {
		var u models.UserSummary
		err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.EmployeeNumber,
			&u.DepartmentName, &u.OfficeLocation)
		return u, err
	})
}

func (r *LookupRepo) AssetsByIDs(ctx context.Context, ids []string) ([]models.AssetSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT a.id::text, a.name, a.unique_id, a.category, a.location, d.name
		FROM assets a
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE a.id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.AssetSummary, error) {
		var a models.AssetSummary
		err := row.Scan(&a.ID, &a.Name, &a.UniqueID, &a.Category, &a.Location, &a.Department)
		return a, err
	})
}

// CurrentAssignmentsByAssetIDs returns at most one assignment per asset: the current one.
func (r *LookupRepo) CurrentAssignmentsByAssetIDs(ctx context.Context, assetIDs []string) ([]models.AssignmentSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT DISTINCT ON (aa.asset_id)
		       aa.id::text, aa.asset_id::text, aa.assigned_to::text, aa.assignment_type,
		       d.name, aa.office_location
		FROM asset_assignments aa
		LEFT JOIN departments d ON d.id = aa.department_id
		WHERE aa.asset_id = ANY($1::uuid[]) AND aa.is_current
		ORDER BY aa.asset_id, aa.assigned_at DESC
	`, assetIDs, func(row pgx.Rows) (models.AssignmentSummary, error) {
		var a models.AssignmentSummary
		err := row.Scan(&a.ID, &a.AssetID, &a.AssignedTo, &a.AssignmentType, &a.DepartmentName, &a.OfficeLocation)
		return a, err
	})
}

func (r *LookupRepo) TasksByIDs(ctx context.Context, ids []string) ([]models.TaskSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, title, assigned_to::text
		FROM tasks WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.TaskSummary, error) {
		var t models.TaskSummary
		err := row.Scan(&t.ID, &t.Title, &t.AssignedTo)
		return t, err
	})
}

func (r *LookupRepo) DevicesByIDs(ctx context.Context, ids []string) ([]models.DeviceSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, name, serial_number, assigned_to::text
		FROM devices WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.DeviceSummary, error) {
		var d models.DeviceSummary
		err := row.Scan(&d.ID, &d.Name, &d.SerialNumber, &d.AssignedTo)
		return d, err
	})
}

func (r *LookupRepo) DepartmentsByIDs(ctx context.Context, ids []string) ([]models.DepartmentSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, name, code
		FROM departments WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.DepartmentSummary, error) {
		var d models.DepartmentSummary
		err := row.Scan(&d.ID, &d.Name, &d.Code)
		return d, err
	})
}

func (r *LookupRepo) PaymentCategoriesByIDs(ctx context.Context, ids []string) ([]models.PaymentCategorySummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, name
		FROM payment_categories WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.PaymentCategorySummary, error) {
		var p models.PaymentCategorySummary
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	})
}

func (r *LookupRepo) LeaveRequestsByIDs(ctx context.Context, ids []string) ([]models.LeaveRequestSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, user_id::text, leave_type
		FROM leave_requests WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.LeaveRequestSummary, error) {
		var l models.LeaveRequestSummary
		err := row.Scan(&l.ID, &l.RequesterID, &l.LeaveType)
		return l, err
	})
}

func (r *LookupRepo) LeaveApprovalsByIDs(ctx context.Context, ids []string) ([]models.LeaveApprovalSummary, error) {
	return queryAll(ctx, r.pool, `
		SELECT id::text, leave_request_id::text, approver_id::text
		FROM leave_approvals WHERE id = ANY($1::uuid[])
	`, ids, func(row pgx.Rows) (models.LeaveApprovalSummary, error) {
		var a models.LeaveApprovalSummary
		err := row.Scan(&a.ID, &a.LeaveRequestID, &a.ApproverID)
		return a, err
	})
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, ids []string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0, len(ids))
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

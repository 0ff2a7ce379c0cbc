package audittrail

import (
	"context"
	"time"

	"github.com/opsdesk/backend/internal/metrics"
	"github.com/opsdesk/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store is the batched read side of the lookup tables. Every method is a single
// WHERE id IN (...) style query.
type Store interface {
	UsersByIDs(ctx context.Context, ids []string) ([]models.UserSummary, error)
	AssetsByIDs(ctx context.Context, ids []string) ([]models.AssetSummary, error)
	CurrentAssignmentsByAssetIDs(ctx context.Context, assetIDs []string) ([]models.AssignmentSummary, error)
	TasksByIDs(ctx context.Context, ids []string) ([]models.TaskSummary, error)
	DevicesByIDs(ctx context.Context, ids []string) ([]models.DeviceSummary, error)
	DepartmentsByIDs(ctx context.Context, ids []string) ([]models.DepartmentSummary, error)
	PaymentCategoriesByIDs(ctx context.Context, ids []string) ([]models.PaymentCategorySummary, error)
	LeaveRequestsByIDs(ctx context.Context, ids []string) ([]models.LeaveRequestSummary, error)
	LeaveApprovalsByIDs(ctx context.Context, ids []string) ([]models.LeaveApprovalSummary, error)
}

// Lookups holds the id -> summary maps for one resolution pass. A missing id simply reads
// as absent.
type Lookups struct {
	Users             map[string]models.UserSummary
	Assets            map[string]models.AssetSummary
	Assignments       map[string]models.AssignmentSummary // keyed by asset id
	Tasks             map[string]models.TaskSummary
	Devices           map[string]models.DeviceSummary
	Departments       map[string]models.DepartmentSummary
	PaymentCategories map[string]models.PaymentCategorySummary
	LeaveRequests     map[string]models.LeaveRequestSummary
	LeaveApprovals    map[string]models.LeaveApprovalSummary
}

// UserName returns the resolved full name for id, or "".
func (l *Lookups) UserName(id string) string {
	if l == nil || id == "" {
		return ""
	}
	if u, ok := l.Users[id]; ok {
		return u.FullName()
	}
	return ""
}

// DepartmentName returns the resolved department name for id, or "".
func (l *Lookups) DepartmentName(id string) string {
	if l == nil || id == "" {
		return ""
	}
	return l.Departments[id].Name
}

// Loader issues the batched lookups for one pass.
type Loader struct {
	store   Store
	log     *zap.Logger
	timeout time.Duration
}

func NewLoader(store Store, timeout time.Duration, log *zap.Logger) *Loader {
	return &Loader{store: store, log: log, timeout: timeout}
}

// Load runs every first-level lookup concurrently, then one more user lookup for ids that
// only surfaced in the first-level results (current assignees, leave requesters). A failed
// lookup leaves its map empty; Load itself never fails.
func (l *Loader) Load(ctx context.Context, refs References) *Lookups {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	lk := &Lookups{}
	var g errgroup.Group

	g.Go(func() error {
		lk.Users = fetchMap(ctx, l, "users", refs.Users, l.store.UsersByIDs,
			func(u models.UserSummary) string { return u.ID })
		return nil
	})
	g.Go(func() error {
		lk.Assets = fetchMap(ctx, l, "assets", refs.Assets, l.store.AssetsByIDs,
			func(a models.AssetSummary) string { return a.ID })
		return nil
	})
	g.Go(func() error {
		lk.Assignments = fetchMap(ctx, l, "asset_assignments", refs.Assets, l.store.CurrentAssignmentsByAssetIDs,
			func(a models.AssignmentSummary) string { return a.AssetID })
		return nil
	})
	g.Go(func() error {
		lk.Tasks = fetchMap(ctx, l, "tasks", refs.Tasks, l.store.TasksByIDs,
			func(t models.TaskSummary) string { return t.ID })
		return nil
	})
	g.Go(func() error {
		lk.Devices = fetchMap(ctx, l, "devices", refs.Devices, l.store.DevicesByIDs,
			func(d models.DeviceSummary) string { return d.ID })
		return nil
	})
	g.Go(func() error {
		lk.Departments = fetchMap(ctx, l, "departments", refs.Departments, l.store.DepartmentsByIDs,
			func(d models.DepartmentSummary) string { return d.ID })
		return nil
	})
	g.Go(func() error {
		lk.PaymentCategories = fetchMap(ctx, l, "payment_categories", refs.PaymentCategories, l.store.PaymentCategoriesByIDs,
			func(p models.PaymentCategorySummary) string { return p.ID })
		return nil
	})
	g.Go(func() error {
		// Approvals point at their request, so requests are fetched after approvals.
		lk.LeaveApprovals = fetchMap(ctx, l, "leave_approvals", refs.LeaveApprovals, l.store.LeaveApprovalsByIDs,
			func(a models.LeaveApprovalSummary) string { return a.ID })

		requestIDs := IDSet{}
		for id := range refs.LeaveRequests {
			requestIDs.Add(id)
		}
		for _, a := range lk.LeaveApprovals {
			requestIDs.Add(models.Deref(a.LeaveRequestID))
		}
		lk.LeaveRequests = fetchMap(ctx, l, "leave_requests", requestIDs, l.store.LeaveRequestsByIDs,
			func(r models.LeaveRequestSummary) string { return r.ID })
		return nil
	})

	_ = g.Wait()

	l.loadSecondaryUsers(ctx, lk)
	return lk
}

func (l *Loader) loadSecondaryUsers(ctx context.Context, lk *Lookups) {
	missing := IDSet{}
	add := func(id *string) {
		if id == nil {
			return
		}
		if _, ok := lk.Users[*id]; !ok {
			missing.Add(*id)
		}
	}
	for _, a := range lk.Assignments {
		add(a.AssignedTo)
	}
	for _, t := range lk.Tasks {
		add(t.AssignedTo)
	}
	for _, d := range lk.Devices {
		add(d.AssignedTo)
	}
	for _, r := range lk.LeaveRequests {
		add(r.RequesterID)
	}
	for _, a := range lk.LeaveApprovals {
		add(a.ApproverID)
	}
	if len(missing) == 0 {
		return
	}

	extra := fetchMap(ctx, l, "users_secondary", missing, l.store.UsersByIDs,
		func(u models.UserSummary) string { return u.ID })
	if lk.Users == nil {
		lk.Users = make(map[string]models.UserSummary, len(extra))
	}
	for id, u := range extra {
		lk.Users[id] = u
	}
}

func fetchMap[T any](
	ctx context.Context,
	l *Loader,
	kind string,
	ids IDSet,
	fetch func(context.Context, []string) ([]T, error),
	key func(T) string,
) map[string]T {
	out := make(map[string]T, len(ids))
	if len(ids) == 0 {
		return out
	}

	rows, err := fetch(ctx, ids.Slice())
	if err != nil {
		l.log.Warn("audit lookup failed, skipping enrichment",
			zap.String("kind", kind),
			zap.Int("ids", len(ids)),
			zap.Error(err),
		)
		metrics.LookupFailures.WithLabelValues(kind).Inc()
		return out
	}

	for _, row := range rows {
		out[key(row)] = row
	}
	return out
}

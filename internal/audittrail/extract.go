package audittrail

import (
	"sort"

	"github.com/google/uuid"
	"github.com/opsdesk/backend/internal/models"
)

// Payload keys that carry a profile id.
var personKeys = []string{
	"user_id", "assigned_to", "assigned_user_id", "assignee_id", "target_user_id",
	"employee_id", "requester_id", "approver_id", "approved_by", "manager_id",
	"created_by", "updated_by",
}

// Payload keys that carry a department id.
var departmentKeys = []string{"department_id", "dept_id", "department"}

const idLength = 36

// IsCandidateID reports whether s looks like a row id. Free-form fields sometimes hold names
// or codes; those must not be sent to the batched lookups.
func IsCandidateID(s string) bool {
	if len(s) != idLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IDSet is a set of candidate ids.
type IDSet map[string]struct{}

func (s IDSet) Add(id string) {
	if IsCandidateID(id) {
		s[id] = struct{}{}
	}
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Slice returns the ids sorted, so batched queries are deterministic.
func (s IDSet) Slice() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// References holds every id the batch needs resolved, grouped by lookup table.
type References struct {
	Users             IDSet
	Assets            IDSet
	Tasks             IDSet
	Devices           IDSet
	Departments       IDSet
	PaymentCategories IDSet
	LeaveRequests     IDSet
	LeaveApprovals    IDSet
}

func newReferences() References {
	return References{
		Users:             IDSet{},
		Assets:            IDSet{},
		Tasks:             IDSet{},
		Devices:           IDSet{},
		Departments:       IDSet{},
		PaymentCategories: IDSet{},
		LeaveRequests:     IDSet{},
		LeaveApprovals:    IDSet{},
	}
}

// ExtractReferences scans the batch once and collects the ids to look up.
func ExtractReferences(records []models.ChangeRecord) References {
	return extract(normalizeAll(records))
}

func extract(records []normalized) References {
	refs := newReferences()
	for _, r := range records {
		if r.actorID != "" {
			refs.Users.Add(r.actorID)
		}

		for _, p := range []models.Payload{r.before, r.after} {
			for _, k := range personKeys {
				refs.Users.Add(p.String(k))
			}
			for _, k := range departmentKeys {
				refs.Departments.Add(p.String(k))
			}
		}

		switch r.kind {
		case KindAsset:
			refs.Assets.Add(r.entityID)
			refs.Assets.Add(r.after.String("asset_id"))
			refs.Assets.Add(r.before.String("asset_id"))
		case KindEmployee:
			refs.Users.Add(r.entityID)
		case KindTask:
			refs.Tasks.Add(r.entityID)
			refs.Tasks.Add(r.after.String("task_id"))
			refs.Tasks.Add(r.before.String("task_id"))
		case KindDevice:
			refs.Devices.Add(r.entityID)
			refs.Devices.Add(r.after.String("device_id"))
			refs.Devices.Add(r.before.String("device_id"))
		case KindDepartment:
			refs.Departments.Add(r.entityID)
		case KindFinance:
			refs.PaymentCategories.Add(r.entityID)
			for _, p := range []models.Payload{r.after, r.before} {
				refs.PaymentCategories.Add(p.String("category_id"))
				refs.PaymentCategories.Add(p.String("payment_category_id"))
			}
		case KindLeave:
			// The entity id names either a request or an approval depending on the table.
			if isApprovalType(r.entityType) {
				refs.LeaveApprovals.Add(r.entityID)
			} else {
				refs.LeaveRequests.Add(r.entityID)
			}
			refs.LeaveRequests.Add(r.after.String("leave_request_id"))
			refs.LeaveRequests.Add(r.before.String("leave_request_id"))
		}
	}
	return refs
}

func isApprovalType(entityType string) bool {
	key := entityTypeKey(entityType)
	return key == "leave_approval" || key == "leave_approvals"
}

package audittrail

import (
	"strings"

	"github.com/opsdesk/backend/internal/models"
)

func enrich(n normalized, lk *Lookups) models.ResolvedLogEntry {
	n.before = annotate(n.before, lk)
	n.after = annotate(n.after, lk)
	if a, ok := lk.LeaveApprovals[n.entityID]; ok && n.kind == KindLeave {
		n.after.SetIfEmpty("approver_name", lk.UserName(models.Deref(a.ApproverID)))
	}

	e := models.ResolvedLogEntry{
		ID:                 n.rec.ID,
		ActorUserID:        n.rec.ActorUserID,
		Action:             n.action,
		EntityType:         n.entityType,
		BeforeState:        n.before,
		AfterState:         n.after,
		OccurredAt:         n.rec.OccurredAt,
		Department:         n.rec.Department,
		NormalizedCategory: CategoryLabel(n.entityType),
	}
	if n.entityID != "" {
		id := n.entityID
		e.EntityID = &id
	}

	e.Actor, e.ActorName = resolveActor(n.actorID, lk)
	e.Target = resolveTarget(n, lk)
	e.ObjectIdentifier = resolveIdentifier(n, lk)
	e.DepartmentOrLocation = resolveDepartmentOrLocation(n, lk)
	if n.kind == KindAsset {
		e.CurrentHolder = currentHolder(n, lk)
	}
	return e
}

// annotate returns a copy of p with resolved labels added next to the ids they name:
// department_id gains department_name, assigned_to gains assigned_to_name and so on.
// Values already present in the payload win.
func annotate(p models.Payload, lk *Lookups) models.Payload {
	out := p.Clone()
	for _, k := range departmentKeys {
		out.SetIfEmpty("department_name", lk.DepartmentName(p.String(k)))
	}
	for _, k := range personKeys {
		out.SetIfEmpty(nameKey(k), lk.UserName(p.String(k)))
	}
	return out
}

func nameKey(idKey string) string {
	return strings.TrimSuffix(idKey, "_id") + "_name"
}

func resolveActor(actorID string, lk *Lookups) (*models.ActorSummary, string) {
	if actorID == "" {
		return nil, models.System
	}
	u, ok := lk.Users[actorID]
	if !ok {
		return nil, models.Unknown
	}
	actor := &models.ActorSummary{
		ID:        u.ID,
		FirstName: models.Deref(u.FirstName),
		LastName:  models.Deref(u.LastName),
		Email:     models.Deref(u.Email),
	}
	name := u.FullName()
	if name == "" {
		name = models.Unknown
	}
	return actor, name
}

func resolveDepartmentOrLocation(n normalized, lk *Lookups) string {
	label := firstNonEmpty(
		models.Deref(n.rec.Department),
		firstLabel(n.after, "department_name", "department"),
		firstLabel(n.before, "department_name", "department"),
		firstLabel(n.after, "office_location", "location", "office"),
		firstLabel(n.before, "office_location", "location", "office"),
	)
	if label != "" {
		return label
	}

	switch n.kind {
	case KindAsset:
		a := lk.Assets[assetID(n)]
		label = firstNonEmpty(models.Deref(a.Department), models.Deref(a.Location))
	case KindEmployee:
		u := lk.Users[n.entityID]
		label = firstNonEmpty(models.Deref(u.DepartmentName), models.Deref(u.OfficeLocation))
	case KindDepartment:
		label = lk.DepartmentName(n.entityID)
	}
	if label == "" {
		return models.NoTarget
	}
	return label
}

// firstLabel is Payload.First for human-readable fields: values shaped like ids are skipped.
func firstLabel(p models.Payload, keys ...string) string {
	for _, k := range keys {
		if s := p.String(k); s != "" && !IsCandidateID(s) {
			return s
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

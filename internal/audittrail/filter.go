package audittrail

import (
	"sort"
	"strings"
	"time"

	"github.com/opsdesk/backend/internal/models"
)

// Filter narrows a resolved list. Empty fields match everything; "all" is accepted as an
// explicit wildcard for the select-style fields.
type Filter struct {
	Search     string
	Action     string
	Category   string
	EntityType string
	Department string
	UserID     string
	From       *time.Time
	To         *time.Time
}

func (f Filter) Match(e models.ResolvedLogEntry) bool {
	if !matchesSelect(f.Action, e.Action) ||
		!matchesSelect(f.Category, e.NormalizedCategory) ||
		!matchesSelect(f.EntityType, e.EntityType) ||
		!matchesSelect(f.Department, e.DepartmentOrLocation) {
		return false
	}
	if u := strings.TrimSpace(f.UserID); u != "" && u != "all" {
		if e.ActorUserID == nil || *e.ActorUserID != u {
			return false
		}
	}
	if f.From != nil && e.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.OccurredAt.After(*f.To) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		return strings.Contains(searchText(e), q)
	}
	return true
}

// Apply returns the entries matching f, preserving order.
func (f Filter) Apply(entries []models.ResolvedLogEntry) []models.ResolvedLogEntry {
	out := make([]models.ResolvedLogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func matchesSelect(want, got string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(want, got)
}

func searchText(e models.ResolvedLogEntry) string {
	parts := []string{
		e.Action, e.EntityType, e.NormalizedCategory, e.ActorName, e.Target,
		e.ObjectIdentifier, e.DepartmentOrLocation,
	}
	if e.Actor != nil {
		parts = append(parts, e.Actor.Email)
	}
	if e.EntityID != nil {
		parts = append(parts, *e.EntityID)
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

type ActorFacet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Facets lists the distinct values present in a resolved list, for filter dropdowns.
type Facets struct {
	Actions     []string     `json:"actions"`
	Categories  []string     `json:"categories"`
	EntityTypes []string     `json:"entity_types"`
	Departments []string     `json:"departments"`
	Actors      []ActorFacet `json:"actors"`
}

func BuildFacets(entries []models.ResolvedLogEntry) Facets {
	actions, categories, types, departments := IDSet{}, IDSet{}, IDSet{}, IDSet{}
	actors := map[string]string{}
	for _, e := range entries {
		addLabel(actions, e.Action)
		addLabel(categories, e.NormalizedCategory)
		addLabel(types, e.EntityType)
		if e.DepartmentOrLocation != models.NoTarget {
			addLabel(departments, e.DepartmentOrLocation)
		}
		if e.ActorUserID != nil && *e.ActorUserID != "" {
			actors[*e.ActorUserID] = e.ActorName
		}
	}

	f := Facets{
		Actions:     actions.Slice(),
		Categories:  categories.Slice(),
		EntityTypes: types.Slice(),
		Departments: departments.Slice(),
		Actors:      make([]ActorFacet, 0, len(actors)),
	}
	for id, name := range actors {
		f.Actors = append(f.Actors, ActorFacet{ID: id, Name: name})
	}
	sort.Slice(f.Actors, func(i, j int) bool {
		if f.Actors[i].Name != f.Actors[j].Name {
			return f.Actors[i].Name < f.Actors[j].Name
		}
		return f.Actors[i].ID < f.Actors[j].ID
	})
	return f
}

// addLabel bypasses IDSet.Add, which only admits id-shaped values.
func addLabel(s IDSet, v string) {
	if v = strings.TrimSpace(v); v != "" {
		s[v] = struct{}{}
	}
}

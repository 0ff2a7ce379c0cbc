package audittrail

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the entity family a raw entity_type collapses into.
type Kind int

const (
	KindUnknown Kind = iota
	KindAsset
	KindEmployee
	KindTask
	KindProject
	KindFinance
	KindLeave
	KindDepartment
	KindFeedback
	KindDocumentation
	KindDevice
	KindSystem
)

// Category labels shown to users.
const (
	CategoryAssets        = "Assets"
	CategoryEmployees     = "Employees"
	CategoryTasks         = "Tasks"
	CategoryProjects      = "Projects"
	CategoryFinance       = "Finance"
	CategoryLeave         = "Leave"
	CategoryDepartments   = "Departments"
	CategoryFeedback      = "Feedback"
	CategoryDocumentation = "Documentation"
	CategoryDevices       = "Devices"
	CategorySystem        = "System"
)

var kindLabels = map[Kind]string{
	KindAsset:         CategoryAssets,
	KindEmployee:      CategoryEmployees,
	KindTask:          CategoryTasks,
	KindProject:       CategoryProjects,
	KindFinance:       CategoryFinance,
	KindLeave:         CategoryLeave,
	KindDepartment:    CategoryDepartments,
	KindFeedback:      CategoryFeedback,
	KindDocumentation: CategoryDocumentation,
	KindDevice:        CategoryDevices,
	KindSystem:        CategorySystem,
}

// Categories lists the fixed taxonomy in display order.
var Categories = []string{
	CategoryAssets, CategoryEmployees, CategoryTasks, CategoryProjects, CategoryFinance,
	CategoryLeave, CategoryDepartments, CategoryFeedback, CategoryDocumentation,
	CategoryDevices, CategorySystem,
}

var entityTypeKinds = map[string]Kind{
	"asset":                    KindAsset,
	"assets":                   KindAsset,
	"asset_assignment":         KindAsset,
	"asset_assignments":        KindAsset,
	"asset_assignment_history": KindAsset,
	"assignment":               KindAsset,
	"assignments":              KindAsset,
	"inventory":                KindAsset,

	"profile":   KindEmployee,
	"profiles":  KindEmployee,
	"user":      KindEmployee,
	"users":     KindEmployee,
	"employee":  KindEmployee,
	"employees": KindEmployee,
	"staff":     KindEmployee,

	"task":             KindTask,
	"tasks":            KindTask,
	"task_assignment":  KindTask,
	"task_assignments": KindTask,

	"project":         KindProject,
	"projects":        KindProject,
	"project_members": KindProject,

	"payment":            KindFinance,
	"payments":           KindFinance,
	"payment_category":   KindFinance,
	"payment_categories": KindFinance,
	"expense":            KindFinance,
	"expenses":           KindFinance,
	"finance":            KindFinance,
	"payroll":            KindFinance,
	"transaction":        KindFinance,
	"transactions":       KindFinance,

	"leave":           KindLeave,
	"leaves":          KindLeave,
	"leave_request":   KindLeave,
	"leave_requests":  KindLeave,
	"leave_approval":  KindLeave,
	"leave_approvals": KindLeave,

	"department":  KindDepartment,
	"departments": KindDepartment,

	"feedback":  KindFeedback,
	"feedbacks": KindFeedback,

	"documentation": KindDocumentation,
	"document":      KindDocumentation,
	"documents":     KindDocumentation,
	"docs":          KindDocumentation,
	"file":          KindDocumentation,
	"files":         KindDocumentation,

	"device":             KindDevice,
	"devices":            KindDevice,
	"device_assignment":  KindDevice,
	"device_assignments": KindDevice,

	"system":   KindSystem,
	"settings": KindSystem,
	"auth":     KindSystem,
	"schema":   KindSystem,
}

// Classify maps a raw entity_type onto its entity family. Matching is case-insensitive and
// tolerates surrounding whitespace and dashes in place of underscores.
func Classify(entityType string) Kind {
	if k, ok := entityTypeKinds[entityTypeKey(entityType)]; ok {
		return k
	}
	return KindUnknown
}

// CategoryLabel returns the display category for a raw entity_type. Unmapped types are
// title-cased word by word ("widget_thing" becomes "Widget Thing"); an empty type reads as
// "Unknown". The result is never empty.
func CategoryLabel(entityType string) string {
	if k := Classify(entityType); k != KindUnknown {
		return k.String()
	}
	if t := titleize(entityType); t != "" {
		return t
	}
	return "Unknown"
}

func entityTypeKey(entityType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(entityType)), "-", "_")
}

func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

func titleize(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

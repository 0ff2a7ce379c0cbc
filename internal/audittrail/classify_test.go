package audittrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		entityType string
		want       Kind
	}{
		{"asset", KindAsset},
		{"asset_assignment", KindAsset},
		{" Assets ", KindAsset},
		{"profiles", KindEmployee},
		{"USER", KindEmployee},
		{"task-assignments", KindTask},
		{"project_members", KindProject},
		{"payment_categories", KindFinance},
		{"leave_approvals", KindLeave},
		{"departments", KindDepartment},
		{"feedback", KindFeedback},
		{"documents", KindDocumentation},
		{"device_assignment", KindDevice},
		{"settings", KindSystem},
		{"widget_thing", KindUnknown},
		{"", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.entityType, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.entityType))
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		entityType string
		want       string
	}{
		{"asset_assignment", "Assets"},
		{"profiles", "Employees"},
		{"leave_requests", "Leave"},
		{"widget_thing", "Widget Thing"},
		{"purchase-order", "Purchase Order"},
		{"ÉTAT", "État"},
		{"", "Unknown"},
		{"  ", "Unknown"},
		{"__", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.entityType, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryLabel(tt.entityType))
		})
	}
}

func TestCategoriesCoverEveryKind(t *testing.T) {
	for k := KindAsset; k <= KindSystem; k++ {
		assert.Contains(t, Categories, k.String())
	}
	assert.Equal(t, "Unknown", KindUnknown.String())
}

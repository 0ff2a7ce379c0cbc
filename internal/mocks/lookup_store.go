package mocks

import (
	"context"

	"github.com/opsdesk/backend/internal/models"
	"github.com/opsdesk/backend/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// LookupStore mocks audittrail.Store.
type LookupStore struct {
	mock.Mock
}

func (m *LookupStore) UsersByIDs(ctx context.Context, ids []string) ([]models.UserSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.UserSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) AssetsByIDs(ctx context.Context, ids []string) ([]models.AssetSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.AssetSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) CurrentAssignmentsByAssetIDs(ctx context.Context, assetIDs []string) ([]models.AssignmentSummary, error) {
	args := m.Called(ctx, assetIDs)
	rows, _ := args.Get(0).([]models.AssignmentSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) TasksByIDs(ctx context.Context, ids []string) ([]models.TaskSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.TaskSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) DevicesByIDs(ctx context.Context, ids []string) ([]models.DeviceSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.DeviceSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) DepartmentsByIDs(ctx context.Context, ids []string) ([]models.DepartmentSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.DepartmentSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) PaymentCategoriesByIDs(ctx context.Context, ids []string) ([]models.PaymentCategorySummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.PaymentCategorySummary)
	return rows, args.Error(1)
}

func (m *LookupStore) LeaveRequestsByIDs(ctx context.Context, ids []string) ([]models.LeaveRequestSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.LeaveRequestSummary)
	return rows, args.Error(1)
}

func (m *LookupStore) LeaveApprovalsByIDs(ctx context.Context, ids []string) ([]models.LeaveApprovalSummary, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]models.LeaveApprovalSummary)
	return rows, args.Error(1)
}

// RecordSource mocks services.RecordSource.
type RecordSource struct {
	mock.Mock
}

func (m *RecordSource) ListRecent(ctx context.Context, f repositories.AuditFilter) ([]models.ChangeRecord, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]models.ChangeRecord)
	return rows, args.Error(1)
}

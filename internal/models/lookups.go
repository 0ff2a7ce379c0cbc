package models

import "strings"

// Lookup rows fetched in batches to label audit records. Nullable columns are pointers.

type UserSummary struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	OfficeLocation *string `json:"office_location,omitempty"`
}

// FullName joins first and last name, falling back to the email address.
func (u UserSummary) FullName() string {
	name := strings.TrimSpace(Deref(u.FirstName) + " " + Deref(u.LastName))
	if name != "" {
		return name
	}
	return Deref(u.Email)
}

type AssetSummary struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	UniqueID   *string `json:"unique_id,omitempty"`
	Category   *string `json:"category,omitempty"`
	Location   *string `json:"location,omitempty"`
	Department *string `json:"department,omitempty"`
}

// AssignmentSummary is the current assignment of an asset.
type AssignmentSummary struct {
	ID             string  `json:"id"`
	AssetID        string  `json:"asset_id"`
	AssignedTo     *string `json:"assigned_to,omitempty"`
	AssignmentType *string `json:"assignment_type,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	OfficeLocation *string `json:"office_location,omitempty"`
}

type TaskSummary struct {
	ID         string  `json:"id"`
	Title      *string `json:"title,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

type DeviceSummary struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	AssignedTo   *string `json:"assigned_to,omitempty"`
}

type DepartmentSummary struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code,omitempty"`
}

type PaymentCategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LeaveRequestSummary struct {
	ID          string  `json:"id"`
	RequesterID *string `json:"requester_id,omitempty"`
	LeaveType   *string `json:"leave_type,omitempty"`
}

type LeaveApprovalSummary struct {
	ID             string  `json:"id"`
	LeaveRequestID *string `json:"leave_request_id,omitempty"`
	ApproverID     *string `json:"approver_id,omitempty"`
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

package dto

import (
	"encoding/json"
	"strings"

	"shikshasync_backend/internals/helpers/customfield"
)

// =========================
// Event masuk (family users)
// =========================

// UserEvent: payload USER_CREATED / USER_UPDATED / USER_DELETED.
// Mobile bisa datang sebagai string atau angka, jadi pakai json.Number.
type UserEvent struct {
	UserID     string      `json:"userId" validate:"required"`
	Username   *string     `json:"username,omitempty"`
	FirstName  *string     `json:"firstName,omitempty"`
	MiddleName *string     `json:"middleName,omitempty"`
	LastName   *string     `json:"lastName,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Mobile     json.Number `json:"mobile,omitempty"`
	DoB        *string     `json:"dob,omitempty"`
	Gender     *string     `json:"gender,omitempty"`
	Status     *string     `json:"status,omitempty"`
	Reason     *string     `json:"reason,omitempty"`
	CreatedAt  *string     `json:"createdAt,omitempty"`
	UpdatedAt  *string     `json:"updatedAt,omitempty"`

	CustomFields []customfield.CustomField `json:"customFields,omitempty"`
	Cohorts      []UserCohort              `json:"cohorts,omitempty"`
	TenantData   []TenantData              `json:"tenantData,omitempty"`
}

// UserCohort: keanggotaan kohort yang menempel di event user.
type UserCohort struct {
	BatchID            string  `json:"batchId"`
	CohortMemberID     string  `json:"cohortMemberId"`
	CohortMemberStatus *string `json:"cohortMemberStatus,omitempty"`
	AcademicYearID     *string `json:"academicYearId,omitempty"`
}

// TenantData: pemetaan user ke tenant + perannya.
type TenantData struct {
	TenantID string       `json:"tenantId"`
	Roles    []TenantRole `json:"roles,omitempty"`
	Status   *string      `json:"status,omitempty"`
	Reason   *string      `json:"reason,omitempty"`
}

type TenantRole struct {
	RoleID   string  `json:"roleId"`
	RoleName *string `json:"roleName,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}

// FullName merangkai first/middle/last jadi satu nama. Hasil kosong
// dikembalikan sebagai nil.
func (e *UserEvent) FullName() *string {
	var parts []string
	for _, p := range []*string{e.FirstName, e.MiddleName, e.LastName} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, " ")
	return &full
}

// MobileString mengembalikan mobile sebagai *string (nil kalau kosong).
func (e *UserEvent) MobileString() *string {
	s := e.Mobile.String()
	if s == "" {
		return nil
	}
	return &s
}

// =========================
// Event login & status tenant
// =========================

// UserLoginEvent: payload USER_LOGIN. LastLogin opsional; kalau kosong
// service memakai waktu sekarang.
type UserLoginEvent struct {
	UserID    string  `json:"userId" validate:"required"`
	LastLogin *string `json:"lastLogin,omitempty"`
}

// UserTenantStatusEvent: payload USER_TENANT_STATUS_UPDATE /
// USER_TENANT_MAPPING.
type UserTenantStatusEvent struct {
	UserID     string       `json:"userId" validate:"required"`
	CreatedAt  *string      `json:"createdAt,omitempty"`
	Reason     *string      `json:"reason,omitempty"`
	TenantData []TenantData `json:"tenantData,omitempty"`
}

// UserDeleteEvent: payload USER_DELETED.
type UserDeleteEvent struct {
	UserID string `json:"userId" validate:"required"`
}

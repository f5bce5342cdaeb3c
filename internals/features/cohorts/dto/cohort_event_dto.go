package dto

import (
	"shikshasync_backend/internals/helpers/customfield"
)

// =========================
// Event masuk (family cohorts)
// =========================

// CohortEvent: payload COHORT_CREATED / COHORT_UPDATED / COHORT_DELETED.
type CohortEvent struct {
	CohortID   string  `json:"cohortId" validate:"required"`
	TenantID   *string `json:"tenantId,omitempty"`
	Name       *string `json:"name,omitempty"`
	ParentID   *string `json:"parentId,omitempty"`
	Type       *string `json:"type,omitempty"`
	Status     *string `json:"status,omitempty"`
	CreatedAt  *string `json:"createdAt,omitempty"`
	UpdatedAt  *string `json:"updatedAt,omitempty"`

	CustomFields []customfield.CustomField `json:"customFields,omitempty"`
}

// CohortMemberEvent: payload COHORT_MEMBER_CREATED / COHORT_MEMBER_UPDATED.
// Beda dengan event lain, customFields di sini datar: pasangan label+value.
// Fields adalah jalur alternatif berupa map kolom langsung.
type CohortMemberEvent struct {
	CohortMembershipID string  `json:"cohortMembershipId"`
	UserID             *string `json:"userId,omitempty"`
	CohortID           *string `json:"cohortId,omitempty"`
	Status             *string `json:"status,omitempty"`
	AcademicYearID     *string `json:"academicYearId,omitempty"`

	CustomFields []CohortMemberField `json:"customFields,omitempty"`
	Fields       map[string]any      `json:"fields,omitempty"`
}

// CohortMemberField: custom field datar milik event cohort member.
type CohortMemberField struct {
	Label string  `json:"label"`
	Value *string `json:"value,omitempty"`
}

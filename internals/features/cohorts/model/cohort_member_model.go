// internals/features/cohorts/model/cohort_member_model.go
package model

import "time"

// CohortMemberModel: keanggotaan user di sebuah cohort (natural key
// UserID+CohortID; CohortMemberID dipakai jalur update custom field).
type CohortMemberModel struct {
	CohortMemberID string  `gorm:"type:uuid;primaryKey;column:CohortMemberID" json:"cohort_member_id"`
	UserID         string  `gorm:"type:uuid;not null;column:UserID" json:"user_id"`
	CohortID       string  `gorm:"type:uuid;not null;column:CohortID" json:"cohort_id"`
	MemberStatus   string  `gorm:"column:MemberStatus;default:active" json:"member_status"`
	AcademicYearID *string `gorm:"type:uuid;column:AcademicYearID" json:"academic_year_id,omitempty"`

	// Kolom custom field yang boleh di-update parsial (lihat allow-list di service)
	Subject      *string `gorm:"column:Subject" json:"subject,omitempty"`
	Fees         *string `gorm:"column:Fees" json:"fees,omitempty"`
	Registration *string `gorm:"column:Registration" json:"registration,omitempty"`
	Board        *string `gorm:"column:Board" json:"board,omitempty"`

	// Slot hanya diisi jalur migrasi (FieldValues sumber), bukan event
	Slot *string `gorm:"column:Slot" json:"slot,omitempty"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:UpdatedAt;autoUpdateTime" json:"updated_at"`
}

func (CohortMemberModel) TableName() string { return "CohortMember" }

// internals/features/users/model/registration_tracker_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationTrackerModel: satu baris per (UserID, RoleID, TenantID).
// Menyimpan tanggal registrasi platform/tenant pertama kali + flag aktif.
type RegistrationTrackerModel struct {
	RegID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:REGID" json:"reg_id"`

	UserID   string `gorm:"type:uuid;not null;column:UserID" json:"user_id"`
	RoleID   string `gorm:"type:uuid;not null;column:RoleID" json:"role_id"`
	TenantID string `gorm:"type:uuid;not null;column:TenantID" json:"tenant_id"`

	PlatformRegnDate *time.Time `gorm:"column:PlatformRegnDate" json:"platform_regn_date,omitempty"`
	TenantRegnDate   *time.Time `gorm:"column:TenantRegnDate" json:"tenant_regn_date,omitempty"`
	IsActive         bool       `gorm:"column:IsActive;default:true" json:"is_active"`
	Reason           *string    `gorm:"column:Reason" json:"reason,omitempty"`
}

func (RegistrationTrackerModel) TableName() string { return "RegistrationTracker" }

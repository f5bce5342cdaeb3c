// internals/features/projects/model/project_model.go
package model

import (
	"time"
)

// ProjectModel: header proyek hasil sinkronisasi. TenantId & AcademicYear
// hanya diisi saat insert — tidak pernah ikut di-update saat konflik.
type ProjectModel struct {
	ProjectId   string  `gorm:"primaryKey;column:ProjectId" json:"project_id"`
	ProjectName *string `gorm:"column:ProjectName" json:"project_name,omitempty"`

	Board   *string `gorm:"column:Board" json:"board,omitempty"`
	Medium  *string `gorm:"column:Medium" json:"medium,omitempty"`
	Subject *string `gorm:"column:Subject" json:"subject,omitempty"`
	Grade   *string `gorm:"column:Grade" json:"grade,omitempty"`
	Type    *string `gorm:"column:Type" json:"type,omitempty"`

	StartDate *time.Time `gorm:"type:date;column:StartDate" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date;column:EndDate" json:"end_date,omitempty"`

	CreatedBy    *string `gorm:"type:uuid;column:CreatedBy" json:"created_by,omitempty"`
	TenantId     *string `gorm:"type:uuid;column:TenantId" json:"tenant_id,omitempty"`
	AcademicYear *string `gorm:"type:uuid;column:AcademicYear" json:"academic_year,omitempty"`
}

func (ProjectModel) TableName() string { return "Project" }

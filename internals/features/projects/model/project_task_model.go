// internals/features/projects/model/project_task_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectTaskModel: tugas milik satu proyek. ParentId menunjuk tugas induk
// memakai identifier yang sama dengan ProjectTaskId induknya.
type ProjectTaskModel struct {
	ProjectTaskId string  `gorm:"primaryKey;column:ProjectTaskId" json:"project_task_id"`
	ProjectId     string  `gorm:"not null;column:ProjectId" json:"project_id"`
	TaskName      *string `gorm:"column:TaskName" json:"task_name,omitempty"`
	ParentId      *string `gorm:"column:ParentId" json:"parent_id,omitempty"`

	StartDate *time.Time `gorm:"type:date;column:StartDate" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date;column:EndDate" json:"end_date,omitempty"`

	LearningResource datatypes.JSON `gorm:"type:jsonb;column:LearningResource" json:"learning_resource,omitempty"`

	CreatedBy *string   `gorm:"type:uuid;column:CreatedBy" json:"created_by,omitempty"`
	UpdatedBy *string   `gorm:"type:uuid;column:UpdatedBy" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:UpdatedAt;autoUpdateTime" json:"updated_at"`
}

func (ProjectTaskModel) TableName() string { return "ProjectTask" }

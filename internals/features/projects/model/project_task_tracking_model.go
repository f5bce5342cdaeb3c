// internals/features/projects/model/project_task_tracking_model.go
package model

import (
	"time"
)

// ProjectTaskTrackingModel: catatan tugas yang sudah selesai per kohort.
// Kombinasi (ProjectId, ProjectTaskId, CohortId) tidak boleh dobel —
// service melakukan dedup sebelum insert.
type ProjectTaskTrackingModel struct {
	ProjectTaskTrackingId string `gorm:"primaryKey;column:ProjectTaskTrackingId" json:"project_task_tracking_id"`

	ProjectId     string  `gorm:"not null;column:ProjectId" json:"project_id"`
	ProjectTaskId string  `gorm:"not null;column:ProjectTaskId" json:"project_task_id"`
	CohortId      *string `gorm:"type:uuid;column:CohortId" json:"cohort_id,omitempty"`

	CreatedBy *string   `gorm:"type:uuid;column:CreatedBy" json:"created_by,omitempty"`
	UpdatedBy *string   `gorm:"type:uuid;column:UpdatedBy" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:UpdatedAt;autoUpdateTime" json:"updated_at"`
}

func (ProjectTaskTrackingModel) TableName() string { return "ProjectTaskTracking" }

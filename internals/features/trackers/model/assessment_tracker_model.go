// internals/features/trackers/model/assessment_tracker_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentTrackerModel: hasil asesmen per attempt.
type AssessmentTrackerModel struct {
	AssessTrackingId string `gorm:"primaryKey;column:assessTrackingId" json:"assess_tracking_id"`

	AssessmentId   *string `gorm:"column:assessmentId" json:"assessment_id,omitempty"`
	CourseId       *string `gorm:"column:courseId" json:"course_id,omitempty"`
	AssessmentName *string `gorm:"column:assessmentName" json:"assessment_name,omitempty"`
	UserId         *string `gorm:"type:uuid;column:userId" json:"user_id,omitempty"`
	TenantId       *string `gorm:"type:uuid;column:tenantId" json:"tenant_id,omitempty"`

	TotalMaxScore *float64 `gorm:"column:totalMaxScore" json:"total_max_score,omitempty"`
	TotalScore    *float64 `gorm:"column:totalScore" json:"total_score,omitempty"`
	TimeSpent     *float64 `gorm:"column:timeSpent" json:"time_spent,omitempty"`

	AssessmentSummary datatypes.JSON `gorm:"type:jsonb;column:assessmentSummary" json:"assessment_summary,omitempty"`
	AttemptId         *string        `gorm:"column:attemptId" json:"attempt_id,omitempty"`
	AssessmentType    *string        `gorm:"column:assessmentType" json:"assessment_type,omitempty"`
	EvaluatedBy       *string        `gorm:"column:evaluatedBy" json:"evaluated_by,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime" json:"updated_at"`
}

func (AssessmentTrackerModel) TableName() string { return "AssessmentTracker" }

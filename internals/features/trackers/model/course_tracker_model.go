// internals/features/trackers/model/course_tracker_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseTrackerModel: status enrolment kursus per user. Kunci alami:
// (userId, courseId, tenantId, certificateId).
type CourseTrackerModel struct {
	CourseTrackerId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:courseTrackerId" json:"course_tracker_id"`

	UserId        string  `gorm:"type:uuid;not null;column:userId" json:"user_id"`
	CourseId      string  `gorm:"not null;column:courseId" json:"course_id"`
	TenantId      *string `gorm:"type:uuid;column:tenantId" json:"tenant_id,omitempty"`
	CertificateId *string `gorm:"column:certificateId" json:"certificate_id,omitempty"`

	CourseName           *string    `gorm:"column:courseName" json:"course_name,omitempty"`
	CourseTrackingStatus *string    `gorm:"column:courseTrackingStatus" json:"course_tracking_status,omitempty"`
	CourseTrackingStart  *time.Time `gorm:"column:courseTrackingStartDate" json:"course_tracking_start_date,omitempty"`
	CourseTrackingEnd    *time.Time `gorm:"column:courseTrackingEndDate" json:"course_tracking_end_date,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime" json:"updated_at"`
}

func (CourseTrackerModel) TableName() string { return "CourseTracker" }

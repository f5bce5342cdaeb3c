// internals/features/trackers/model/content_tracker_model.go
package model

import "time"

// ContentTrackerModel: progres konsumsi konten. Kunci alami:
// (userId, contentId, tenantId).
type ContentTrackerModel struct {
	ContentTrackerId string `gorm:"primaryKey;column:contentTrackerId" json:"content_tracker_id"`

	UserId    string  `gorm:"type:uuid;not null;column:userId" json:"user_id"`
	ContentId string  `gorm:"not null;column:contentId" json:"content_id"`
	TenantId  *string `gorm:"type:uuid;column:tenantId" json:"tenant_id,omitempty"`
	CourseId  *string `gorm:"column:courseId" json:"course_id,omitempty"`

	ContentName           *string `gorm:"column:contentName" json:"content_name,omitempty"`
	ContentType           *string `gorm:"column:contentType" json:"content_type,omitempty"`
	ContentTrackingStatus *string `gorm:"column:contentTrackingStatus" json:"content_tracking_status,omitempty"`
	TimeSpent             *int    `gorm:"column:timeSpent" json:"time_spent,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime" json:"updated_at"`
}

func (ContentTrackerModel) TableName() string { return "ContentTracker" }

package dto

import "encoding/json"

// =========================
// Event masuk (family tracking)
// =========================

// AssessmentEvent: payload ASSESSMENT_CREATED / ASSESSMENT_UPDATED /
// ASSESSMENT_DELETED.
type AssessmentEvent struct {
	AssessmentTrackingID string  `json:"assessmentTrackingId" validate:"required"`
	ContentID            *string `json:"contentId,omitempty"`
	CourseID             *string `json:"courseId,omitempty"`
	AssessmentName       *string `json:"assessmentName,omitempty"`
	UserID               *string `json:"userId,omitempty"`
	TenantID             *string `json:"tenantId,omitempty"`
	TotalMaxScore        *float64 `json:"totalMaxScore,omitempty"`
	TotalScore           *float64 `json:"totalScore,omitempty"`
	TimeSpent            json.Number `json:"timeSpent,omitempty"`
	AttemptID            *string `json:"attemptId,omitempty"`
	AssessmentType       *string `json:"assessmentType,omitempty"`
	EvaluatedBy          *string `json:"evaluatedBy,omitempty"`

	AssessmentSummary json.RawMessage `json:"assessmentSummary,omitempty"`
}

// CourseEnrollmentEvent: payload COURSE_ENROLLMENT_CREATED /
// COURSE_STATUS_UPDATED.
type CourseEnrollmentEvent struct {
	UserID        string  `json:"userId" validate:"required"`
	CourseID      string  `json:"courseId" validate:"required"`
	TenantID      *string `json:"tenantId,omitempty"`
	CourseName    *string `json:"courseName,omitempty"`
	Status        *string `json:"status,omitempty"`
	CertificateID *string `json:"certificateId,omitempty"`
	CreatedOn     *string `json:"createdOn,omitempty"`
	CompletedOn   *string `json:"completedOn,omitempty"`
}

// ContentTrackingEvent: payload CONTENT_TRACKING_CREATED. Status dan total
// durasi diturunkan dari details: ada END berarti completed, ada START
// berarti started, selain itu inprogress.
type ContentTrackingEvent struct {
	ContentTrackingID string  `json:"contentTrackingId" validate:"required"`
	UserID            string  `json:"userId" validate:"required"`
	TenantID          *string `json:"tenantId,omitempty"`
	ContentID         string  `json:"contentId" validate:"required"`
	CourseID          *string `json:"courseId,omitempty"`
	ContentName       *string `json:"contentName,omitempty"`
	ContentType       *string `json:"contentType,omitempty"`
	CreatedOn         *string `json:"createdOn,omitempty"`
	UpdatedOn         *string `json:"updatedOn,omitempty"`

	Details []ContentDetail `json:"details,omitempty"`
}

// ContentDetail: satu interaksi konten (eid START/END + durasi detik).
type ContentDetail struct {
	EID      string  `json:"eid"`
	Duration float64 `json:"duration,omitempty"`
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shikshasync_backend/internals/features/trackers/dto"
	"shikshasync_backend/internals/features/trackers/model"
	"shikshasync_backend/internals/helpers/coerce"
)

type TrackerService struct {
	db *gorm.DB
}

func NewTrackerService(db *gorm.DB) *TrackerService {
	return &TrackerService{db: db}
}

/* =========================================
   Assessment
   ========================================= */

// TransformAssessment: assessmentId pakai contentId, fallback courseId.
func TransformAssessment(ev *dto.AssessmentEvent) (*model.AssessmentTrackerModel, error) {
	if strings.TrimSpace(ev.AssessmentTrackingID) == "" {
		return nil, fmt.Errorf("assessmentTrackingId kosong")
	}

	assessmentID := ev.ContentID
	if assessmentID == nil || strings.TrimSpace(*assessmentID) == "" {
		assessmentID = ev.CourseID
	}

	m := &model.AssessmentTrackerModel{
		AssessTrackingId:  ev.AssessmentTrackingID,
		AssessmentId:      assessmentID,
		CourseId:          ev.CourseID,
		AssessmentName:    ev.AssessmentName,
		UserId:            ev.UserID,
		TenantId:          ev.TenantID,
		TotalMaxScore:     ev.TotalMaxScore,
		TotalScore:        ev.TotalScore,
		AttemptId:         ev.AttemptID,
		AssessmentType:    ev.AssessmentType,
		EvaluatedBy:       ev.EvaluatedBy,
		AssessmentSummary: datatypes.JSON(ev.AssessmentSummary),
	}
	if ev.TimeSpent != "" {
		if f, err := ev.TimeSpent.Float64(); err == nil {
			m.TimeSpent = &f
		}
	}
	return m, nil
}

var assessmentUpdateColumns = []string{
	"totalMaxScore", "totalScore", "timeSpent",
	"assessmentSummary", "assessmentType", "evaluatedBy",
}

func (s *TrackerService) UpsertAssessment(ctx context.Context, m *model.AssessmentTrackerModel) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assessTrackingId"}},
			DoUpdates: clause.AssignmentColumns(assessmentUpdateColumns),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert AssessmentTracker %s: %w", m.AssessTrackingId, err)
	}
	return nil
}

func (s *TrackerService) DeleteAssessment(ctx context.Context, trackingID string) error {
	res := s.db.WithContext(ctx).
		Where(`"assessTrackingId" = ?`, trackingID).
		Delete(&model.AssessmentTrackerModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("[TRACKER] hapus asesmen %s: tidak ada baris", trackingID)
	}
	return nil
}

/* =========================================
   Course enrolment
   ========================================= */

func TransformCourse(ev *dto.CourseEnrollmentEvent) (*model.CourseTrackerModel, error) {
	if ev.UserID == "" || ev.CourseID == "" {
		return nil, fmt.Errorf("userId/courseId kosong")
	}
	return &model.CourseTrackerModel{
		UserId:               ev.UserID,
		CourseId:             ev.CourseID,
		TenantId:             ev.TenantID,
		CertificateId:        ev.CertificateID,
		CourseName:           ev.CourseName,
		CourseTrackingStatus: ev.Status,
		CourseTrackingStart:  coerce.ToDate(derefAny(ev.CreatedOn)),
		CourseTrackingEnd:    coerce.ToDate(derefAny(ev.CompletedOn)),
	}, nil
}

var courseUpdateColumns = []string{
	"courseName", "courseTrackingStatus",
	"courseTrackingStartDate", "courseTrackingEndDate",
}

// UpsertCourse: konflik pada kunci alami empat kolom.
func (s *TrackerService) UpsertCourse(ctx context.Context, m *model.CourseTrackerModel) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "userId"}, {Name: "courseId"},
				{Name: "tenantId"}, {Name: "certificateId"},
			},
			DoUpdates: clause.AssignmentColumns(courseUpdateColumns),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert CourseTracker %s/%s: %w", m.UserId, m.CourseId, err)
	}
	return nil
}

// UpdateCourseStatus: update-only pada enrolment yang sudah ada; hanya
// field yang terkirim yang disentuh.
func (s *TrackerService) UpdateCourseStatus(ctx context.Context, ev *dto.CourseEnrollmentEvent) error {
	updates := map[string]any{}
	if ev.Status != nil {
		updates["courseTrackingStatus"] = *ev.Status
	}
	if ev.CertificateID != nil {
		updates["certificateId"] = *ev.CertificateID
	}
	if end := coerce.ToDate(derefAny(ev.CompletedOn)); end != nil {
		updates["courseTrackingEndDate"] = *end
	}
	if len(updates) == 0 {
		return nil
	}

	q := s.db.WithContext(ctx).
		Model(&model.CourseTrackerModel{}).
		Where(`"userId" = ? AND "courseId" = ?`, ev.UserID, ev.CourseID)
	if ev.TenantID != nil {
		q = q.Where(`"tenantId" = ?`, *ev.TenantID)
	}

	res := q.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("enrolment %s/%s belum ada, status tidak bisa diupdate", ev.UserID, ev.CourseID)
	}
	return nil
}

/* =========================================
   Content tracking
   ========================================= */

// TransformContent menurunkan status dan total durasi dari details.
func TransformContent(ev *dto.ContentTrackingEvent) (*model.ContentTrackerModel, error) {
	if ev.ContentTrackingID == "" || ev.UserID == "" || ev.ContentID == "" {
		return nil, fmt.Errorf("contentTrackingId/userId/contentId kosong")
	}

	status := "inprogress"
	total := 0.0
	for _, d := range ev.Details {
		total += d.Duration
		switch strings.ToUpper(strings.TrimSpace(d.EID)) {
		case "END":
			status = "completed"
		case "START":
			if status != "completed" {
				status = "started"
			}
		}
	}
	timeSpent := int(total)

	return &model.ContentTrackerModel{
		ContentTrackerId:      ev.ContentTrackingID,
		UserId:                ev.UserID,
		ContentId:             ev.ContentID,
		TenantId:              ev.TenantID,
		CourseId:              ev.CourseID,
		ContentName:           ev.ContentName,
		ContentType:           ev.ContentType,
		ContentTrackingStatus: &status,
		TimeSpent:             &timeSpent,
	}, nil
}

var contentUpdateColumns = []string{
	"contentName", "contentType", "contentTrackingStatus",
	"timeSpent", "updatedAt",
}

func (s *TrackerService) UpsertContent(ctx context.Context, m *model.ContentTrackerModel) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "userId"}, {Name: "contentId"}, {Name: "tenantId"},
			},
			DoUpdates: clause.AssignmentColumns(contentUpdateColumns),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert ContentTracker %s/%s: %w", m.UserId, m.ContentId, err)
	}
	return nil
}

func derefAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

package controller

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/trackers/dto"
	"shikshasync_backend/internals/features/trackers/service"
	"shikshasync_backend/internals/helpers"
)

var validate = validator.New()

type TrackerEventController struct {
	trackers *service.TrackerService
}

func NewTrackerEventController(db *gorm.DB) *TrackerEventController {
	return &TrackerEventController{trackers: service.NewTrackerService(db)}
}

// ASSESSMENT_CREATED / ASSESSMENT_UPDATED
func (ctl *TrackerEventController) UpsertAssessment(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.AssessmentEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload asesmen tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	m, err := service.TransformAssessment(&ev)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.trackers.UpsertAssessment(c.Context(), m); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan asesmen")
	}
	return helpers.Success(c, "Event asesmen diproses", fiber.Map{
		"assess_tracking_id": m.AssessTrackingId,
	})
}

// ASSESSMENT_DELETED
func (ctl *TrackerEventController) DeleteAssessment(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.AssessmentEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload asesmen tidak valid")
	}
	if ev.AssessmentTrackingID == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "assessmentTrackingId wajib diisi")
	}
	if err := ctl.trackers.DeleteAssessment(c.Context(), ev.AssessmentTrackingID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menghapus asesmen")
	}
	return helpers.Success(c, "Asesmen dihapus", fiber.Map{
		"assess_tracking_id": ev.AssessmentTrackingID,
	})
}

// COURSE_ENROLLMENT_CREATED
func (ctl *TrackerEventController) CourseEnrollment(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.CourseEnrollmentEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload enrolment tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	m, err := service.TransformCourse(&ev)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.trackers.UpsertCourse(c.Context(), m); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan enrolment")
	}
	return helpers.Success(c, "Event enrolment diproses", fiber.Map{
		"user_id":   ev.UserID,
		"course_id": ev.CourseID,
	})
}

// COURSE_STATUS_UPDATED: update-only, enrolment harus sudah ada.
func (ctl *TrackerEventController) CourseStatus(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.CourseEnrollmentEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload status kursus tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}
	if err := ctl.trackers.UpdateCourseStatus(c.Context(), &ev); err != nil {
		return helpers.Error(c, fiber.StatusNotFound, err.Error())
	}
	return helpers.Success(c, "Status kursus diperbarui", fiber.Map{
		"user_id":   ev.UserID,
		"course_id": ev.CourseID,
	})
}

// CONTENT_TRACKING_CREATED
func (ctl *TrackerEventController) ContentTracking(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.ContentTrackingEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload konten tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	m, err := service.TransformContent(&ev)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.trackers.UpsertContent(c.Context(), m); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan tracking konten")
	}
	return helpers.Success(c, "Event konten diproses", fiber.Map{
		"content_tracker_id": m.ContentTrackerId,
		"status":             m.ContentTrackingStatus,
	})
}

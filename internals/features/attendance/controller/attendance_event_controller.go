package controller

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/attendance/dto"
	"shikshasync_backend/internals/features/attendance/service"
	"shikshasync_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceEventController struct {
	attendance *service.AttendanceService
}

func NewAttendanceEventController(db *gorm.DB) *AttendanceEventController {
	return &AttendanceEventController{attendance: service.NewAttendanceService(db)}
}

// ATTENDANCE_CREATED / ATTENDANCE_UPDATED: satu event menyentuh tepat
// satu kolom hari pada baris (tenant, context, contextId, user, year, month).
func (ctl *AttendanceEventController) Upsert(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.AttendanceEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload absensi tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	action, err := ctl.attendance.Upsert(c.Context(), &ev)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "Event absensi diproses", fiber.Map{
		"user_id": ev.UserID,
		"action":  action,
	})
}

// ATTENDANCE_DELETED
func (ctl *AttendanceEventController) Delete(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.AttendanceEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload absensi tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}
	if err := ctl.attendance.Delete(c.Context(), &ev); err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "Absensi dihapus", fiber.Map{"user_id": ev.UserID})
}

package controller

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/cohorts/dto"
	"shikshasync_backend/internals/features/cohorts/service"
	"shikshasync_backend/internals/helpers"
)

var validate = validator.New()

type CohortEventController struct {
	cohorts *service.CohortService
	members *service.CohortMemberService
}

func NewCohortEventController(db *gorm.DB, members *service.CohortMemberService) *CohortEventController {
	return &CohortEventController{
		cohorts: service.NewCohortService(db),
		members: members,
	}
}

// COHORT_CREATED / COHORT_UPDATED
func (ctl *CohortEventController) UpsertCohort(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.CohortEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload cohort tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	m, updates, err := ctl.cohorts.TransformCohort(c.Context(), &ev)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	if err := ctl.cohorts.UpsertCohort(c.Context(), m, updates); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan cohort")
	}
	return helpers.Success(c, "Event cohort diproses", fiber.Map{
		"cohort_id":      m.CohortID,
		"custom_columns": len(updates),
	})
}

// COHORT_DELETED
func (ctl *CohortEventController) DeleteCohort(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.CohortEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload cohort tidak valid")
	}
	if ev.CohortID == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "cohortId wajib diisi")
	}
	if err := ctl.cohorts.DeleteCohort(c.Context(), ev.CohortID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menghapus cohort")
	}
	return helpers.Success(c, "Cohort dihapus", fiber.Map{"cohort_id": ev.CohortID})
}

// COHORT_MEMBER_CREATED / COHORT_MEMBER_UPDATED
func (ctl *CohortEventController) UpsertMember(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.CohortMemberEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload keanggotaan tidak valid")
	}
	if err := ctl.members.HandleMemberEvent(c.Context(), &ev); err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "Event keanggotaan diproses", fiber.Map{
		"cohort_membership_id": ev.CohortMembershipID,
	})
}

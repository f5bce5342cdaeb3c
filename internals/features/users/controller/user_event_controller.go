package controller

import (
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cohortservice "shikshasync_backend/internals/features/cohorts/service"
	"shikshasync_backend/internals/features/users/dto"
	"shikshasync_backend/internals/features/users/service"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
)

var validate = validator.New()

type UserEventController struct {
	users         *service.UserService
	registrations *service.RegistrationService
	members       *cohortservice.CohortMemberService
}

func NewUserEventController(db *gorm.DB, members *cohortservice.CohortMemberService) *UserEventController {
	return &UserEventController{
		users:         service.NewUserService(db),
		registrations: service.NewRegistrationService(db),
		members:       members,
	}
}

// USER_CREATED / USER_UPDATED: user + keanggotaan cohort + registrasi
// tenant, semuanya dari satu payload.
func (ctl *UserEventController) UpsertUser(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.UserEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload user tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	m, err := ctl.users.TransformUser(&ev)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	action, err := ctl.users.UpsertUser(c.Context(), m)
	if err != nil {
		log.Printf("[USER] upsert %s gagal: %v", ev.UserID, err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	// keanggotaan cohort ikut di payload user
	memberResults := map[string]int{}
	for _, cohort := range ev.Cohorts {
		if cohort.BatchID == "" {
			continue
		}
		res, err := ctl.members.UpsertMemberFromUserEvent(c.Context(), ev.UserID, cohort.BatchID, cohort.CohortMemberID, cohort.CohortMemberStatus, cohort.AcademicYearID)
		if err != nil {
			log.Printf("[USER] keanggotaan %s/%s gagal: %v", ev.UserID, cohort.BatchID, err)
			memberResults["error"]++
			continue
		}
		memberResults[res]++
	}

	// registrasi per tenant x role
	regs := ctl.registrations.TransformRegistrations(ev.UserID, ev.CreatedAt, ev.Reason, ev.TenantData)
	regResults := map[string]int{}
	for i := range regs {
		res, err := ctl.registrations.UpsertRegistration(c.Context(), &regs[i])
		if err != nil {
			log.Printf("[USER] registrasi %s/%s gagal: %v", regs[i].UserID, regs[i].TenantID, err)
			regResults["error"]++
			continue
		}
		regResults[res]++
	}

	return helpers.Success(c, "Event user diproses", fiber.Map{
		"user_id":       ev.UserID,
		"user":          action,
		"members":       memberResults,
		"registrations": regResults,
	})
}

// USER_DELETED
func (ctl *UserEventController) DeleteUser(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.UserDeleteEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload user tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}
	if err := ctl.users.DeleteUser(c.Context(), ev.UserID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helpers.Success(c, "User dihapus", fiber.Map{"user_id": ev.UserID})
}

// USER_LOGIN: hanya memutakhirkan last login.
func (ctl *UserEventController) LastLogin(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.UserLoginEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload login tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}
	if err := ctl.users.UpdateLastLogin(c.Context(), ev.UserID, ev.LastLogin); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal update last login")
	}
	return helpers.Success(c, "Last login diperbarui", fiber.Map{"user_id": ev.UserID})
}

// USER_TENANT_STATUS_UPDATE: toggle flag aktif registrasi per tenant.
// Status per tenant menentukan isActive; tanpa status dianggap aktif.
func (ctl *UserEventController) TenantStatusUpdate(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.UserTenantStatusEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload status tenant tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	regnDate := coerce.ToDate(derefAny(ev.CreatedAt))
	summary := &helpers.BatchSummary{}
	for _, td := range ev.TenantData {
		summary.Processed++
		isActive := true
		if v := coerce.ActiveStatus(td.Status); v != nil {
			isActive = *v
		}
		reason := td.Reason
		if reason == nil {
			reason = ev.Reason
		}
		if err := ctl.registrations.UpdateTenantStatus(c.Context(), ev.UserID, td.TenantID, isActive, regnDate, reason); err != nil {
			summary.AddError(td.TenantID, err)
			continue
		}
		summary.Updated++
	}
	return helpers.BatchResult(c, "Status tenant diproses", summary)
}

// USER_TENANT_MAPPING: pemetaan user→tenant+role baru.
func (ctl *UserEventController) TenantMapping(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.UserTenantStatusEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload mapping tenant tidak valid")
	}
	if err := validate.Struct(&ev); err != nil {
		return helpers.ValidationError(c, err)
	}

	regs := ctl.registrations.TransformRegistrations(ev.UserID, ev.CreatedAt, ev.Reason, ev.TenantData)
	summary := &helpers.BatchSummary{}
	for i := range regs {
		summary.Processed++
		res, err := ctl.registrations.UpsertRegistration(c.Context(), &regs[i])
		if err != nil {
			summary.AddError(regs[i].TenantID, err)
			continue
		}
		if res == "created" {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}
	return helpers.BatchResult(c, "Mapping tenant diproses", summary)
}

func derefAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

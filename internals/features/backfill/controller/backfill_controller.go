package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/backfill/service"
	projectdto "shikshasync_backend/internals/features/projects/dto"
	"shikshasync_backend/internals/helpers"
)

// BackfillController memuat ulang data historis ke database tujuan.
// Entitas bersumber Postgres (cohorts, cohort-members, attendance,
// registrations) butuh koneksi DB sumber; entitas proyek dibaca dari
// dump dokumen yang dikirim di body request, jadi tetap jalan tanpa
// DB sumber.
type BackfillController struct {
	cohorts       *service.CohortBackfillService
	members       *service.CohortMemberBackfillService
	attendance    *service.AttendanceBackfillService
	registrations *service.RegistrationBackfillService
	projects      *service.ProjectBackfillService
}

func NewBackfillController(source, dest *gorm.DB) *BackfillController {
	ctl := &BackfillController{
		projects: service.NewProjectBackfillService(dest),
	}
	if source != nil {
		ctl.cohorts = service.NewCohortBackfillService(source, dest)
		ctl.members = service.NewCohortMemberBackfillService(source, dest)
		ctl.attendance = service.NewAttendanceBackfillService(source, dest)
		ctl.registrations = service.NewRegistrationBackfillService(source, dest)
	}
	return ctl
}

// POST /backfill/:entity
func (ctl *BackfillController) Run(c *fiber.Ctx) error {
	entity := c.Params("entity")
	log.Printf("[BACKFILL] mulai backfill %s", entity)

	var (
		summary *helpers.BatchSummary
		err     error
	)
	switch entity {
	case "cohorts", "cohort-members", "attendance", "registrations":
		if ctl.cohorts == nil {
			return helpers.Error(c, fiber.StatusServiceUnavailable, "Database sumber tidak dikonfigurasi")
		}
		switch entity {
		case "cohorts":
			summary, err = ctl.cohorts.Run(c.Context())
		case "cohort-members":
			summary, err = ctl.members.Run(c.Context())
		case "attendance":
			summary, err = ctl.attendance.Run(c.Context())
		case "registrations":
			summary, err = ctl.registrations.Run(c.Context())
		}
	case "projects":
		var docs []service.SolutionDocument
		if err := c.BodyParser(&docs); err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "Body harus array dokumen Solutions")
		}
		summary, err = ctl.projects.RunProjects(c.Context(), docs)
	case "project-tasks":
		var docs []projectdto.ProjectSyncEvent
		if err := c.BodyParser(&docs); err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "Body harus array dokumen Projects")
		}
		summary, err = ctl.projects.RunTasks(c.Context(), docs)
	case "project-task-trackings":
		var docs []projectdto.ProjectSyncEvent
		if err := c.BodyParser(&docs); err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "Body harus array dokumen Projects")
		}
		summary, err = ctl.projects.RunTaskTrackings(c.Context(), docs)
	default:
		return helpers.Error(c, fiber.StatusNotFound, "Entitas backfill tidak dikenal: "+entity)
	}
	if err != nil {
		log.Printf("[BACKFILL] %s gagal total: %v", entity, err)
		return helpers.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[BACKFILL] %s selesai: %d diproses, %d gagal", entity, summary.Processed, summary.Errored)
	return helpers.BatchResult(c, "Backfill "+entity+" selesai", summary)
}

package controller

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/projects/dto"
	"shikshasync_backend/internals/features/projects/service"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
)

type ProjectEventController struct {
	projects *service.ProjectService
}

func NewProjectEventController(db *gorm.DB) *ProjectEventController {
	return &ProjectEventController{projects: service.NewProjectService(db)}
}

// COURSE_PLANNER_PROJECT_CREATED: header proyek + task dari template planner.
func (ctl *ProjectEventController) PlannerCreated(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.ProjectPlannerEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload planner tidak valid")
	}
	if err := ctl.projects.HandleProjectCreated(c.Context(), &ev); err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "Proyek planner diproses", fiber.Map{
		"solution_id": ev.Solution.SolutionID,
	})
}

// PROJECT_SYNC_CREATED / PROJECT_SYNC_UPDATED: catat task selesai dari
// dokumen sync per user. Himpunan task proyek tidak disentuh.
func (ctl *ProjectEventController) SyncUpsert(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.ProjectSyncEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload sync tidak valid")
	}
	if ev.SolutionID == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "solutionId wajib diisi")
	}
	summary, err := ctl.projects.HandleProjectSync(c.Context(), &ev)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.BatchResult(c, "Sync proyek diproses", summary)
}

// PROJECT_TASK_UPDATED: batch otoritatif task proyek — task lama yang
// hilang dari batch dihapus, sisanya di-upsert.
func (ctl *ProjectEventController) TaskUpdate(c *fiber.Ctx, raw json.RawMessage) error {
	var ev dto.ProjectSyncEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload task tidak valid")
	}
	if ev.SolutionID == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "solutionId wajib diisi")
	}
	if err := ctl.projects.HandleProjectTaskUpdate(c.Context(), &ev); err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "Task proyek diperbarui", fiber.Map{
		"solution_id": ev.SolutionID,
	})
}

// SyncDirect: pesan sync tanpa amplop eventType. Tipe event ditebak dari
// jarak createdAt–updatedAt (< 1 detik berarti baru dibuat).
func (ctl *ProjectEventController) SyncDirect(c *fiber.Ctx) error {
	raw := c.Body()
	var ev dto.ProjectSyncEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Payload sync tidak valid")
	}
	eventType := InferSyncEventType(ev.CreatedAt, ev.UpdatedAt)
	if eventType == "PROJECT_SYNC_CREATED" || eventType == "PROJECT_SYNC_UPDATED" {
		return ctl.SyncUpsert(c, raw)
	}
	return helpers.Error(c, fiber.StatusBadRequest, "Tipe event sync tidak dikenali")
}

// InferSyncEventType menebak created vs updated dari dua timestamp.
func InferSyncEventType(createdAt, updatedAt *string) string {
	created := coerce.ToDate(strPtrAny(createdAt))
	updated := coerce.ToDate(strPtrAny(updatedAt))
	if created != nil && updated != nil {
		diff := math.Abs(float64(updated.Sub(*created)))
		if diff < float64(time.Second) {
			return "PROJECT_SYNC_CREATED"
		}
	}
	return "PROJECT_SYNC_UPDATED"
}

func strPtrAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

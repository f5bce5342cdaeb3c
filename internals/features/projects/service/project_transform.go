package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"shikshasync_backend/internals/features/projects/dto"
	"shikshasync_backend/internals/features/projects/model"
	"shikshasync_backend/internals/helpers/coerce"
)

/* =========================================
   Transform murni (tanpa DB)
   ========================================= */

// TransformProject memetakan event planner ke baris Project.
// TenantId & AcademicYear sengaja tidak disentuh (nilai default DB).
func TransformProject(ev *dto.ProjectPlannerEvent) (*model.ProjectModel, error) {
	if ev.Solution == nil || ev.Solution.SolutionID == "" {
		return nil, fmt.Errorf("solutionId wajib ada")
	}
	if ev.ProjectTemplate == nil {
		return nil, fmt.Errorf("projectTemplate wajib ada")
	}

	m := &model.ProjectModel{
		ProjectId:   ev.Solution.SolutionID,
		ProjectName: ev.ProjectTemplate.Title,
	}
	if meta := ev.ProjectTemplate.MetaData; meta != nil {
		m.Board = meta.Board
		m.Medium = meta.Medium
		m.Subject = meta.Subject
		m.Grade = meta.Class
		m.Type = meta.Type
	}
	if ev.Program != nil {
		m.StartDate = coerce.ToDate(strOrNil(ev.Program.StartDate))
		m.EndDate = coerce.ToDate(strOrNil(ev.Program.EndDate))
	}
	return m, nil
}

// TransformTemplateTasks meratakan projectTemplateTasks jadi baris
// ProjectTask. parentTaskId berisi externalId induk; peta externalId→_id
// dibangun lebih dulu dari SEMUA task, jadi urutan task di payload bebas.
func TransformTemplateTasks(ev *dto.ProjectPlannerEvent) ([]model.ProjectTaskModel, error) {
	if ev.Solution == nil || ev.Solution.SolutionID == "" {
		return nil, fmt.Errorf("solutionId wajib ada")
	}
	projectID := ev.Solution.SolutionID

	externalToID := make(map[string]string, len(ev.ProjectTemplateTasks))
	for _, t := range ev.ProjectTemplateTasks {
		if t.ExternalID != nil && *t.ExternalID != "" && t.ID != "" {
			externalToID[*t.ExternalID] = t.ID
		}
	}

	tasks := make([]model.ProjectTaskModel, 0, len(ev.ProjectTemplateTasks))
	for _, t := range ev.ProjectTemplateTasks {
		var parentID *string
		if t.ParentTaskID != nil && *t.ParentTaskID != "" {
			if id, ok := externalToID[*t.ParentTaskID]; ok {
				parentID = &id
			}
		}
		tasks = append(tasks, model.ProjectTaskModel{
			ProjectTaskId:    t.ID,
			ProjectId:        projectID,
			TaskName:         t.Name,
			ParentId:         parentID,
			StartDate:        coerce.ToDate(strOrNil(t.StartDate)),
			EndDate:          coerce.ToDate(strOrNil(t.EndDate)),
			LearningResource: rawJSON(t.LearningResources),
		})
	}
	return tasks, nil
}

// TransformSyncTasks meratakan task format langsung (induk + children).
// Task tanpa referenceId dilewati dengan peringatan; children memakai
// referenceId induknya sebagai ParentId. Tanggal diambil dari
// metaInformation dulu (format DD-MM-YYYY didukung) baru dari task.
func TransformSyncTasks(ev *dto.ProjectSyncEvent) ([]model.ProjectTaskModel, error) {
	if ev.SolutionID == "" {
		return nil, fmt.Errorf("solutionId wajib ada")
	}

	var all []model.ProjectTaskModel
	for _, task := range ev.Tasks {
		if task.ReferenceID == nil || *task.ReferenceID == "" {
			log.Printf("[PROJECT] task tanpa referenceId dilewati: %s", taskLabel(task))
			continue
		}

		all = append(all, model.ProjectTaskModel{
			ProjectTaskId:    *task.ReferenceID,
			ProjectId:        ev.SolutionID,
			TaskName:         task.Name,
			ParentId:         nil,
			StartDate:        taskStartDate(task),
			EndDate:          taskEndDate(task),
			LearningResource: rawJSON(task.LearningResources),
			CreatedBy:        task.CreatedBy,
			UpdatedBy:        task.UpdatedBy,
		})

		for _, child := range task.Children {
			if child.ReferenceID == nil || *child.ReferenceID == "" {
				log.Printf("[PROJECT] child task tanpa referenceId dilewati: %s", taskLabel(child))
				continue
			}
			all = append(all, model.ProjectTaskModel{
				ProjectTaskId:    *child.ReferenceID,
				ProjectId:        ev.SolutionID,
				TaskName:         child.Name,
				ParentId:         task.ReferenceID,
				StartDate:        taskStartDate(child),
				EndDate:          taskEndDate(child),
				LearningResource: rawJSON(child.LearningResources),
				CreatedBy:        child.CreatedBy,
				UpdatedBy:        child.UpdatedBy,
			})
		}
	}
	return all, nil
}

// TransformTaskTrackings mengekstrak catatan penyelesaian: hanya task
// (induk maupun child) berstatus completed DAN ber-referenceId.
func TransformTaskTrackings(ev *dto.ProjectSyncEvent) ([]model.ProjectTaskTrackingModel, error) {
	if ev.SolutionID == "" {
		return nil, fmt.Errorf("solutionId wajib ada")
	}

	var records []model.ProjectTaskTrackingModel
	appendCompleted := func(task dto.SyncTask) {
		if task.Status == nil || !strings.EqualFold(strings.TrimSpace(*task.Status), "completed") {
			return
		}
		if task.ReferenceID == nil || *task.ReferenceID == "" {
			return
		}
		records = append(records, model.ProjectTaskTrackingModel{
			ProjectTaskTrackingId: uuid.NewString(),
			ProjectId:             ev.SolutionID,
			ProjectTaskId:         *task.ReferenceID,
			CohortId:              ev.EntityID,
			CreatedBy:             task.UpdatedBy,
			UpdatedBy:             task.UpdatedBy,
		})
	}

	for i := range ev.Tasks {
		appendCompleted(ev.Tasks[i])
		for j := range ev.Tasks[i].Children {
			appendCompleted(ev.Tasks[i].Children[j])
		}
	}
	return records, nil
}

// TaskIDsToDelete: id task lama yang tidak ada lagi di batch masuk.
// Murni operasi himpunan — tidak peduli urutan.
func TaskIDsToDelete(existing []string, incoming []model.ProjectTaskModel) []string {
	keep := make(map[string]bool, len(incoming))
	for _, t := range incoming {
		keep[t.ProjectTaskId] = true
	}
	var toDelete []string
	for _, id := range existing {
		if !keep[id] {
			toDelete = append(toDelete, id)
		}
	}
	return toDelete
}

func taskStartDate(t dto.SyncTask) *time.Time {
	if t.MetaInformation != nil && t.MetaInformation.StartDate != nil {
		if d := coerce.ToDate(*t.MetaInformation.StartDate); d != nil {
			return d
		}
	}
	return coerce.ToDate(strOrNil(t.StartDate))
}

func taskEndDate(t dto.SyncTask) *time.Time {
	if t.MetaInformation != nil && t.MetaInformation.EndDate != nil {
		if d := coerce.ToDate(*t.MetaInformation.EndDate); d != nil {
			return d
		}
	}
	return coerce.ToDate(strOrNil(t.EndDate))
}

func taskLabel(t dto.SyncTask) string {
	if t.Name != nil && *t.Name != "" {
		return *t.Name
	}
	return t.ID
}

func strOrNil(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func rawJSON(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

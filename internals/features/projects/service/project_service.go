package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shikshasync_backend/internals/features/projects/dto"
	"shikshasync_backend/internals/features/projects/model"
	"shikshasync_backend/internals/helpers"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

/* =========================================
   Upsert per entitas (allow-list konflik)
   ========================================= */

// kolom yang boleh berubah saat konflik ProjectId; TenantId & AcademicYear
// sengaja TIDAK ada di sini
var projectUpdateColumns = []string{
	"ProjectName", "Board", "Medium", "Subject", "Grade", "Type",
	"StartDate", "EndDate", "CreatedBy",
}

var projectTaskUpdateColumns = []string{
	"ProjectId", "TaskName", "ParentId", "StartDate", "EndDate",
	"LearningResource", "UpdatedBy",
}

// UpsertProject menulis header proyek (ON CONFLICT pada ProjectId).
func (s *ProjectService) UpsertProject(ctx context.Context, m *model.ProjectModel) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ProjectId"}},
			DoUpdates: clause.AssignmentColumns(projectUpdateColumns),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert Project %s: %w", m.ProjectId, err)
	}
	return nil
}

// UpsertTasks menulis batch task (ON CONFLICT pada ProjectTaskId).
func (s *ProjectService) UpsertTasks(ctx context.Context, tasks []model.ProjectTaskModel) error {
	if len(tasks) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ProjectTaskId"}},
			DoUpdates: clause.AssignmentColumns(projectTaskUpdateColumns),
		}).
		Create(&tasks).Error
	if err != nil {
		return fmt.Errorf("upsert %d ProjectTask: %w", len(tasks), err)
	}
	return nil
}

/* =========================================
   Rekonsiliasi himpunan task per proyek
   ========================================= */

// SyncTasks menyamakan task sebuah proyek dengan batch masuk: task lama
// yang hilang dari batch dihapus, sisanya di-upsert. Semuanya dalam satu
// transaksi supaya pembaca tidak melihat kondisi setengah jadi.
func (s *ProjectService) SyncTasks(ctx context.Context, projectID string, incoming []model.ProjectTaskModel) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existingIDs []string
		if err := tx.Model(&model.ProjectTaskModel{}).
			Where(`"ProjectId" = ?`, projectID).
			Pluck("ProjectTaskId", &existingIDs).Error; err != nil {
			return fmt.Errorf("ambil task lama proyek %s: %w", projectID, err)
		}

		if toDelete := TaskIDsToDelete(existingIDs, incoming); len(toDelete) > 0 {
			if err := tx.Where(`"ProjectId" = ? AND "ProjectTaskId" IN ?`, projectID, toDelete).
				Delete(&model.ProjectTaskModel{}).Error; err != nil {
				return fmt.Errorf("hapus %d task lama proyek %s: %w", len(toDelete), projectID, err)
			}
			log.Printf("[PROJECT] %d task lama dihapus dari proyek %s", len(toDelete), projectID)
		}

		if len(incoming) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ProjectTaskId"}},
			DoUpdates: clause.AssignmentColumns(projectTaskUpdateColumns),
		}).Create(&incoming).Error; err != nil {
			return fmt.Errorf("upsert %d task proyek %s: %w", len(incoming), projectID, err)
		}
		return nil
	})
}

/* =========================================
   Tracking task selesai (dedup per triple)
   ========================================= */

// InsertTaskTrackings menyisipkan catatan selesai dengan dedup pada
// (ProjectId, ProjectTaskId, CohortId): duplikat dalam batch maupun yang
// sudah ada di tabel dilewati.
func (s *ProjectService) InsertTaskTrackings(ctx context.Context, records []model.ProjectTaskTrackingModel) (*helpers.BatchSummary, error) {
	summary := &helpers.BatchSummary{}
	seen := map[string]bool{}

	for i := range records {
		rec := records[i]
		summary.Processed++

		key := rec.ProjectId + "|" + rec.ProjectTaskId + "|" + derefStr(rec.CohortId)
		if seen[key] {
			summary.Skipped++
			continue
		}
		seen[key] = true

		q := s.db.WithContext(ctx).
			Model(&model.ProjectTaskTrackingModel{}).
			Where(`"ProjectId" = ? AND "ProjectTaskId" = ?`, rec.ProjectId, rec.ProjectTaskId)
		if rec.CohortId != nil {
			q = q.Where(`"CohortId" = ?`, *rec.CohortId)
		} else {
			q = q.Where(`"CohortId" IS NULL`)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			summary.AddError(rec.ProjectTaskId, err)
			continue
		}
		if count > 0 {
			summary.Skipped++
			continue
		}

		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			if helpers.IsDuplicateKey(err) {
				summary.Skipped++
				continue
			}
			summary.AddError(rec.ProjectTaskId, err)
			continue
		}
		summary.Inserted++
	}

	log.Printf("[PROJECT] tracking selesai: %d masuk, %d insert, %d skip, %d gagal",
		summary.Processed, summary.Inserted, summary.Skipped, summary.Errored)
	return summary, nil
}

/* =========================================
   Orkestrasi per event
   ========================================= */

// HandleProjectCreated: event planner — header proyek + task template.
func (s *ProjectService) HandleProjectCreated(ctx context.Context, ev *dto.ProjectPlannerEvent) error {
	project, err := TransformProject(ev)
	if err != nil {
		return err
	}
	tasks, err := TransformTemplateTasks(ev)
	if err != nil {
		return err
	}
	if err := s.UpsertProject(ctx, project); err != nil {
		return err
	}
	return s.UpsertTasks(ctx, tasks)
}

// HandleProjectSync: dokumen sync per user — hanya mencatat task yang
// selesai. Himpunan ProjectTask TIDAK disentuh: dokumen sync cuma
// memuat progres satu user, menghapus task dari situ akan merusak
// proyek milik user lain.
func (s *ProjectService) HandleProjectSync(ctx context.Context, ev *dto.ProjectSyncEvent) (*helpers.BatchSummary, error) {
	trackings, err := TransformTaskTrackings(ev)
	if err != nil {
		return nil, err
	}
	return s.InsertTaskTrackings(ctx, trackings)
}

// HandleProjectTaskUpdate: batch task adalah daftar otoritatif untuk
// proyeknya — task lama yang tidak ikut terkirim dihapus, sisanya
// di-upsert.
func (s *ProjectService) HandleProjectTaskUpdate(ctx context.Context, ev *dto.ProjectSyncEvent) error {
	tasks, err := TransformSyncTasks(ev)
	if err != nil {
		return err
	}
	return s.SyncTasks(ctx, ev.SolutionID, tasks)
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"shikshasync_backend/internals/features/projects/dto"
	"shikshasync_backend/internals/features/projects/model"
	projectservice "shikshasync_backend/internals/features/projects/service"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
)

/* =========================================
   Backfill Project / ProjectTask / Tracking
   ========================================= */

// ProjectBackfillService memuat ulang data proyek dari ekspor dokumen
// (JSON array di body request) ke database tujuan. Sumbernya bukan
// Postgres melainkan dump koleksi, jadi service ini hanya butuh koneksi
// tujuan dan memakai ulang service proyek yang sama dengan jalur event.
type ProjectBackfillService struct {
	dest     *gorm.DB
	projects *projectservice.ProjectService
}

func NewProjectBackfillService(dest *gorm.DB) *ProjectBackfillService {
	return &ProjectBackfillService{
		dest:     dest,
		projects: projectservice.NewProjectService(dest),
	}
}

// SolutionDocument: satu dokumen koleksi Solutions hasil ekspor.
// Tanggal bisa berupa string ISO ataupun envelope {"$date": "..."}.
type SolutionDocument struct {
	ID           string          `json:"_id"`
	Name         *string         `json:"name,omitempty"`
	Scope        *SolutionScope  `json:"scope,omitempty"`
	StartDate    json.RawMessage `json:"startDate,omitempty"`
	EndDate      json.RawMessage `json:"endDate,omitempty"`
	CreatedBy    *string         `json:"createdBy,omitempty"`
	TenantID     *string         `json:"tenantId,omitempty"`
	AcademicYear *string         `json:"academicYear,omitempty"`
	Deleted      bool            `json:"deleted,omitempty"`
	IsDeleted    bool            `json:"isDeleted,omitempty"`
}

type SolutionScope struct {
	Board      []string `json:"board,omitempty"`
	Medium     []string `json:"medium,omitempty"`
	Subject    []string `json:"subject,omitempty"`
	Class      []string `json:"class,omitempty"`
	CourseType []string `json:"courseType,omitempty"`
}

// RunProjects menulis header proyek dari dump Solutions. Dokumen yang
// ditandai terhapus dilewati.
func (s *ProjectBackfillService) RunProjects(ctx context.Context, docs []SolutionDocument) (*helpers.BatchSummary, error) {
	summary := &helpers.BatchSummary{}
	for i := range docs {
		doc := docs[i]
		summary.Processed++

		if doc.ID == "" {
			summary.AddError(fmt.Sprintf("dokumen #%d", i), fmt.Errorf("_id kosong"))
			continue
		}
		if doc.Deleted || doc.IsDeleted {
			summary.Skipped++
			continue
		}

		m := &model.ProjectModel{
			ProjectId:    doc.ID,
			ProjectName:  doc.Name,
			StartDate:    coerce.ToDate(doc.StartDate),
			EndDate:      coerce.ToDate(doc.EndDate),
			CreatedBy:    doc.CreatedBy,
			TenantId:     doc.TenantID,
			AcademicYear: doc.AcademicYear,
		}
		if sc := doc.Scope; sc != nil {
			m.Board = firstOf(sc.Board)
			m.Medium = firstOf(sc.Medium)
			m.Subject = firstOf(sc.Subject)
			m.Grade = firstOf(sc.Class)
			m.Type = firstOf(sc.CourseType)
		}

		if err := s.projects.UpsertProject(ctx, m); err != nil {
			summary.AddError(doc.ID, err)
			continue
		}
		summary.Inserted++
	}
	log.Printf("[BACKFILL] proyek: %d diproses, %d dilewati, %d gagal",
		summary.Processed, summary.Skipped, summary.Errored)
	return summary, nil
}

// RunTasks menulis task proyek dari dump Projects. Sengaja upsert murni
// (tanpa hapus task lama) — migrasi tidak pernah memegang himpunan
// otoritatif, beda dengan event PROJECT_TASK_UPDATED.
func (s *ProjectBackfillService) RunTasks(ctx context.Context, docs []dto.ProjectSyncEvent) (*helpers.BatchSummary, error) {
	summary := &helpers.BatchSummary{}
	for i := range docs {
		doc := docs[i]
		summary.Processed++

		if doc.SolutionID == "" {
			summary.AddError(fmt.Sprintf("dokumen #%d", i), fmt.Errorf("solutionId kosong"))
			continue
		}
		tasks, err := projectservice.TransformSyncTasks(&doc)
		if err != nil {
			summary.AddError(doc.SolutionID, err)
			continue
		}
		if len(tasks) == 0 {
			summary.Skipped++
			continue
		}
		if err := s.projects.UpsertTasks(ctx, tasks); err != nil {
			summary.AddError(doc.SolutionID, err)
			continue
		}
		summary.Inserted += len(tasks)
	}
	return summary, nil
}

// RunTaskTrackings menulis catatan penyelesaian dari dump Projects.
// Dokumen tanpa entityId tidak bisa dipetakan ke cohort, dan dokumen
// yang proyeknya belum ada di tujuan dilewati (jalankan backfill
// projects lebih dulu).
func (s *ProjectBackfillService) RunTaskTrackings(ctx context.Context, docs []dto.ProjectSyncEvent) (*helpers.BatchSummary, error) {
	summary := &helpers.BatchSummary{}
	for i := range docs {
		doc := docs[i]
		summary.Processed++

		if doc.SolutionID == "" || doc.EntityID == nil || *doc.EntityID == "" {
			summary.Skipped++
			continue
		}

		var count int64
		if err := s.dest.WithContext(ctx).
			Model(&model.ProjectModel{}).
			Where(`"ProjectId" = ?`, doc.SolutionID).
			Count(&count).Error; err != nil {
			summary.AddError(doc.SolutionID, fmt.Errorf("cek Project tujuan: %w", err))
			continue
		}
		if count == 0 {
			log.Printf("[BACKFILL] proyek %s belum ada di tujuan, tracking dilewati", doc.SolutionID)
			summary.Skipped++
			continue
		}

		records, err := projectservice.TransformTaskTrackings(&doc)
		if err != nil {
			summary.AddError(doc.SolutionID, err)
			continue
		}
		sub, err := s.projects.InsertTaskTrackings(ctx, records)
		if err != nil {
			summary.AddError(doc.SolutionID, err)
			continue
		}
		summary.Inserted += sub.Inserted
		summary.Skipped += sub.Skipped
	}
	return summary, nil
}

func firstOf(ss []string) *string {
	if len(ss) == 0 || ss[0] == "" {
		return nil
	}
	return &ss[0]
}

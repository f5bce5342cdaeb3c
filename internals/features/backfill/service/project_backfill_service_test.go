package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shikshasync_backend/internals/features/projects/dto"
)

func TestProjectBackfillRunProjects(t *testing.T) {
	dest, destMock := newMockDB(t)

	destMock.ExpectExec(`INSERT INTO "Project" .*ON CONFLICT \("ProjectId"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	docs := []SolutionDocument{
		{
			ID:   "sol-1",
			Name: sPtr("Proyek Sains"),
			Scope: &SolutionScope{
				Board:  []string{"CBSE"},
				Medium: []string{"English"},
				Class:  []string{"10"},
			},
			StartDate:    json.RawMessage(`{"$date":"2024-06-01T00:00:00.000Z"}`),
			TenantID:     sPtr("tenant-1"),
			AcademicYear: sPtr("ay-1"),
		},
		{ID: "sol-2", Deleted: true},  // ditandai terhapus → lewati
		{Name: sPtr("tanpa _id")},     // _id kosong → gagal
	}

	svc := NewProjectBackfillService(dest)
	summary, err := svc.RunProjects(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Errored)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestProjectBackfillRunTasksUpsertOnly(t *testing.T) {
	dest, destMock := newMockDB(t)

	// jalur migrasi hanya upsert — tidak ada SELECT/DELETE task lama
	destMock.ExpectExec(`INSERT INTO "ProjectTask" .*ON CONFLICT \("ProjectTaskId"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	docs := []dto.ProjectSyncEvent{{
		SolutionID: "sol-1",
		Tasks: []dto.SyncTask{
			{ID: "t1", ReferenceID: sPtr("ref-1"), Name: sPtr("Bab 1")},
			{ID: "t2", ReferenceID: sPtr("ref-2"), Name: sPtr("Bab 2")},
		},
	}}

	svc := NewProjectBackfillService(dest)
	summary, err := svc.RunTasks(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.Inserted)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestProjectBackfillTrackingsSkipMissingProject(t *testing.T) {
	dest, destMock := newMockDB(t)

	destMock.ExpectQuery(`SELECT count\(\*\) FROM "Project" WHERE "ProjectId" = \$1`).
		WithArgs("sol-hilang").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	docs := []dto.ProjectSyncEvent{
		{
			SolutionID: "sol-hilang",
			EntityID:   sPtr("cohort-1"),
			Tasks:      []dto.SyncTask{{ID: "t1", ReferenceID: sPtr("ref-1"), Status: sPtr("completed")}},
		},
		{SolutionID: "sol-2"}, // tanpa entityId → lewati tanpa sentuh DB
	}

	svc := NewProjectBackfillService(dest)
	summary, err := svc.RunTaskTrackings(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Inserted)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

func TestProjectBackfillTrackingsInsert(t *testing.T) {
	dest, destMock := newMockDB(t)

	destMock.ExpectQuery(`SELECT count\(\*\) FROM "Project" WHERE "ProjectId" = \$1`).
		WithArgs("sol-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	destMock.ExpectQuery(`SELECT count\(\*\) FROM "ProjectTaskTracking" WHERE "ProjectId" = \$1 AND "ProjectTaskId" = \$2 AND "CohortId" = \$3`).
		WithArgs("sol-1", "ref-1", "cohort-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	destMock.ExpectExec(`INSERT INTO "ProjectTaskTracking"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	docs := []dto.ProjectSyncEvent{{
		SolutionID: "sol-1",
		EntityID:   sPtr("cohort-1"),
		Tasks: []dto.SyncTask{
			{ID: "t1", ReferenceID: sPtr("ref-1"), Status: sPtr("completed")},
			{ID: "t2", ReferenceID: sPtr("ref-2"), Status: sPtr("started")}, // belum selesai
		},
	}}

	svc := NewProjectBackfillService(dest)
	summary, err := svc.RunTaskTrackings(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Inserted)
	assert.NoError(t, destMock.ExpectationsWereMet())
}

package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shikshasync_backend/internals/features/projects/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

// PROJECT_TASK_UPDATED: batch adalah daftar otoritatif — task lama yang
// tidak ikut terkirim harus ikut terhapus, bukan dibiarkan hidup.
func TestHandleProjectTaskUpdateDeletesMissingTasks(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewProjectService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "ProjectTaskId" FROM "ProjectTask" WHERE "ProjectId" = \$1`).
		WithArgs("sol-1").
		WillReturnRows(sqlmock.NewRows([]string{"ProjectTaskId"}).
			AddRow("ref-1").
			AddRow("ref-hilang"))
	mock.ExpectExec(`DELETE FROM "ProjectTask" WHERE "ProjectId" = \$1 AND "ProjectTaskId" IN \(\$2\)`).
		WithArgs("sol-1", "ref-hilang").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "ProjectTask" .*ON CONFLICT \("ProjectTaskId"\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.HandleProjectTaskUpdate(context.Background(), &dto.ProjectSyncEvent{
		SolutionID: "sol-1",
		Tasks: []dto.SyncTask{
			{ID: "m-1", ReferenceID: strPtr("ref-1"), Name: strPtr("Tetap")},
		},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Dokumen sync memuat progres satu user saja: himpunan ProjectTask tidak
// boleh disentuh — hanya baris tracking untuk task completed yang masuk.
func TestHandleProjectSyncOnlyInsertsTrackings(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewProjectService(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ProjectTaskTracking" WHERE "ProjectId" = \$1 AND "ProjectTaskId" = \$2 AND "CohortId" = \$3`).
		WithArgs("sol-1", "ref-1", "cohort-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "ProjectTaskTracking"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	summary, err := svc.HandleProjectSync(context.Background(), &dto.ProjectSyncEvent{
		SolutionID: "sol-1",
		EntityID:   strPtr("cohort-1"),
		Tasks: []dto.SyncTask{
			{ID: "m-1", ReferenceID: strPtr("ref-1"), Status: strPtr("completed")},
			// task yang hilang dari dokumen user lain TIDAK memicu delete
			{ID: "m-2", ReferenceID: strPtr("ref-2"), Status: strPtr("started")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	// tidak ada SELECT/DELETE/INSERT ke "ProjectTask" yang diharapkan;
	// ekspektasi mock di atas harus pas persis
	assert.NoError(t, mock.ExpectationsWereMet())
}

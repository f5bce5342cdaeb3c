package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shikshasync_backend/internals/features/attendance/dto"
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

func strPtr(s string) *string { return &s }

func TestTransformAttendanceDayColumn(t *testing.T) {
	svc := NewAttendanceService(nil)

	m, dayCol, _, err := svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-05T09:00:00.000Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "day05", dayCol)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, 3, m.Month)

	_, dayCol, _, err = svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "day31", dayCol)
}

func TestTransformAttendanceFixedAttrsWin(t *testing.T) {
	svc := NewAttendanceService(nil)

	_, _, payload, err := svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-05",
		Attendance:     strPtr("present"),
		Remark:         strPtr("ontime"),
		MetaData: map[string]any{
			"attendance": "dipalsukan", // kunci bentrok harus kalah
			"device":     "mobile",
		},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "present", decoded["attendance"])
	assert.Equal(t, "ontime", decoded["remark"])
	assert.Equal(t, "mobile", decoded["device"])
}

func TestTransformAttendanceContextFallback(t *testing.T) {
	svc := NewAttendanceService(nil)

	m, _, _, err := svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-05",
		CohortID:       strPtr("cohort-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, m.ContextID)
	assert.Equal(t, "cohort-1", *m.ContextID)

	m, _, _, err = svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-05",
		ContextID:      strPtr("ctx-1"),
		CohortID:       strPtr("cohort-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, m.ContextID)
	assert.Equal(t, "ctx-1", *m.ContextID)
}

func TestTransformAttendanceInvalid(t *testing.T) {
	svc := NewAttendanceService(nil)

	_, _, _, err := svc.TransformAttendance(&dto.AttendanceEvent{
		AttendanceDate: "2024-03-05",
	})
	assert.Error(t, err)

	_, _, _, err = svc.TransformAttendance(&dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "kemarin sore",
	})
	assert.Error(t, err)
}

func TestUpsertExistingRowUpdated(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAttendanceService(gdb)

	mock.ExpectExec(`UPDATE "AttendanceTracker" SET "day05"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	action, err := svc.Upsert(context.Background(), &dto.AttendanceEvent{
		UserID:         "u1",
		AttendanceDate: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMissingRowInserted(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAttendanceService(gdb)

	mock.ExpectExec(`UPDATE "AttendanceTracker" SET "day05"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "AttendanceTracker"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	action, err := svc.Upsert(context.Background(), &dto.AttendanceEvent{
		UserID:         "u1",
		TenantID:       strPtr("t1"),
		AttendanceDate: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

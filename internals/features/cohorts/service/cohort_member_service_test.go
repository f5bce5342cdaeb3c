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

	"shikshasync_backend/internals/features/cohorts/model"
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

func TestToArrayLiteral(t *testing.T) {
	assert.Equal(t, `{"math"}`, toArrayLiteral([]string{"math"}))
	assert.Equal(t, `{"a","b"}`, toArrayLiteral([]string{"a", "b"}))
	assert.Equal(t, `{"he said \"hi\""}`, toArrayLiteral([]string{`he said "hi"`}))
	assert.Equal(t, `{}`, toArrayLiteral(nil))
}

func TestUpsertMemberNoChange(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, nil)

	mock.ExpectQuery(`SELECT \* FROM "CohortMember" WHERE "UserID" = \$1 AND "CohortID" = \$2`).
		WithArgs("u1", "c1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"CohortMemberID", "UserID", "CohortID", "MemberStatus"}).
			AddRow("m1", "u1", "c1", "active"))

	action, err := svc.UpsertMember(context.Background(), &model.CohortMemberModel{
		CohortMemberID: "m1",
		UserID:         "u1",
		CohortID:       "c1",
		MemberStatus:   "active",
	})
	require.NoError(t, err)
	assert.Equal(t, "no_change", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMemberStatusChanged(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, nil)

	mock.ExpectQuery(`SELECT \* FROM "CohortMember" WHERE "UserID" = \$1 AND "CohortID" = \$2`).
		WithArgs("u1", "c1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"CohortMemberID", "UserID", "CohortID", "MemberStatus"}).
			AddRow("m1", "u1", "c1", "active"))
	mock.ExpectExec(`UPDATE "CohortMember" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	action, err := svc.UpsertMember(context.Background(), &model.CohortMemberModel{
		CohortMemberID: "m1",
		UserID:         "u1",
		CohortID:       "c1",
		MemberStatus:   "archived",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMemberCreated(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, nil)

	mock.ExpectQuery(`SELECT \* FROM "CohortMember" WHERE "UserID" = \$1 AND "CohortID" = \$2`).
		WithArgs("u2", "c1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"CohortMemberID"}))
	mock.ExpectExec(`INSERT INTO "CohortMember"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	action, err := svc.UpsertMember(context.Background(), &model.CohortMemberModel{
		CohortMemberID: "m2",
		UserID:         "u2",
		CohortID:       "c1",
		MemberStatus:   "active",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMemberFieldsAllowListAndArrays(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, &ColumnTypeSnapshot{
		IsArray: map[string]bool{"Subject": true},
	})

	subject := "math"
	board := "CBSE"
	ignored := "hacker"

	// kolom tersortir: Board dulu, Subject belakangan; Subject dibungkus array
	mock.ExpectExec(`UPDATE "CohortMember" SET "Board" = \$1, "Subject" = \$2 WHERE "CohortMemberID"::text = \$3`).
		WithArgs("CBSE", `{"math"}`, "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.UpdateMemberFields(context.Background(), "m1", map[string]*string{
		"Subject":   &subject,
		"Board":     &board,
		"CreatedAt": &ignored, // di luar allow-list, harus dibuang
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMemberFieldsNothingAllowed(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, nil)

	v := "x"
	err := svc.UpdateMemberFields(context.Background(), "m1", map[string]*string{
		"UserID": &v,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMemberFromUserEventDefaults(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortMemberService(gdb, nil)

	mock.ExpectQuery(`SELECT \* FROM "CohortMember" WHERE "UserID" = \$1 AND "CohortID" = \$2`).
		WithArgs("u1", "c1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"CohortMemberID"}))
	mock.ExpectExec(`INSERT INTO "CohortMember"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// memberID kosong → digenerate; status kosong → active
	blank := "  "
	action, err := svc.UpsertMemberFromUserEvent(context.Background(), "u1", "c1", "", &blank, nil)
	require.NoError(t, err)
	assert.Equal(t, "created", action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

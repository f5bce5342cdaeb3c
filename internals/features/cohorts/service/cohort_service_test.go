package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shikshasync_backend/internals/constants"
	"shikshasync_backend/internals/features/cohorts/dto"
	"shikshasync_backend/internals/helpers/customfield"
)

func strPtr(s string) *string { return &s }

func cohortTextField(fieldID, value string) customfield.CustomField {
	return customfield.CustomField{
		FieldID:        fieldID,
		SelectedValues: []customfield.SelectedValue{{Text: &value}},
	}
}

func TestTransformCohortParent(t *testing.T) {
	svc := NewCohortService(nil)

	ev := &dto.CohortEvent{
		CohortID: "8df838bc-3d40-49cf-bfd9-e800f1c6a02e",
		TenantID: strPtr("t1"),
		Name:     strPtr("Pusat A"),
		CustomFields: []customfield.CustomField{
			cohortTextField(constants.TypeOfCenterFieldID, "regular"),
			cohortTextField("f93c0ac3-f827-4794-9457-441fa1057b42", "  CBSE "),
			cohortTextField("62340eaa-40fb-48b9-ba90-dcaa78be778e", "560 - Bengaluru Urban"),
			cohortTextField("fieldid-tidak-terdaftar", "dibuang"),
		},
	}

	m, updates, err := svc.TransformCohort(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, ev.CohortID, m.CohortID)
	assert.Nil(t, m.ParentID)

	assert.Equal(t, "regularCenter", updates["Type"])
	assert.Equal(t, "CBSE", updates["CoBoard"])
	// kolom lokasi menyimpan kode numerik, bukan label
	assert.Equal(t, 560, updates["CoDistrictID"])
	assert.NotContains(t, updates, "dibuang")
	assert.Len(t, updates, 3)
}

func TestTransformCohortChildSynthesizesBatchType(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCohortService(gdb)

	parentID := "11111111-2222-4333-8444-555555555555"
	mock.ExpectQuery(`SELECT "Type" FROM "Cohort" WHERE "CohortID" = \$1`).
		WithArgs(parentID).
		WillReturnRows(sqlmock.NewRows([]string{"Type"}).AddRow("regularCenter"))

	// anak tanpa field tipe sama sekali
	ev := &dto.CohortEvent{
		CohortID: "8df838bc-3d40-49cf-bfd9-e800f1c6a02e",
		ParentID: &parentID,
	}

	m, updates, err := svc.TransformCohort(context.Background(), ev)
	require.NoError(t, err)
	require.NotNil(t, m.ParentID)
	assert.Equal(t, "regularBatch", updates["Type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransformCohortIgnoresNonUUIDParent(t *testing.T) {
	svc := NewCohortService(nil)

	ev := &dto.CohortEvent{
		CohortID: "8df838bc-3d40-49cf-bfd9-e800f1c6a02e",
		ParentID: strPtr("bukan-uuid"),
	}
	m, _, err := svc.TransformCohort(context.Background(), ev)
	require.NoError(t, err)
	assert.Nil(t, m.ParentID)

	_, _, err = svc.TransformCohort(context.Background(), &dto.CohortEvent{})
	assert.Error(t, err)
}

func TestResolveLocationCode(t *testing.T) {
	code := resolveLocationCode("560 - Bengaluru Urban")
	require.NotNil(t, code)
	assert.Equal(t, 560, *code)

	// UUID master dikenal → kode dari tabel statis
	code = resolveLocationCode("cc737326-7d1f-4f4e-88cf-39f48df2c280")
	require.NotNil(t, code)
	assert.Equal(t, 24, *code)

	// UUID tidak dikenal → nil, jangan simpan angka acak dari UUID
	assert.Nil(t, resolveLocationCode("8df838bc-3d40-49cf-bfd9-e800f1c6a02e"))
	assert.Nil(t, resolveLocationCode("tanpa angka"))
}

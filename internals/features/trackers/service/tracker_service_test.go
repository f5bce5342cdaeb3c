package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shikshasync_backend/internals/features/trackers/dto"
)

func strPtr(s string) *string { return &s }

func TestTransformAssessment(t *testing.T) {
	summary := json.RawMessage(`[{"sectionId":"s1"}]`)
	score := 80.0

	m, err := TransformAssessment(&dto.AssessmentEvent{
		AssessmentTrackingID: "at-1",
		ContentID:            strPtr("content-1"),
		CourseID:             strPtr("course-1"),
		TotalScore:           &score,
		TimeSpent:            json.Number("1200.5"),
		AssessmentSummary:    summary,
	})
	require.NoError(t, err)
	assert.Equal(t, "at-1", m.AssessTrackingId)
	require.NotNil(t, m.AssessmentId)
	assert.Equal(t, "content-1", *m.AssessmentId)
	require.NotNil(t, m.TimeSpent)
	assert.Equal(t, 1200.5, *m.TimeSpent)
	assert.JSONEq(t, string(summary), string(m.AssessmentSummary))
}

func TestTransformAssessmentCourseFallback(t *testing.T) {
	// contentId kosong → assessmentId jatuh ke courseId
	m, err := TransformAssessment(&dto.AssessmentEvent{
		AssessmentTrackingID: "at-1",
		ContentID:            strPtr("   "),
		CourseID:             strPtr("course-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, m.AssessmentId)
	assert.Equal(t, "course-1", *m.AssessmentId)

	m, err = TransformAssessment(&dto.AssessmentEvent{
		AssessmentTrackingID: "at-2",
	})
	require.NoError(t, err)
	assert.Nil(t, m.AssessmentId)
	assert.Nil(t, m.TimeSpent)

	_, err = TransformAssessment(&dto.AssessmentEvent{AssessmentTrackingID: "  "})
	assert.Error(t, err)
}

func TestTransformContentStatus(t *testing.T) {
	base := dto.ContentTrackingEvent{
		ContentTrackingID: "ct-1",
		UserID:            "u1",
		ContentID:         "c1",
	}

	// END di mana pun → completed, START belakangan tidak menurunkan
	ev := base
	ev.Details = []dto.ContentDetail{
		{EID: "START", Duration: 10},
		{EID: "end", Duration: 20.6},
		{EID: "START", Duration: 5},
	}
	m, err := TransformContent(&ev)
	require.NoError(t, err)
	require.NotNil(t, m.ContentTrackingStatus)
	assert.Equal(t, "completed", *m.ContentTrackingStatus)
	require.NotNil(t, m.TimeSpent)
	assert.Equal(t, 35, *m.TimeSpent) // 35.6 dibulatkan ke bawah

	// hanya START → started
	ev = base
	ev.Details = []dto.ContentDetail{{EID: "START", Duration: 7}}
	m, err = TransformContent(&ev)
	require.NoError(t, err)
	assert.Equal(t, "started", *m.ContentTrackingStatus)

	// tanpa START/END → inprogress
	ev = base
	ev.Details = []dto.ContentDetail{{EID: "IMPRESSION", Duration: 3}}
	m, err = TransformContent(&ev)
	require.NoError(t, err)
	assert.Equal(t, "inprogress", *m.ContentTrackingStatus)

	// tanpa details sama sekali → inprogress, timeSpent 0
	ev = base
	m, err = TransformContent(&ev)
	require.NoError(t, err)
	assert.Equal(t, "inprogress", *m.ContentTrackingStatus)
	assert.Equal(t, 0, *m.TimeSpent)
}

func TestTransformContentRequiredFields(t *testing.T) {
	_, err := TransformContent(&dto.ContentTrackingEvent{UserID: "u1", ContentID: "c1"})
	assert.Error(t, err)

	_, err = TransformContent(&dto.ContentTrackingEvent{ContentTrackingID: "ct-1", ContentID: "c1"})
	assert.Error(t, err)
}

func TestTransformCourse(t *testing.T) {
	m, err := TransformCourse(&dto.CourseEnrollmentEvent{
		UserID:      "u1",
		CourseID:    "course-1",
		TenantID:    strPtr("t1"),
		CourseName:  strPtr("Aljabar Dasar"),
		Status:      strPtr("enrolled"),
		CreatedOn:   strPtr("2024-02-01T00:00:00Z"),
		CompletedOn: strPtr("2024-05-01T00:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", m.UserId)
	assert.Equal(t, "course-1", m.CourseId)
	require.NotNil(t, m.CourseTrackingStart)
	assert.Equal(t, 2024, m.CourseTrackingStart.Year())
	require.NotNil(t, m.CourseTrackingEnd)

	_, err = TransformCourse(&dto.CourseEnrollmentEvent{CourseID: "course-1"})
	assert.Error(t, err)
}

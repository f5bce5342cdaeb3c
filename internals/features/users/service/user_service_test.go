package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shikshasync_backend/internals/constants"
	"shikshasync_backend/internals/features/users/dto"
	"shikshasync_backend/internals/helpers/customfield"
)

func strPtr(s string) *string { return &s }

func textField(fieldID, label, value string) customfield.CustomField {
	return customfield.CustomField{
		FieldID:        fieldID,
		Label:          label,
		SelectedValues: []customfield.SelectedValue{{Text: &value}},
	}
}

func refField(fieldID, label, id, value string) customfield.CustomField {
	return customfield.CustomField{
		FieldID: fieldID,
		Label:   label,
		SelectedValues: []customfield.SelectedValue{
			{Ref: &customfield.RefValue{ID: id, Value: value}},
		},
	}
}

func TestUserEventFullName(t *testing.T) {
	ev := &dto.UserEvent{
		FirstName:  strPtr("Asha"),
		MiddleName: strPtr("  "),
		LastName:   strPtr("Kumari"),
	}
	got := ev.FullName()
	require.NotNil(t, got)
	assert.Equal(t, "Asha Kumari", *got)

	assert.Nil(t, (&dto.UserEvent{}).FullName())
}

func TestUserEventMobileString(t *testing.T) {
	ev := &dto.UserEvent{}
	require.NoError(t, json.Unmarshal([]byte(`{"userId":"u1","mobile":9876543210}`), ev))
	got := ev.MobileString()
	require.NotNil(t, got)
	assert.Equal(t, "9876543210", *got)

	ev = &dto.UserEvent{}
	require.NoError(t, json.Unmarshal([]byte(`{"userId":"u1","mobile":"081234"}`), ev))
	got = ev.MobileString()
	require.NotNil(t, got)
	assert.Equal(t, "081234", *got)

	assert.Nil(t, (&dto.UserEvent{}).MobileString())
}

func TestTransformUser(t *testing.T) {
	svc := NewUserService(nil)

	ev := &dto.UserEvent{
		UserID:    "u1",
		Username:  strPtr("asha"),
		FirstName: strPtr("Asha"),
		LastName:  strPtr("Kumari"),
		Status:    strPtr("active"),
		CreatedAt: strPtr("2024-01-10T00:00:00Z"),
		CustomFields: []customfield.CustomField{
			// label → bentuk objek hanya id yang dipakai
			refField("f-state", constants.UserStateLabel, "29", "Karnataka"),
			// fieldId → value dulu
			refField(constants.UserERPUserIDFieldID, "ERP", "id-1", "ERP-99"),
			textField(constants.UserIsManagerFieldID, "IS MANAGER", "Yes"),
			textField(constants.UserGenderFieldID, "GENDER", "female"),
		},
	}

	m, err := svc.TransformUser(ev)
	require.NoError(t, err)
	assert.Equal(t, "u1", m.UserID)
	require.NotNil(t, m.FullName)
	assert.Equal(t, "Asha Kumari", *m.FullName)

	require.NotNil(t, m.IsActive)
	assert.True(t, *m.IsActive)

	require.NotNil(t, m.StateID)
	assert.Equal(t, "29", *m.StateID)

	require.NotNil(t, m.ERPUserID)
	assert.Equal(t, "ERP-99", *m.ERPUserID)

	require.NotNil(t, m.IsManager)
	assert.True(t, *m.IsManager)

	require.NotNil(t, m.GenderField)
	assert.Equal(t, "female", *m.GenderField)

	require.NotNil(t, m.CreatedAt)
	assert.Equal(t, 2024, m.CreatedAt.Year())

	// field yang tidak ada di event tetap nil
	assert.Nil(t, m.DistrictID)
	assert.Nil(t, m.TeacherID)
}

func TestTransformUserRequiresUserID(t *testing.T) {
	svc := NewUserService(nil)
	_, err := svc.TransformUser(&dto.UserEvent{})
	assert.Error(t, err)
}

func TestTransformRegistrations(t *testing.T) {
	svc := NewRegistrationService(nil)

	tenantData := []dto.TenantData{
		{
			TenantID: "t1",
			Roles: []dto.TenantRole{
				{RoleID: "r1"},
				{RoleID: "r2", Reason: strPtr("alasan role")},
			},
		},
		{
			TenantID: "t2",
			Reason:   strPtr("alasan tenant"),
			Roles:    []dto.TenantRole{{RoleID: "r1"}},
		},
		{TenantID: "t3"}, // tanpa role → tidak menghasilkan baris
	}

	got := svc.TransformRegistrations("u1", strPtr("2024-01-10T00:00:00Z"), strPtr("alasan event"), tenantData)
	require.Len(t, got, 3)

	for _, r := range got {
		assert.Equal(t, "u1", r.UserID)
		assert.True(t, r.IsActive)
		require.NotNil(t, r.PlatformRegnDate)
		assert.Equal(t, 2024, r.PlatformRegnDate.Year())
	}

	// precedence alasan: tenant > role > event
	require.NotNil(t, got[0].Reason)
	assert.Equal(t, "alasan event", *got[0].Reason)
	require.NotNil(t, got[1].Reason)
	assert.Equal(t, "alasan role", *got[1].Reason)
	require.NotNil(t, got[2].Reason)
	assert.Equal(t, "alasan tenant", *got[2].Reason)
}

func TestTransformRegistrationsDateFallback(t *testing.T) {
	svc := NewRegistrationService(nil)

	before := time.Now().UTC()
	got := svc.TransformRegistrations("u1", nil, nil, []dto.TenantData{
		{TenantID: "t1", Roles: []dto.TenantRole{{RoleID: "r1"}}},
	})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].TenantRegnDate)
	assert.False(t, got[0].TenantRegnDate.Before(before.Add(-time.Second)))
	assert.Nil(t, got[0].Reason)
}

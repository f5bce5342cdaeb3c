package dto

// =========================
// Event masuk (family attendance)
// =========================

// AttendanceEvent: payload ATTENDANCE_CREATED / ATTENDANCE_UPDATED /
// ATTENDANCE_DELETED. MetaData ikut digabung ke payload harian, tapi
// atribut tetap (scope, remark, dst) selalu menang.
type AttendanceEvent struct {
	AttendanceID   *string `json:"attendanceId,omitempty"`
	UserID         string  `json:"userId" validate:"required"`
	TenantID       *string `json:"tenantId,omitempty"`
	Context        *string `json:"context,omitempty"`
	ContextID      *string `json:"contextId,omitempty"`
	CohortID       *string `json:"cohortId,omitempty"`
	AttendanceDate string  `json:"attendanceDate" validate:"required"`
	Attendance     *string `json:"attendance,omitempty"`
	Scope          *string `json:"scope,omitempty"`
	Remark         *string `json:"remark,omitempty"`
	LateMark       *string `json:"lateMark,omitempty"`
	AbsentReason   *string `json:"absentReason,omitempty"`
	ValidLocation  *bool   `json:"validLocation,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`

	MetaData map[string]any `json:"metaData,omitempty"`
}

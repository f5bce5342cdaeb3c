package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/attendance/dto"
	"shikshasync_backend/internals/features/attendance/model"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

/* =========================================
   Transform: satu event → satu kolom hari
   ========================================= */

// DayPayload: isi JSON satu kolom hari.
type DayPayload map[string]any

// TransformAttendance memecah tanggal kehadiran (kalender UTC) jadi
// Year/Month + nama kolom hari, lalu merakit payload harian. metaData
// digabung lebih dulu; atribut tetap ditulis belakangan supaya selalu
// menang kalau kuncinya bentrok.
func (s *AttendanceService) TransformAttendance(ev *dto.AttendanceEvent) (*model.AttendanceTrackerModel, string, datatypes.JSON, error) {
	if ev.UserID == "" {
		return nil, "", nil, fmt.Errorf("userId kosong")
	}
	date := coerce.ToDate(ev.AttendanceDate)
	if date == nil {
		return nil, "", nil, fmt.Errorf("attendanceDate tidak valid: %q", ev.AttendanceDate)
	}

	utc := date.UTC()
	year, month, day := utc.Year(), int(utc.Month()), utc.Day()
	dayColumn := model.DayColumn(day)

	payload := DayPayload{}
	for k, v := range ev.MetaData {
		payload[k] = v
	}
	payload["scope"] = ev.Scope
	payload["remark"] = ev.Remark
	payload["lateMark"] = ev.LateMark
	payload["latitude"] = ev.Latitude
	payload["longitude"] = ev.Longitude
	payload["attendance"] = ev.Attendance
	payload["absentReason"] = ev.AbsentReason
	payload["validLocation"] = ev.ValidLocation

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, "", nil, fmt.Errorf("marshal payload harian: %w", err)
	}

	contextID := ev.ContextID
	if contextID == nil {
		contextID = ev.CohortID
	}

	m := &model.AttendanceTrackerModel{
		TenantID:  ev.TenantID,
		Context:   ev.Context,
		ContextID: contextID,
		UserID:    ev.UserID,
		Year:      year,
		Month:     month,
	}
	return m, dayColumn, datatypes.JSON(raw), nil
}

/* =========================================
   Reconcile: update-dulu-baru-insert
   ========================================= */

// Upsert menulis tepat satu kolom hari. Baris (TenantID, UserID, Year,
// Month, ContextID) sudah ada → UPDATE kolom harinya saja; belum ada →
// INSERT baris baru. Insert yang kalah balapan unique diulang sebagai
// update.
func (s *AttendanceService) Upsert(ctx context.Context, ev *dto.AttendanceEvent) (string, error) {
	m, dayColumn, payload, err := s.TransformAttendance(ev)
	if err != nil {
		return "", err
	}
	if !model.DayColumns[dayColumn] {
		return "", fmt.Errorf("kolom hari %q di luar day01..day31", dayColumn)
	}

	update := func() (int64, error) {
		q := s.db.WithContext(ctx).
			Model(&model.AttendanceTrackerModel{}).
			Where(`"UserID" = ? AND "Year" = ? AND "Month" = ?`, m.UserID, m.Year, m.Month)
		if m.TenantID != nil {
			q = q.Where(`"TenantID" = ?`, *m.TenantID)
		}
		if m.ContextID != nil {
			q = q.Where(`"ContextID" = ?`, *m.ContextID)
		}
		res := q.Update(dayColumn, payload)
		return res.RowsAffected, res.Error
	}

	affected, err := update()
	if err != nil {
		return "", fmt.Errorf("update AttendanceTracker %s: %w", m.UserID, err)
	}
	if affected > 0 {
		return "updated", nil
	}

	row := map[string]any{
		"TenantID":  m.TenantID,
		"Context":   m.Context,
		"ContextID": m.ContextID,
		"UserID":    m.UserID,
		"Year":      m.Year,
		"Month":     m.Month,
		dayColumn:   payload,
	}
	if err := s.db.WithContext(ctx).
		Model(&model.AttendanceTrackerModel{}).
		Create(row).Error; err != nil {
		if helpers.IsDuplicateKey(err) {
			if _, retryErr := update(); retryErr != nil {
				return "", retryErr
			}
			return "updated", nil
		}
		return "", fmt.Errorf("insert AttendanceTracker %s: %w", m.UserID, err)
	}

	log.Printf("[ATND] baris baru | user=%s %d-%02d kolom=%s", m.UserID, m.Year, m.Month, dayColumn)
	return "created", nil
}

// Delete menghapus baris kehadiran milik natural key event.
func (s *AttendanceService) Delete(ctx context.Context, ev *dto.AttendanceEvent) error {
	m, _, _, err := s.TransformAttendance(ev)
	if err != nil {
		return err
	}
	q := s.db.WithContext(ctx).
		Where(`"UserID" = ? AND "Year" = ? AND "Month" = ?`, m.UserID, m.Year, m.Month)
	if m.TenantID != nil {
		q = q.Where(`"TenantID" = ?`, *m.TenantID)
	}
	if m.ContextID != nil {
		q = q.Where(`"ContextID" = ?`, *m.ContextID)
	}
	return q.Delete(&model.AttendanceTrackerModel{}).Error
}

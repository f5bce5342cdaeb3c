package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"shikshasync_backend/internals/features/users/dto"
	"shikshasync_backend/internals/features/users/model"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
)

// RegistrationService mengelola RegistrationTracker: satu baris per
// kombinasi (UserID, RoleID, TenantID).
type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// TransformRegistrations merakit baris tracker dari tenantData event:
// satu baris per (tenant, role). Tanggal registrasi platform & tenant
// sama-sama diambil dari createdAt user (registrasi baru).
func (s *RegistrationService) TransformRegistrations(userID string, createdAt *string, reason *string, tenantData []dto.TenantData) []model.RegistrationTrackerModel {
	regnDate := time.Now().UTC()
	if parsed := coerce.ToDate(derefAny(createdAt)); parsed != nil {
		regnDate = *parsed
	}

	var trackers []model.RegistrationTrackerModel
	for _, tenant := range tenantData {
		for _, role := range tenant.Roles {
			trackers = append(trackers, model.RegistrationTrackerModel{
				UserID:           userID,
				RoleID:           role.RoleID,
				TenantID:         tenant.TenantID,
				PlatformRegnDate: &regnDate,
				TenantRegnDate:   &regnDate,
				IsActive:         true,
				Reason:           firstNonNil(tenant.Reason, role.Reason, reason),
			})
		}
	}
	return trackers
}

// UpsertRegistration: update-dulu-baru-insert pada (UserID, RoleID,
// TenantID). Hanya tanggal, flag aktif, dan alasan yang di-update.
func (s *RegistrationService) UpsertRegistration(ctx context.Context, m *model.RegistrationTrackerModel) (string, error) {
	res := s.db.WithContext(ctx).
		Model(&model.RegistrationTrackerModel{}).
		Where(`"UserID" = ? AND "RoleID" = ? AND "TenantID" = ?`, m.UserID, m.RoleID, m.TenantID).
		Updates(map[string]any{
			"PlatformRegnDate": m.PlatformRegnDate,
			"TenantRegnDate":   m.TenantRegnDate,
			"IsActive":         m.IsActive,
			"Reason":           m.Reason,
		})
	if res.Error != nil {
		return "", fmt.Errorf("update RegistrationTracker (%s, %s, %s): %w", m.UserID, m.RoleID, m.TenantID, res.Error)
	}
	if res.RowsAffected > 0 {
		return "updated", nil
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if helpers.IsDuplicateKey(err) {
			retry := s.db.WithContext(ctx).
				Model(&model.RegistrationTrackerModel{}).
				Where(`"UserID" = ? AND "RoleID" = ? AND "TenantID" = ?`, m.UserID, m.RoleID, m.TenantID).
				Updates(map[string]any{
					"TenantRegnDate": m.TenantRegnDate,
					"IsActive":       m.IsActive,
					"Reason":         m.Reason,
				})
			if retry.Error != nil {
				return "", retry.Error
			}
			return "updated", nil
		}
		return "", fmt.Errorf("insert RegistrationTracker (%s, %s, %s): %w", m.UserID, m.RoleID, m.TenantID, err)
	}
	return "created", nil
}

// UpdateTenantStatus: jalur tanpa roleId — update semua baris milik
// (UserID, TenantID). Tidak ada baris → tidak bisa insert (roleId wajib).
func (s *RegistrationService) UpdateTenantStatus(ctx context.Context, userID, tenantID string, isActive bool, tenantRegnDate *time.Time, reason *string) error {
	updates := map[string]any{
		"IsActive": isActive,
		"Reason":   reason,
	}
	if tenantRegnDate != nil {
		updates["TenantRegnDate"] = tenantRegnDate
	}

	res := s.db.WithContext(ctx).
		Model(&model.RegistrationTrackerModel{}).
		Where(`"UserID" = ? AND "TenantID" = ?`, userID, tenantID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("tidak bisa membuat RegistrationTracker tanpa roleId dan tidak ada baris untuk di-update")
	}
	log.Printf("[REGISTRATION] status tenant ter-update | user=%s tenant=%s baris=%d", userID, tenantID, res.RowsAffected)
	return nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"shikshasync_backend/internals/features/users/model"
	userservice "shikshasync_backend/internals/features/users/service"
	"shikshasync_backend/internals/helpers"
)

/* =========================================
   Backfill RegistrationTracker
   ========================================= */

// RegistrationBackfillService menggabungkan UserTenantMapping dengan
// UserRolesMapping di sumber menjadi baris (UserID, RoleID, TenantID) di
// tujuan.
type RegistrationBackfillService struct {
	source        *gorm.DB
	registrations *userservice.RegistrationService
}

func NewRegistrationBackfillService(source, dest *gorm.DB) *RegistrationBackfillService {
	return &RegistrationBackfillService{
		source:        source,
		registrations: userservice.NewRegistrationService(dest),
	}
}

type sourceRegistrationRow struct {
	UserID           string     `gorm:"column:userId"`
	TenantID         string     `gorm:"column:tenantId"`
	RoleID           string     `gorm:"column:roleId"`
	TenantRegnDate   *time.Time `gorm:"column:tenant_regn_date"`
	RoleAssignedDate *time.Time `gorm:"column:role_assigned_date"`
}

const sourceRegistrationQuery = `
SELECT
  utm."userId", utm."tenantId", utm."createdAt" AS tenant_regn_date,
  urm."roleId", urm."createdAt" AS role_assigned_date
FROM public."UserTenantMapping" utm
INNER JOIN public."UserRolesMapping" urm
  ON utm."userId" = urm."userId" AND utm."tenantId" = urm."tenantId"
WHERE utm."userId" IS NOT NULL
  AND utm."tenantId" IS NOT NULL
  AND urm."roleId" IS NOT NULL`

func (s *RegistrationBackfillService) Run(ctx context.Context) (*helpers.BatchSummary, error) {
	var rows []sourceRegistrationRow
	if err := s.source.WithContext(ctx).Raw(sourceRegistrationQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca mapping registrasi sumber: %w", err)
	}
	log.Printf("[REGISTRATION] %d baris registrasi ditemukan di sumber", len(rows))

	summary := &helpers.BatchSummary{}
	for _, row := range rows {
		summary.Processed++
		if row.UserID == "" || row.RoleID == "" || row.TenantID == "" {
			summary.Skipped++
			continue
		}

		// tanggal tenant dipakai sebagai tanggal platform; jatuh ke tanggal
		// penetapan role kalau kosong
		platformDate := row.TenantRegnDate
		if platformDate == nil {
			platformDate = row.RoleAssignedDate
		}

		m := &model.RegistrationTrackerModel{
			UserID:           row.UserID,
			RoleID:           row.RoleID,
			TenantID:         row.TenantID,
			PlatformRegnDate: platformDate,
			TenantRegnDate:   row.TenantRegnDate,
			IsActive:         true,
		}
		res, err := s.registrations.UpsertRegistration(ctx, m)
		if err != nil {
			summary.AddError(row.UserID, err)
			continue
		}
		if res == "created" {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}

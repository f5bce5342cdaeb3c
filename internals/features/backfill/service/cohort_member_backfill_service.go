package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"shikshasync_backend/internals/constants"
	"shikshasync_backend/internals/features/cohorts/model"
	cohortservice "shikshasync_backend/internals/features/cohorts/service"
	"shikshasync_backend/internals/helpers"
)

/* =========================================
   Backfill CohortMember: sumber → tujuan
   ========================================= */

// CohortMemberBackfillService membaca CohortMembers sumber (plus tahun
// ajaran dan field Slot dari FieldValues) dan menulis ulang lewat upsert
// keanggotaan ber-kunci CohortMemberID.
type CohortMemberBackfillService struct {
	source  *gorm.DB
	members *cohortservice.CohortMemberService
}

func NewCohortMemberBackfillService(source, dest *gorm.DB) *CohortMemberBackfillService {
	return &CohortMemberBackfillService{
		source:  source,
		members: cohortservice.NewCohortMemberService(dest, nil),
	}
}

type sourceMemberRow struct {
	CohortMembershipID string  `gorm:"column:cohortMembershipId"`
	CohortID           *string `gorm:"column:cohortId"`
	UserID             *string `gorm:"column:userId"`
	Status             *string `gorm:"column:status"`
	AcademicYearID     *string `gorm:"column:academicYearId"`
}

const sourceMemberQuery = `
SELECT
  cm."cohortMembershipId", cm."cohortId", cm."userId", cm.status,
  cay."academicYearId"
FROM public."CohortMembers" cm
LEFT JOIN public."CohortAcademicYear" cay
  ON cm."cohortAcademicYearId" = cay."cohortAcademicYearId"`

func (s *CohortMemberBackfillService) Run(ctx context.Context) (*helpers.BatchSummary, error) {
	var rows []sourceMemberRow
	if err := s.source.WithContext(ctx).Raw(sourceMemberQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca CohortMembers sumber: %w", err)
	}
	log.Printf("[BACKFILL] %d baris keanggotaan ditemukan di sumber", len(rows))

	summary := &helpers.BatchSummary{}
	for i := range rows {
		summary.Processed++
		if err := s.backfillOne(ctx, rows[i]); err != nil {
			summary.AddError(rows[i].CohortMembershipID, err)
			continue
		}
		summary.Inserted++
	}
	return summary, nil
}

func (s *CohortMemberBackfillService) backfillOne(ctx context.Context, row sourceMemberRow) error {
	if row.CohortMembershipID == "" || row.CohortID == nil || row.UserID == nil {
		return fmt.Errorf("kunci keanggotaan tidak lengkap")
	}

	m := &model.CohortMemberModel{
		CohortMemberID: row.CohortMembershipID,
		CohortID:       *row.CohortID,
		UserID:         *row.UserID,
		AcademicYearID: row.AcademicYearID,
		Slot:           s.lookupSlot(ctx, row.CohortMembershipID),
	}
	if row.Status != nil && strings.TrimSpace(*row.Status) != "" {
		m.MemberStatus = strings.TrimSpace(*row.Status)
	}
	return s.members.UpsertMemberRow(ctx, m)
}

// lookupSlot membaca field SLOTS milik keanggotaan dari FieldValues.
// Gagal baca tidak menghentikan migrasi — slot dibiarkan kosong.
func (s *CohortMemberBackfillService) lookupSlot(ctx context.Context, membershipID string) *string {
	var raw *string
	err := s.source.WithContext(ctx).
		Raw(`SELECT fv.value::text FROM public."FieldValues" fv WHERE fv."itemId" = ? AND fv."fieldId" = ?`,
			membershipID, constants.CohortMemberSlotFieldID).
		Scan(&raw).Error
	if err != nil {
		log.Printf("[BACKFILL] gagal baca slot keanggotaan %s: %v", membershipID, err)
		return nil
	}
	if raw == nil {
		return nil
	}
	slot := FirstFromArrayLiteral(*raw)
	if slot == "" {
		return nil
	}
	return &slot
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shikshasync_backend/internals/features/cohorts/dto"
	"shikshasync_backend/internals/features/cohorts/model"
)

/* =========================================
   Snapshot tipe kolom CohortMember
   ========================================= */

// ColumnTypeSnapshot: hasil introspeksi information_schema untuk kolom
// CohortMember yang boleh di-update parsial. Dimuat sekali saat startup
// dan dioper lewat konstruktor — tidak ada state global.
type ColumnTypeSnapshot struct {
	IsArray map[string]bool
}

// kolom yang boleh disentuh jalur update parsial CohortMember
var memberUpdatableColumns = []string{"Subject", "Fees", "Registration", "Board", "MemberStatus"}

// LoadCohortMemberColumnTypes membaca tipe kolom dari information_schema.
// Gagal baca → fallback: semua kolom dianggap skalar (bukan array).
func LoadCohortMemberColumnTypes(db *gorm.DB, schema string) *ColumnTypeSnapshot {
	if schema == "" {
		schema = "public"
	}

	type columnRow struct {
		ColumnName string `gorm:"column:column_name"`
		DataType   string `gorm:"column:data_type"`
		UdtName    string `gorm:"column:udt_name"`
	}

	snapshot := &ColumnTypeSnapshot{IsArray: map[string]bool{}}

	var rows []columnRow
	err := db.Raw(`SELECT column_name, data_type, udt_name
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ? AND column_name IN ?`,
		schema, "CohortMember", memberUpdatableColumns,
	).Scan(&rows).Error
	if err != nil {
		log.Printf("[COHORT MEMBER] ⚠️ gagal baca tipe kolom %s.CohortMember: %v (fallback: semua skalar)", schema, err)
		for _, c := range memberUpdatableColumns {
			snapshot.IsArray[c] = false
		}
		return snapshot
	}

	for _, row := range rows {
		isArray := row.DataType == "ARRAY" || strings.HasSuffix(row.UdtName, "[]") || strings.HasPrefix(row.UdtName, "_")
		snapshot.IsArray[row.ColumnName] = isArray
	}
	for _, c := range memberUpdatableColumns {
		if _, ok := snapshot.IsArray[c]; !ok {
			snapshot.IsArray[c] = false
		}
	}
	return snapshot
}

// toArrayLiteral membungkus nilai jadi literal array Postgres satu elemen.
func toArrayLiteral(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, `"`+strings.ReplaceAll(v, `"`, `\"`)+`"`)
	}
	return "{" + strings.Join(quoted, ",") + "}"
}

/* =========================================
   Service
   ========================================= */

type CohortMemberService struct {
	db       *gorm.DB
	colTypes *ColumnTypeSnapshot
}

func NewCohortMemberService(db *gorm.DB, colTypes *ColumnTypeSnapshot) *CohortMemberService {
	if colTypes == nil {
		colTypes = &ColumnTypeSnapshot{IsArray: map[string]bool{}}
	}
	return &CohortMemberService{db: db, colTypes: colTypes}
}

// UpsertMember: cek baris (UserID, CohortID) dulu. Semua field sama →
// tidak menyentuh DB lagi; beda → update status + tahun ajaran; belum ada
// → insert baru.
func (s *CohortMemberService) UpsertMember(ctx context.Context, m *model.CohortMemberModel) (string, error) {
	var existing model.CohortMemberModel
	err := s.db.WithContext(ctx).
		Where(`"UserID" = ? AND "CohortID" = ?`, m.UserID, m.CohortID).
		First(&existing).Error

	switch {
	case err == nil:
		sameAcademicYear := (existing.AcademicYearID == nil && m.AcademicYearID == nil) ||
			(existing.AcademicYearID != nil && m.AcademicYearID != nil && *existing.AcademicYearID == *m.AcademicYearID)
		if existing.MemberStatus == m.MemberStatus && sameAcademicYear {
			log.Printf("[COHORT MEMBER] user %s sudah terdaftar di cohort %s dengan status sama", m.UserID, m.CohortID)
			return "no_change", nil
		}
		err = s.db.WithContext(ctx).
			Model(&model.CohortMemberModel{}).
			Where(`"UserID" = ? AND "CohortID" = ?`, m.UserID, m.CohortID).
			Updates(map[string]any{
				"MemberStatus":   m.MemberStatus,
				"AcademicYearID": m.AcademicYearID,
			}).Error
		if err != nil {
			return "", fmt.Errorf("update CohortMember (%s, %s): %w", m.UserID, m.CohortID, err)
		}
		return "updated", nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
			return "", fmt.Errorf("insert CohortMember (%s, %s): %w", m.UserID, m.CohortID, err)
		}
		return "created", nil

	default:
		return "", err
	}
}

// kolom yang ditimpa saat migrasi menemukan CohortMemberID yang sama
var memberMigrationColumns = []string{"CohortID", "UserID", "MemberStatus", "AcademicYearID", "Slot"}

// UpsertMemberRow: jalur migrasi — kunci pada CohortMemberID (bukan
// pasangan UserID+CohortID seperti jalur event) dan seluruh kolom inti
// ditimpa ulang dari sumber.
func (s *CohortMemberService) UpsertMemberRow(ctx context.Context, m *model.CohortMemberModel) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "CohortMemberID"}},
			DoUpdates: clause.AssignmentColumns(memberMigrationColumns),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert CohortMember %s: %w", m.CohortMemberID, err)
	}
	return nil
}

// UpsertMemberFromUserEvent: jalur keanggotaan yang menumpang di payload
// user. memberID boleh kosong (digenerate); status kosong dianggap active.
func (s *CohortMemberService) UpsertMemberFromUserEvent(ctx context.Context, userID, cohortID, memberID string, status *string, academicYearID *string) (string, error) {
	if memberID == "" {
		memberID = uuid.NewString()
	}
	m := &model.CohortMemberModel{
		CohortMemberID: memberID,
		UserID:         userID,
		CohortID:       cohortID,
		MemberStatus:   "active",
		AcademicYearID: academicYearID,
	}
	if status != nil && strings.TrimSpace(*status) != "" {
		m.MemberStatus = strings.TrimSpace(*status)
	}
	return s.UpsertMember(ctx, m)
}

// HandleMemberEvent: jalur COHORT_MEMBER_CREATED/UPDATED. Kolom diubah
// parsial berdasarkan label custom field + map fields + status.
func (s *CohortMemberService) HandleMemberEvent(ctx context.Context, ev *dto.CohortMemberEvent) error {
	membershipID := ev.CohortMembershipID

	// cohortMembershipId bisa kosong; coba resolve lewat (userId, cohortId)
	if membershipID == "" && ev.UserID != nil && ev.CohortID != nil {
		var existing model.CohortMemberModel
		err := s.db.WithContext(ctx).
			Where(`"UserID" = ? AND "CohortID" = ?`, *ev.UserID, *ev.CohortID).
			First(&existing).Error
		if err == nil {
			membershipID = existing.CohortMemberID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if membershipID == "" {
		log.Printf("[COHORT MEMBER] cohortMembershipId kosong dan tidak bisa di-resolve dari userId/cohortId, event dilewati")
		return nil
	}

	// hanya update kalau barisnya memang ada
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&model.CohortMemberModel{}).
		Where(`"CohortMemberID"::text = ?`, membershipID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		log.Printf("[COHORT MEMBER] baris tidak ditemukan, update dilewati | cohortMembershipId=%s", membershipID)
		return nil
	}

	updates := map[string]*string{}
	if ev.Status != nil && *ev.Status != "" {
		updates["MemberStatus"] = ev.Status
	}

	wanted := map[string]string{
		"subject":      "Subject",
		"fees":         "Fees",
		"registration": "Registration",
		"board":        "Board",
	}

	for name, val := range ev.Fields {
		column, ok := wanted[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		updates[column] = stringify(val)
	}
	for _, f := range ev.CustomFields {
		column, ok := wanted[strings.ToLower(strings.TrimSpace(f.Label))]
		if !ok {
			continue
		}
		updates[column] = f.Value
	}

	if len(updates) == 0 {
		log.Printf("[COHORT MEMBER] tidak ada kolom untuk di-update | cohortMembershipId=%s", membershipID)
		return nil
	}
	return s.UpdateMemberFields(ctx, membershipID, updates)
}

// UpdateMemberFields menjalankan UPDATE parsial dengan allow-list ketat.
// Kolom array dibungkus jadi literal array satu elemen sesuai snapshot
// tipe kolom.
func (s *CohortMemberService) UpdateMemberFields(ctx context.Context, membershipID string, updates map[string]*string) error {
	allowed := map[string]bool{}
	for _, c := range memberUpdatableColumns {
		allowed[c] = true
	}

	columns := make([]string, 0, len(updates))
	for col := range updates {
		if !allowed[col] {
			continue
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil
	}
	sort.Strings(columns)

	setFragments := make([]string, 0, len(columns))
	params := make([]any, 0, len(columns)+1)
	for _, col := range columns {
		setFragments = append(setFragments, fmt.Sprintf(`%q = ?`, col))
		val := updates[col]
		if val == nil {
			params = append(params, nil)
			continue
		}
		if s.colTypes.IsArray[col] {
			params = append(params, toArrayLiteral([]string{*val}))
		} else {
			params = append(params, *val)
		}
	}
	params = append(params, membershipID)

	sql := fmt.Sprintf(`UPDATE "CohortMember" SET %s WHERE "CohortMemberID"::text = ?`, strings.Join(setFragments, ", "))
	if err := s.db.WithContext(ctx).Exec(sql, params...).Error; err != nil {
		return fmt.Errorf("update kolom CohortMember %s: %w", membershipID, err)
	}
	log.Printf("[COHORT MEMBER] kolom ter-update untuk %s: %s", membershipID, strings.Join(columns, ", "))
	return nil
}

func stringify(v any) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprintf("%v", v)
	return &s
}

package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shikshasync_backend/internals/constants"
	"shikshasync_backend/internals/features/cohorts/dto"
	"shikshasync_backend/internals/features/cohorts/model"
	"shikshasync_backend/internals/helpers/coerce"
	"shikshasync_backend/internals/helpers/customfield"
)

type CohortService struct {
	db *gorm.DB
}

func NewCohortService(db *gorm.DB) *CohortService {
	return &CohortService{db: db}
}

/* =========================================
   Lookup tipe induk (dari tabel tujuan)
   ========================================= */

// ParentType mengambil tipe kohort induk dari tabel tujuan.
// Tidak ketemu → string kosong, bukan error.
func (s *CohortService) ParentType(ctx context.Context, parentID string) (string, error) {
	var parentType *string
	err := s.db.WithContext(ctx).
		Table(`"Cohort"`).
		Select(`"Type"`).
		Where(`"CohortID" = ?`, parentID).
		Scan(&parentType).Error
	if err != nil {
		return "", err
	}
	if parentType == nil {
		return "", nil
	}
	return *parentType, nil
}

/* =========================================
   Transform event → model + kolom custom
   ========================================= */

// TransformCohort memetakan event kohort ke model inti + map kolom custom
// yang terisi. Kolom custom di-update terpisah supaya kolom yang tidak
// dikirim event tidak pernah ter-null-kan.
func (s *CohortService) TransformCohort(ctx context.Context, ev *dto.CohortEvent) (*model.CohortModel, map[string]any, error) {
	if ev.CohortID == "" {
		return nil, nil, fmt.Errorf("cohortId kosong")
	}

	m := &model.CohortModel{
		CohortID:   ev.CohortID,
		TenantID:   ev.TenantID,
		CohortName: ev.Name,
		Status:     ev.Status,
		CreatedOn:  coerce.ToDate(deref(ev.CreatedAt)),
	}

	hasParent := ev.ParentID != nil && coerce.IsUUID(*ev.ParentID)
	if hasParent {
		m.ParentID = ev.ParentID
	}

	updates := map[string]any{}
	hasTypeField := false
	for _, f := range ev.CustomFields {
		column, ok := constants.CohortFieldColumn[f.FieldID]
		if !ok {
			continue
		}
		// fieldId duplikat menunjuk kolom sama: yang pertama terisi menang
		if _, done := updates[column]; done {
			continue
		}
		raw := customfield.ResolveByFieldID(ev.CustomFields, f.FieldID)
		if raw == nil {
			continue
		}

		if column == "Type" {
			hasTypeField = true
			updates[column] = s.resolveType(ctx, *raw, hasParent, ev.ParentID)
			continue
		}
		if constants.CohortLocationColumns[column] {
			if code := resolveLocationCode(*raw); code != nil {
				updates[column] = *code
			} else {
				log.Printf("[COHORT] kode numerik %s tidak bisa diturunkan dari %q", column, *raw)
			}
			continue
		}
		updates[column] = strings.TrimSpace(*raw)
	}

	// tipe batch tetap disintesis walau anak tidak membawa field tipe
	if hasParent && !hasTypeField {
		if t := s.resolveType(ctx, "", true, ev.ParentID); t != "" {
			updates["Type"] = t
		}
	}
	if !hasParent && !hasTypeField && ev.Type != nil {
		updates["Type"] = TransformCohortType(*ev.Type, false, "")
	}

	return m, updates, nil
}

func (s *CohortService) resolveType(ctx context.Context, rawType string, hasParent bool, parentID *string) string {
	parentType := ""
	if hasParent && parentID != nil {
		pt, err := s.ParentType(ctx, *parentID)
		if err != nil {
			log.Printf("[COHORT] gagal lookup tipe induk %s: %v", *parentID, err)
		} else {
			parentType = pt
		}
	}
	return TransformCohortType(rawType, hasParent, parentType)
}

// resolveLocationCode menurunkan kode numerik lokasi dari nilai mentah.
// UUID master dicek lebih dulu lewat tabel statis; selain itu ambil digit.
func resolveLocationCode(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if coerce.IsUUID(trimmed) {
		for _, locationFieldID := range []string{
			constants.StateFieldID, constants.DistrictFieldID,
			constants.BlockFieldID, constants.VillageFieldID,
		} {
			if code, ok := constants.LocationCodeForUUID(locationFieldID, strings.ToLower(trimmed)); ok {
				return coerce.NumericCode(&code)
			}
		}
		return nil
	}
	return coerce.NumericCode(&trimmed)
}

/* =========================================
   Reconcile ke tabel tujuan
   ========================================= */

// UpsertCohort menulis baris inti (ON CONFLICT pada CohortID) lalu
// meng-update kolom custom yang terisi saja.
func (s *CohortService) UpsertCohort(ctx context.Context, m *model.CohortModel, updates map[string]any) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "CohortID"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"TenantID", "CohortName", "CreatedOn", "ParentID", "Status",
			}),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("upsert inti Cohort %s: %w", m.CohortID, err)
	}

	if len(updates) == 0 {
		return nil
	}
	return s.UpdateCohortColumns(ctx, m.CohortID, updates)
}

// UpdateCohortColumns menjalankan UPDATE dinamis kolom custom. Nama kolom
// divalidasi terhadap mapping statis — tidak pernah diambil dari payload.
func (s *CohortService) UpdateCohortColumns(ctx context.Context, cohortID string, updates map[string]any) error {
	allowed := map[string]bool{}
	for _, col := range constants.CohortFieldColumn {
		allowed[col] = true
	}

	columns := make([]string, 0, len(updates))
	for col := range updates {
		if !allowed[col] {
			return fmt.Errorf("kolom %q tidak ada di daftar kolom Cohort", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setFragments := make([]string, 0, len(columns))
	params := make([]any, 0, len(columns)+1)
	for _, col := range columns {
		setFragments = append(setFragments, fmt.Sprintf(`%q = ?`, col))
		params = append(params, updates[col])
	}
	params = append(params, cohortID)

	sql := fmt.Sprintf(`UPDATE "Cohort" SET %s WHERE "CohortID" = ?`, strings.Join(setFragments, ", "))
	if err := s.db.WithContext(ctx).Exec(sql, params...).Error; err != nil {
		return fmt.Errorf("update kolom Cohort %s: %w", cohortID, err)
	}
	log.Printf("[COHORT] kolom ter-update untuk CohortID=%s: %s", cohortID, strings.Join(columns, ", "))
	return nil
}

// DeleteCohort menghapus kohort dari tabel tujuan.
func (s *CohortService) DeleteCohort(ctx context.Context, cohortID string) error {
	return s.db.WithContext(ctx).
		Where(`"CohortID" = ?`, cohortID).
		Delete(&model.CohortModel{}).Error
}

func deref(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

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
	"shikshasync_backend/internals/helpers/coerce"
)

/* =========================================
   Backfill Cohort: sumber → tujuan
   ========================================= */

// CohortBackfillService membaca tabel Cohort + FieldValues di database
// sumber dan menulis ulang ke tujuan lewat jalur upsert cohort biasa.
type CohortBackfillService struct {
	source  *gorm.DB
	cohorts *cohortservice.CohortService
}

func NewCohortBackfillService(source, dest *gorm.DB) *CohortBackfillService {
	return &CohortBackfillService{
		source:  source,
		cohorts: cohortservice.NewCohortService(dest),
	}
}

type sourceCohortRow struct {
	CohortID  string  `gorm:"column:cohortId"`
	TenantID  *string `gorm:"column:tenantId"`
	Name      *string `gorm:"column:name"`
	CreatedAt *string `gorm:"column:createdAt"`
	ParentID  *string `gorm:"column:parentId"`
}

type sourceFieldValueRow struct {
	FieldID string `gorm:"column:fieldId"`
	Value   string `gorm:"column:value"`
}

// Run memproses semua cohort sumber. Gagal satu cohort tidak menghentikan
// sisanya; ringkasan mencatat per hasil.
func (s *CohortBackfillService) Run(ctx context.Context) (*helpers.BatchSummary, error) {
	var rows []sourceCohortRow
	err := s.source.WithContext(ctx).
		Raw(`SELECT c."cohortId", c."tenantId", c."name", c."createdAt", c."parentId" FROM public."Cohort" c`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("baca Cohort sumber: %w", err)
	}
	log.Printf("[BACKFILL] %d cohort ditemukan di sumber", len(rows))

	summary := &helpers.BatchSummary{}
	for _, row := range rows {
		summary.Processed++
		if err := s.backfillOne(ctx, row); err != nil {
			log.Printf("[BACKFILL] cohort %s gagal: %v", row.CohortID, err)
			summary.AddError(row.CohortID, err)
			continue
		}
		summary.Updated++
	}
	return summary, nil
}

func (s *CohortBackfillService) backfillOne(ctx context.Context, row sourceCohortRow) error {
	m := &model.CohortModel{
		CohortID:   row.CohortID,
		TenantID:   row.TenantID,
		CohortName: row.Name,
		CreatedOn:  coerce.ToDate(strAny(row.CreatedAt)),
	}
	// ParentID tujuan bertipe uuid; sumber varchar, set hanya kalau valid
	hasParent := row.ParentID != nil && strings.TrimSpace(*row.ParentID) != ""
	if hasParent && coerce.IsUUID(strings.TrimSpace(*row.ParentID)) {
		trimmed := strings.TrimSpace(*row.ParentID)
		m.ParentID = &trimmed
	}

	updates, err := s.fieldValueUpdates(ctx, row.CohortID, hasParent, row.ParentID)
	if err != nil {
		return err
	}
	return s.cohorts.UpsertCohort(ctx, m, updates)
}

// fieldValueUpdates memetakan FieldValues sumber ke kolom custom Cohort,
// termasuk transformasi Type center/batch.
func (s *CohortBackfillService) fieldValueUpdates(ctx context.Context, cohortID string, hasParent bool, parentID *string) (map[string]any, error) {
	var fvs []sourceFieldValueRow
	err := s.source.WithContext(ctx).
		Raw(`SELECT fv."fieldId", fv.value::text AS value FROM public."FieldValues" fv WHERE fv."itemId" = ?`, cohortID).
		Scan(&fvs).Error
	if err != nil {
		return nil, fmt.Errorf("baca FieldValues cohort %s: %w", cohortID, err)
	}

	parentType := ""
	if hasParent && parentID != nil {
		parentType = s.lookupParentType(ctx, strings.TrimSpace(*parentID))
	}

	updates := map[string]any{}
	hasTypeField := false
	for _, fv := range fvs {
		column, ok := constants.CohortFieldColumn[fv.FieldID]
		if !ok {
			continue
		}
		value := FirstFromArrayLiteral(fv.Value)
		if value == "" {
			continue
		}

		if column == "Type" {
			hasTypeField = true
			updates[column] = cohortservice.TransformCohortType(value, hasParent, parentType)
			continue
		}
		if constants.CohortLocationColumns[column] {
			if code := coerce.NumericCode(&value); code != nil {
				updates[column] = *code
			}
			continue
		}
		updates[column] = strings.TrimSpace(value)
	}

	// batch tanpa field Type sendiri tetap diklasifikasi dari parent
	if hasParent && !hasTypeField && parentType != "" {
		updates["Type"] = cohortservice.TransformCohortType("", hasParent, parentType)
	}
	return updates, nil
}

func (s *CohortBackfillService) lookupParentType(ctx context.Context, parentID string) string {
	if parentID == "" {
		return ""
	}
	var raw *string
	err := s.source.WithContext(ctx).
		Raw(`SELECT fv.value::text FROM public."FieldValues" fv WHERE fv."itemId" = ? AND fv."fieldId" = ?`,
			parentID, constants.TypeOfCenterFieldID).
		Scan(&raw).Error
	if err != nil || raw == nil {
		log.Printf("[BACKFILL] tipe parent %s tidak ditemukan di sumber", parentID)
		return ""
	}
	return strings.TrimSpace(FirstFromArrayLiteral(*raw))
}

// FirstFromArrayLiteral mengambil elemen pertama dari literal array
// Postgres ({a,b} → a). Nilai non-array dikembalikan apa adanya.
func FirstFromArrayLiteral(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "{") || !strings.HasSuffix(v, "}") {
		return v
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(v, "{"), "}")
	if inner == "" {
		return ""
	}
	first := strings.SplitN(inner, ",", 2)[0]
	return strings.Trim(strings.TrimSpace(first), `"`)
}

func strAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

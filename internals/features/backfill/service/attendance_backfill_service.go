package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shikshasync_backend/internals/features/attendance/model"
	"shikshasync_backend/internals/helpers"
)

/* =========================================
   Backfill AttendanceTracker
   ========================================= */

// AttendanceBackfillService melipat baris absensi harian sumber menjadi
// baris bulanan tujuan: satu baris per (tenant, context, contextId, user,
// year, month) dengan kolom day01..day31 terisi per tanggal.
type AttendanceBackfillService struct {
	source *gorm.DB
	dest   *gorm.DB
}

func NewAttendanceBackfillService(source, dest *gorm.DB) *AttendanceBackfillService {
	return &AttendanceBackfillService{source: source, dest: dest}
}

type sourceAttendanceRow struct {
	Year          int     `gorm:"column:year_num"`
	Month         int     `gorm:"column:month_num"`
	Day           string  `gorm:"column:day_str"`
	Attendance    *string `gorm:"column:attendance"`
	UserID        string  `gorm:"column:userId"`
	TenantID      *string `gorm:"column:tenantId"`
	ContextID     *string `gorm:"column:contextId"`
	Context       *string `gorm:"column:context"`
	Remark        *string `gorm:"column:remark"`
	Latitude      *float64 `gorm:"column:latitude"`
	Longitude     *float64 `gorm:"column:longitude"`
	Scope         *string `gorm:"column:scope"`
	LateMark      *string `gorm:"column:lateMark"`
	AbsentReason  *string `gorm:"column:absentReason"`
	ValidLocation *bool   `gorm:"column:validLocation"`
	MetaData      *string `gorm:"column:metaData"`
}

type attendanceGroup struct {
	TenantID  *string
	Context   *string
	ContextID *string
	UserID    string
	Year      int
	Month     int
	Days      map[string]datatypes.JSON
}

const sourceAttendanceQuery = `
SELECT
  EXTRACT(YEAR FROM a."attendanceDate")::int AS year_num,
  EXTRACT(MONTH FROM a."attendanceDate")::int AS month_num,
  TO_CHAR(a."attendanceDate", 'DD') AS day_str,
  a.attendance, a."userId", a."tenantId", a."contextId", a.context,
  a.remark, a.latitude, a.longitude, a.scope, a."lateMark",
  a."absentReason", a."validLocation", a."metaData"::text AS "metaData"
FROM public."Attendance" a
WHERE a."attendanceDate" IS NOT NULL AND a."userId" IS NOT NULL`

func (s *AttendanceBackfillService) Run(ctx context.Context) (*helpers.BatchSummary, error) {
	var rows []sourceAttendanceRow
	if err := s.source.WithContext(ctx).Raw(sourceAttendanceQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("baca Attendance sumber: %w", err)
	}
	log.Printf("[ATND] %d baris absensi ditemukan di sumber", len(rows))

	groups := groupAttendanceRows(rows)
	log.Printf("[ATND] terlipat menjadi %d grup bulanan", len(groups))

	summary := &helpers.BatchSummary{}
	for _, g := range groups {
		summary.Processed++
		action, err := s.upsertGroup(ctx, g)
		if err != nil {
			summary.AddError(g.UserID, err)
			continue
		}
		if action == "inserted" {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}

// groupAttendanceRows menyusun payload hari per grup. metaData dilebur
// lebih dulu, atribut tetap ditulis sesudahnya sehingga menang saat
// kunci bertabrakan.
func groupAttendanceRows(rows []sourceAttendanceRow) []attendanceGroup {
	byKey := map[string]*attendanceGroup{}
	var order []string

	for _, r := range rows {
		if r.Year == 0 || r.Month == 0 || r.Day == "" {
			continue
		}
		dayCol := "day" + r.Day
		if !model.DayColumns[dayCol] {
			continue
		}

		key := strings.Join([]string{
			derefOrEmpty(r.TenantID), derefOrEmpty(r.Context), derefOrEmpty(r.ContextID),
			r.UserID, fmt.Sprint(r.Year), fmt.Sprint(r.Month),
		}, "|")
		g, ok := byKey[key]
		if !ok {
			g = &attendanceGroup{
				TenantID:  r.TenantID,
				Context:   r.Context,
				ContextID: r.ContextID,
				UserID:    r.UserID,
				Year:      r.Year,
				Month:     r.Month,
				Days:      map[string]datatypes.JSON{},
			}
			byKey[key] = g
			order = append(order, key)
		}

		payload := map[string]any{}
		if r.MetaData != nil && *r.MetaData != "" {
			if err := sonic.Unmarshal([]byte(*r.MetaData), &payload); err != nil {
				log.Printf("[ATND] metaData tidak valid untuk %s %s, dipakai kosong", r.UserID, dayCol)
				payload = map[string]any{}
			}
		}
		payload["attendance"] = derefAny(r.Attendance)
		payload["remark"] = derefAny(r.Remark)
		payload["latitude"] = floatAny(r.Latitude)
		payload["longitude"] = floatAny(r.Longitude)
		payload["scope"] = derefAny(r.Scope)
		payload["lateMark"] = derefAny(r.LateMark)
		payload["absentReason"] = derefAny(r.AbsentReason)
		payload["validLocation"] = boolAny(r.ValidLocation)

		buf, err := sonic.Marshal(payload)
		if err != nil {
			continue
		}
		g.Days[dayCol] = datatypes.JSON(buf)
	}

	out := make([]attendanceGroup, 0, len(byKey))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// upsertGroup: coba UPDATE kolom hari yang ada dulu; 0 baris berarti
// grup baru dan di-INSERT lengkap.
func (s *AttendanceBackfillService) upsertGroup(ctx context.Context, g attendanceGroup) (string, error) {
	if len(g.Days) == 0 {
		return "", fmt.Errorf("grup tanpa kolom hari")
	}

	dayCols := make([]string, 0, len(g.Days))
	for col := range g.Days {
		dayCols = append(dayCols, col)
	}
	sort.Strings(dayCols)

	updates := map[string]any{}
	for _, col := range dayCols {
		updates[col] = g.Days[col]
	}

	q := s.dest.WithContext(ctx).
		Model(&model.AttendanceTrackerModel{}).
		Where(`"UserID" = ? AND "Year" = ? AND "Month" = ?`, g.UserID, g.Year, g.Month)
	q = whereNullable(q, "TenantID", g.TenantID)
	q = whereNullable(q, "Context", g.Context)
	q = whereNullable(q, "ContextID", g.ContextID)
	res := q.Updates(updates)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected > 0 {
		return "updated", nil
	}

	row := map[string]any{
		"TenantID":  g.TenantID,
		"Context":   g.Context,
		"ContextID": g.ContextID,
		"UserID":    g.UserID,
		"Year":      g.Year,
		"Month":     g.Month,
	}
	for _, col := range dayCols {
		row[col] = g.Days[col]
	}
	if err := s.dest.WithContext(ctx).
		Model(&model.AttendanceTrackerModel{}).
		Create(row).Error; err != nil {
		return "", err
	}
	return "inserted", nil
}

// whereNullable: bagian kunci natural yang NULL harus dicocokkan dengan
// IS NULL — string kosong bukan pengganti NULL untuk kolom uuid.
func whereNullable(q *gorm.DB, col string, v *string) *gorm.DB {
	if v == nil {
		return q.Where(fmt.Sprintf(`%q IS NULL`, col))
	}
	return q.Where(fmt.Sprintf(`%q = ?`, col), *v)
}

func derefOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatAny(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolAny(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

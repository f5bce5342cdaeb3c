// internals/features/attendance/model/attendance_tracker_model.go
package model

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceTrackerModel: satu baris per (TenantID, Context, ContextID,
// UserID, Year, Month). Tiap kolom day01..day31 menyimpan payload JSON
// kehadiran untuk satu hari dan di-update independen — satu event hanya
// menyentuh satu kolom hari.
type AttendanceTrackerModel struct {
	AtndID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:AtndID" json:"atnd_id"`

	TenantID  *string `gorm:"type:uuid;column:TenantID" json:"tenant_id,omitempty"`
	Context   *string `gorm:"column:Context" json:"context,omitempty"`
	ContextID *string `gorm:"type:uuid;column:ContextID" json:"context_id,omitempty"`
	UserID    string  `gorm:"type:uuid;not null;column:UserID" json:"user_id"`
	Year      int     `gorm:"not null;column:Year" json:"year"`
	Month     int     `gorm:"not null;column:Month" json:"month"`

	Day01 datatypes.JSON `gorm:"type:jsonb;column:day01" json:"day01,omitempty"`
	Day02 datatypes.JSON `gorm:"type:jsonb;column:day02" json:"day02,omitempty"`
	Day03 datatypes.JSON `gorm:"type:jsonb;column:day03" json:"day03,omitempty"`
	Day04 datatypes.JSON `gorm:"type:jsonb;column:day04" json:"day04,omitempty"`
	Day05 datatypes.JSON `gorm:"type:jsonb;column:day05" json:"day05,omitempty"`
	Day06 datatypes.JSON `gorm:"type:jsonb;column:day06" json:"day06,omitempty"`
	Day07 datatypes.JSON `gorm:"type:jsonb;column:day07" json:"day07,omitempty"`
	Day08 datatypes.JSON `gorm:"type:jsonb;column:day08" json:"day08,omitempty"`
	Day09 datatypes.JSON `gorm:"type:jsonb;column:day09" json:"day09,omitempty"`
	Day10 datatypes.JSON `gorm:"type:jsonb;column:day10" json:"day10,omitempty"`
	Day11 datatypes.JSON `gorm:"type:jsonb;column:day11" json:"day11,omitempty"`
	Day12 datatypes.JSON `gorm:"type:jsonb;column:day12" json:"day12,omitempty"`
	Day13 datatypes.JSON `gorm:"type:jsonb;column:day13" json:"day13,omitempty"`
	Day14 datatypes.JSON `gorm:"type:jsonb;column:day14" json:"day14,omitempty"`
	Day15 datatypes.JSON `gorm:"type:jsonb;column:day15" json:"day15,omitempty"`
	Day16 datatypes.JSON `gorm:"type:jsonb;column:day16" json:"day16,omitempty"`
	Day17 datatypes.JSON `gorm:"type:jsonb;column:day17" json:"day17,omitempty"`
	Day18 datatypes.JSON `gorm:"type:jsonb;column:day18" json:"day18,omitempty"`
	Day19 datatypes.JSON `gorm:"type:jsonb;column:day19" json:"day19,omitempty"`
	Day20 datatypes.JSON `gorm:"type:jsonb;column:day20" json:"day20,omitempty"`
	Day21 datatypes.JSON `gorm:"type:jsonb;column:day21" json:"day21,omitempty"`
	Day22 datatypes.JSON `gorm:"type:jsonb;column:day22" json:"day22,omitempty"`
	Day23 datatypes.JSON `gorm:"type:jsonb;column:day23" json:"day23,omitempty"`
	Day24 datatypes.JSON `gorm:"type:jsonb;column:day24" json:"day24,omitempty"`
	Day25 datatypes.JSON `gorm:"type:jsonb;column:day25" json:"day25,omitempty"`
	Day26 datatypes.JSON `gorm:"type:jsonb;column:day26" json:"day26,omitempty"`
	Day27 datatypes.JSON `gorm:"type:jsonb;column:day27" json:"day27,omitempty"`
	Day28 datatypes.JSON `gorm:"type:jsonb;column:day28" json:"day28,omitempty"`
	Day29 datatypes.JSON `gorm:"type:jsonb;column:day29" json:"day29,omitempty"`
	Day30 datatypes.JSON `gorm:"type:jsonb;column:day30" json:"day30,omitempty"`
	Day31 datatypes.JSON `gorm:"type:jsonb;column:day31" json:"day31,omitempty"`
}

func (AttendanceTrackerModel) TableName() string { return "AttendanceTracker" }

// DayColumns: allow-list kolom hari. Semua SQL dinamis wajib lewat sini —
// nama kolom tidak boleh diambil mentah dari payload.
var DayColumns = buildDayColumns()

func buildDayColumns() map[string]bool {
	m := make(map[string]bool, 31)
	for d := 1; d <= 31; d++ {
		m[fmt.Sprintf("day%02d", d)] = true
	}
	return m
}

// DayColumn membentuk nama kolom dari hari-dalam-bulan (1..31).
func DayColumn(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// internals/helpers/coerce/coerce.go
package coerce

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

/* ===============================
   Boolean
=================================*/

// YesNo: "yes" (case-insensitive) → true, string lain → false, nil → nil.
func YesNo(v *string) *bool {
	if v == nil {
		return nil
	}
	b := strings.EqualFold(strings.TrimSpace(*v), "yes")
	return &b
}

// ActiveStatus: "active" → true, lainnya → false, kosong/nil → nil.
func ActiveStatus(v *string) *bool {
	if v == nil || *v == "" {
		return nil
	}
	b := strings.EqualFold(strings.TrimSpace(*v), "active")
	return &b
}

/* ===============================
   Date
=================================*/

// ToDate menerima berbagai bentuk tanggal dari event/dokumen sumber:
// time.Time, string ISO, string DD-MM-YYYY, atau envelope {"$date": "..."}
// (dokumen Mongo). Gagal parse → nil, tidak pernah panic.
func ToDate(raw any) *time.Time {
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		t := v
		return &t
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		t := *v
		return &t
	case string:
		return parseDateString(v)
	case map[string]any:
		if inner, ok := v["$date"].(string); ok {
			return parseDateString(inner)
		}
		return nil
	case json.RawMessage:
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return parseDateString(s)
		}
		var env struct {
			Date string `json:"$date"`
		}
		if err := json.Unmarshal(v, &env); err == nil && env.Date != "" {
			return parseDateString(env.Date)
		}
		return nil
	default:
		return nil
	}
}

func parseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Format DD-MM-YYYY: split manual, validasi tiga segmen angka.
	// Segmen pertama = hari, kedua = bulan. Dua segmen saja → nil, jangan menebak.
	if parts := strings.Split(s, "-"); len(parts) == 3 && len(parts[0]) <= 2 {
		day, errD := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		year, errY := strconv.Atoi(parts[2])
		if errD == nil && errM == nil && errY == nil {
			if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
				t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				// tanggal tidak valid (mis. 31-02) akan dinormalisasi Go; tolak
				if t.Day() != day || int(t.Month()) != month {
					return nil
				}
				return &t
			}
			return nil
		}
	}

	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	log.Printf("[COERCE] ⚠️ gagal parse tanggal: %q", s)
	return nil
}

// FormatDateOnly memformat tanggal menjadi "YYYY-MM-DD" memakai kalender UTC.
// Wajib UTC: format lokal bisa geser satu hari tergantung timezone proses.
func FormatDateOnly(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format("2006-01-02")
	return &s
}

/* ===============================
   Text & angka
=================================*/

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Digits membuang semua karakter non-digit.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// NumericCode: ekstrak digit lalu parse int. Tanpa digit → nil.
func NumericCode(v *string) *int {
	if v == nil {
		return nil
	}
	digits := Digits(*v)
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		log.Printf("[COERCE] ⚠️ kode numerik tidak valid: %q", *v)
		return nil
	}
	return &n
}

// ToText: string di-trim, angka di-stringify, array digabung ", ",
// objek diserialisasi JSON. Selain itu → nil.
func ToText(raw any) *string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return &s
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	case int:
		s := strconv.Itoa(v)
		return &s
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if p := ToText(item); p != nil {
				parts = append(parts, *p)
			}
		}
		if len(parts) == 0 {
			return nil
		}
		s := strings.Join(parts, ", ")
		return &s
	case []string:
		if len(v) == 0 {
			return nil
		}
		s := strings.Join(v, ", ")
		return &s
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	default:
		return nil
	}
}

/* ===============================
   UUID
=================================*/

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func IsUUID(s string) bool {
	return uuidRe.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

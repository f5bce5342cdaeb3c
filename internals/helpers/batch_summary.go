package helpers

import "fmt"

// BatchSummary merangkum hasil pemrosesan satu batch record.
// Satu record gagal tidak menghentikan record lain; kegagalannya
// dicatat di sini lalu batch lanjut.
type BatchSummary struct {
	Processed int      `json:"processed"`
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errored   int      `json:"errored"`
	Errors    []string `json:"errors,omitempty"`
}

// AddError mencatat kegagalan satu record (maksimal 50 pesan disimpan
// supaya response tidak membengkak).
func (s *BatchSummary) AddError(ref string, err error) {
	s.Errored++
	if len(s.Errors) < 50 {
		s.Errors = append(s.Errors, fmt.Sprintf("%s: %v", ref, err))
	}
}

// HasFailures true kalau ada record yang gagal diproses.
func (s *BatchSummary) HasFailures() bool { return s.Errored > 0 }

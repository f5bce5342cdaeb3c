package helpers

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey mendeteksi pelanggaran unique constraint. Dipakai jalur
// insert yang kalah balapan dengan writer lain lalu diulang jadi update.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}

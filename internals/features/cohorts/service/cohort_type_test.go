package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformCohortTypeParent(t *testing.T) {
	assert.Equal(t, "regularCenter", TransformCohortType("regular", false, ""))
	assert.Equal(t, "remoteCenter", TransformCohortType("remote", false, ""))
	assert.Equal(t, "regularCenter", TransformCohortType("  Regular ", false, ""))
	// tipe lain dipertahankan apa adanya
	assert.Equal(t, "special", TransformCohortType("special", false, ""))
	assert.Equal(t, "", TransformCohortType("", false, ""))
}

func TestTransformCohortTypeChild(t *testing.T) {
	// tipe anak murni turunan tipe induk, field anak diabaikan
	assert.Equal(t, "regularBatch", TransformCohortType("remote", true, "regular"))
	assert.Equal(t, "regularBatch", TransformCohortType("", true, "regularCenter"))
	assert.Equal(t, "remoteBatch", TransformCohortType("regular", true, "remote"))
	assert.Equal(t, "remoteBatch", TransformCohortType("", true, "remoteCenter"))
	assert.Equal(t, "regularBatch", TransformCohortType("x", true, " REGULAR "))
}

func TestTransformCohortTypeChildUnknownParent(t *testing.T) {
	// induk tidak dikenali atau kosong → tipe asli anak dipertahankan
	assert.Equal(t, "special", TransformCohortType("special", true, "misterius"))
	assert.Equal(t, "regular", TransformCohortType("regular", true, ""))
	assert.Equal(t, "", TransformCohortType("", true, "misterius"))
}

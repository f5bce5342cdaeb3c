package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestYesNo(t *testing.T) {
	assert.Nil(t, YesNo(nil))

	got := YesNo(strPtr("Yes"))
	require.NotNil(t, got)
	assert.True(t, *got)

	got = YesNo(strPtr("  yes  "))
	require.NotNil(t, got)
	assert.True(t, *got)

	got = YesNo(strPtr("no"))
	require.NotNil(t, got)
	assert.False(t, *got)

	got = YesNo(strPtr(""))
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestActiveStatus(t *testing.T) {
	assert.Nil(t, ActiveStatus(nil))
	assert.Nil(t, ActiveStatus(strPtr("")))

	got := ActiveStatus(strPtr("Active"))
	require.NotNil(t, got)
	assert.True(t, *got)

	got = ActiveStatus(strPtr("archived"))
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestToDateISO(t *testing.T) {
	got := ToDate("2024-04-15T10:30:00.000Z")
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 15, got.Day())

	got = ToDate("2024-04-15")
	require.NotNil(t, got)
	assert.Equal(t, 15, got.Day())

	got = ToDate("2024-04-15 10:30:00")
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Hour())
}

func TestToDateDDMMYYYY(t *testing.T) {
	got := ToDate("25-12-2023")
	require.NotNil(t, got)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())

	// tanggal mustahil tidak boleh dinormalisasi jadi awal Maret
	assert.Nil(t, ToDate("31-02-2023"))
	assert.Nil(t, ToDate("00-01-2023"))
	// dua segmen saja: ambigu, jangan menebak
	assert.Nil(t, ToDate("12-2023"))
}

func TestToDateEnvelope(t *testing.T) {
	got := ToDate(map[string]any{"$date": "2022-08-01T00:00:00Z"})
	require.NotNil(t, got)
	assert.Equal(t, 2022, got.Year())

	assert.Nil(t, ToDate(map[string]any{"other": "2022-08-01"}))
}

func TestToDateNative(t *testing.T) {
	now := time.Now()
	got := ToDate(now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	got = ToDate(&now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	assert.Nil(t, ToDate(time.Time{}))
	assert.Nil(t, ToDate((*time.Time)(nil)))
	assert.Nil(t, ToDate(nil))
	assert.Nil(t, ToDate(12345))
	assert.Nil(t, ToDate("bukan tanggal"))
}

func TestFormatDateOnly(t *testing.T) {
	assert.Nil(t, FormatDateOnly(nil))

	zero := time.Time{}
	assert.Nil(t, FormatDateOnly(&zero))

	// 23:30 di UTC-jauh timur tetap harus memakai kalender UTC
	loc := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2024, 5, 2, 1, 30, 0, 0, loc) // 2024-05-01 18:30 UTC
	got := FormatDateOnly(&local)
	require.NotNil(t, got)
	assert.Equal(t, "2024-05-01", *got)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "29", Digits("29 - Karnataka"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "123", Digits("123"))
}

func TestNumericCode(t *testing.T) {
	assert.Nil(t, NumericCode(nil))
	assert.Nil(t, NumericCode(strPtr("tanpa angka")))

	got := NumericCode(strPtr("560 - Bengaluru Urban"))
	require.NotNil(t, got)
	assert.Equal(t, 560, *got)
}

func TestToText(t *testing.T) {
	assert.Nil(t, ToText(nil))
	assert.Nil(t, ToText("   "))
	assert.Nil(t, ToText([]any{}))
	assert.Nil(t, ToText(true))

	got := ToText("  halo ")
	require.NotNil(t, got)
	assert.Equal(t, "halo", *got)

	got = ToText(float64(42))
	require.NotNil(t, got)
	assert.Equal(t, "42", *got)

	got = ToText(12.5)
	require.NotNil(t, got)
	assert.Equal(t, "12.5", *got)

	got = ToText([]any{"a", "b"})
	require.NotNil(t, got)
	assert.Equal(t, "a, b", *got)

	got = ToText([]string{"x", "y"})
	require.NotNil(t, got)
	assert.Equal(t, "x, y", *got)

	got = ToText(map[string]any{"k": "v"})
	require.NotNil(t, got)
	assert.JSONEq(t, `{"k":"v"}`, *got)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("8df838bc-3d40-49cf-bfd9-e800f1c6a02e"))
	assert.True(t, IsUUID("  8DF838BC-3D40-49CF-BFD9-E800F1C6A02E  "))
	assert.False(t, IsUUID("bukan-uuid"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("8df838bc3d4049cfbfd9e800f1c6a02e"))
}

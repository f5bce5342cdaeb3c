package customfield

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) []CustomField {
	t.Helper()
	var fields []CustomField
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	return fields
}

func TestSelectedValueUnmarshal(t *testing.T) {
	fields := mustParse(t, `[
		{"fieldId":"f1","label":"GENDER","selectedValues":["female","male"]},
		{"fieldId":"f2","label":"STATE","selectedValues":[{"id":"29","value":"Karnataka"}]},
		{"fieldId":"f3","label":"WEIRD","selectedValues":[42,null,true]}
	]`)

	require.Len(t, fields, 3)
	require.NotNil(t, fields[0].SelectedValues[0].Text)
	assert.Equal(t, "female", *fields[0].SelectedValues[0].Text)

	require.NotNil(t, fields[1].SelectedValues[0].Ref)
	assert.Equal(t, "29", fields[1].SelectedValues[0].Ref.ID)
	assert.Equal(t, "Karnataka", fields[1].SelectedValues[0].Ref.Value)

	// bentuk aneh tidak bikin error, cuma kosong
	for _, v := range fields[2].SelectedValues {
		assert.Nil(t, v.Text)
		assert.Nil(t, v.Ref)
	}
}

func TestResolveByLabel(t *testing.T) {
	fields := mustParse(t, `[
		{"fieldId":"f1","label":"GENDER","selectedValues":["female","male"]},
		{"fieldId":"f2","label":"STATE","selectedValues":[{"id":"29","value":"Karnataka"}]},
		{"fieldId":"f3","label":"EMPTY","selectedValues":[]}
	]`)

	// first-wins: nilai kedua dibuang
	got := ResolveByLabel(fields, "GENDER")
	require.NotNil(t, got)
	assert.Equal(t, "female", *got)

	// bentuk objek via label → hanya id, bukan value
	got = ResolveByLabel(fields, "STATE")
	require.NotNil(t, got)
	assert.Equal(t, "29", *got)

	assert.Nil(t, ResolveByLabel(fields, "EMPTY"))
	assert.Nil(t, ResolveByLabel(fields, "TIDAK_ADA"))
	// label case-sensitive
	assert.Nil(t, ResolveByLabel(fields, "gender"))
}

func TestResolveByFieldID(t *testing.T) {
	fields := mustParse(t, `[
		{"fieldId":"f1","label":"STATE","selectedValues":[{"id":"29","value":"Karnataka"}]},
		{"fieldId":"f2","label":"BLOCK","selectedValues":[{"id":"777"}]},
		{"fieldId":"f3","label":"NAME","selectedValues":["Asha"]}
	]`)

	// bentuk objek via fieldId → value dulu
	got := ResolveByFieldID(fields, "f1")
	require.NotNil(t, got)
	assert.Equal(t, "Karnataka", *got)

	// value kosong → jatuh ke id
	got = ResolveByFieldID(fields, "f2")
	require.NotNil(t, got)
	assert.Equal(t, "777", *got)

	got = ResolveByFieldID(fields, "f3")
	require.NotNil(t, got)
	assert.Equal(t, "Asha", *got)

	assert.Nil(t, ResolveByFieldID(fields, "f9"))
}

func TestResolveAnyByFieldID(t *testing.T) {
	fields := mustParse(t, `[
		{"fieldId":"alt","label":"DISTRICT","selectedValues":["560 - Bengaluru"]}
	]`)

	got := ResolveAnyByFieldID(fields, "utama", "alt")
	require.NotNil(t, got)
	assert.Equal(t, "560 - Bengaluru", *got)

	assert.Nil(t, ResolveAnyByFieldID(fields, "x", "y"))
	assert.Nil(t, ResolveAnyByFieldID(fields))
}

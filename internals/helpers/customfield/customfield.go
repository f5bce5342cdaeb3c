// internals/helpers/customfield/customfield.go
package customfield

import "encoding/json"

/* ===============================
   Custom field dari event Kafka
   (label/id + selectedValues)
=================================*/

type CustomField struct {
	FieldID        string          `json:"fieldId"`
	Label          string          `json:"label"`
	SelectedValues []SelectedValue `json:"selectedValues"`
}

// RefValue: bentuk objek dari selected value (referensi master data).
type RefValue struct {
	ID         string `json:"id"`
	Value      string `json:"value"`
	UUID       string `json:"uuid"`
	Identifier string `json:"identifier"`
}

// SelectedValue: string polos ATAU objek referensi. Bentuk lain
// (angka, boolean, null) dianggap kosong — resolver mengembalikan nil.
type SelectedValue struct {
	Text *string
	Ref  *RefValue
}

func (v *SelectedValue) UnmarshalJSON(b []byte) error {
	v.Text = nil
	v.Ref = nil

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Text = &s
		return nil
	}

	var ref struct {
		ID         any `json:"id"`
		Value      any `json:"value"`
		UUID       any `json:"uuid"`
		Identifier any `json:"identifier"`
	}
	if err := json.Unmarshal(b, &ref); err == nil {
		r := RefValue{
			ID:         asString(ref.ID),
			Value:      asString(ref.Value),
			UUID:       asString(ref.UUID),
			Identifier: asString(ref.Identifier),
		}
		if r != (RefValue{}) {
			v.Ref = &r
			return nil
		}
	}

	// payload aneh → biarkan kosong, jangan error
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

/* ===============================
   Resolver (first-wins, lossy)
=================================*/

// first: nilai pertama dari field yang cocok; nil kalau field tidak ada
// atau selectedValues kosong. Nilai kedua dst sengaja dibuang.
func first(fields []CustomField, match func(CustomField) bool) *SelectedValue {
	for i := range fields {
		if !match(fields[i]) {
			continue
		}
		if len(fields[i].SelectedValues) == 0 {
			return nil
		}
		return &fields[i].SelectedValues[0]
	}
	return nil
}

// ResolveByLabel mencari field berdasarkan label (exact, case-sensitive).
// Untuk bentuk objek hanya properti `id` yang dipakai.
func ResolveByLabel(fields []CustomField, label string) *string {
	v := first(fields, func(f CustomField) bool { return f.Label == label })
	if v == nil {
		return nil
	}
	if v.Text != nil {
		return v.Text
	}
	if v.Ref != nil && v.Ref.ID != "" {
		id := v.Ref.ID
		return &id
	}
	return nil
}

// ResolveByFieldID mencari field berdasarkan fieldId.
// Untuk bentuk objek: `value` dulu, baru `id`.
func ResolveByFieldID(fields []CustomField, fieldID string) *string {
	v := first(fields, func(f CustomField) bool { return f.FieldID == fieldID })
	if v == nil {
		return nil
	}
	if v.Text != nil {
		return v.Text
	}
	if v.Ref != nil {
		if v.Ref.Value != "" {
			val := v.Ref.Value
			return &val
		}
		if v.Ref.ID != "" {
			id := v.Ref.ID
			return &id
		}
	}
	return nil
}

// ResolveAnyByFieldID: fallback berantai untuk kolom yang punya lebih dari
// satu fieldId sumber (mis. state/district punya fieldId duplikat).
func ResolveAnyByFieldID(fields []CustomField, fieldIDs ...string) *string {
	for _, id := range fieldIDs {
		if v := ResolveByFieldID(fields, id); v != nil {
			return v
		}
	}
	return nil
}

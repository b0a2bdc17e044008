// internal/model/patch.go
package model

import "encoding/json"

// PatchField is a tri-state patch value: unset, set to a string, or set to null.
type PatchField struct {
	set   bool
	value *string
}

// Set returns a field carrying v.
func Set(v string) PatchField {
	return PatchField{set: true, value: &v}
}

// Null returns a field that clears the remote value.
func Null() PatchField {
	return PatchField{set: true}
}

// SetOrNull maps "" to Null and anything else to Set.
func SetOrNull(v string) PatchField {
	if v == "" {
		return Null()
	}
	return Set(v)
}

// IsSet reports whether the field is sent at all.
func (f PatchField) IsSet() bool { return f.set }

// Value returns the carried value; nil for null or unset fields.
func (f PatchField) Value() *string { return f.value }

// RepositoryPatch is a partial update of an existing repository.
type RepositoryPatch struct {
	Name        PatchField
	Description PatchField
	Homepage    PatchField
}

// MarshalJSON emits only the fields that are set; null fields encode as JSON null.
func (p RepositoryPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]*string, 3)
	if p.Name.set {
		body["name"] = p.Name.value
	}
	if p.Description.set {
		body["description"] = p.Description.value
	}
	if p.Homepage.set {
		body["homepage"] = p.Homepage.value
	}
	return json.Marshal(body)
}

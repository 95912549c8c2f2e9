// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IndividualRecord holds the fields extracted from one individual block of a
// GEDCOM source. Absent fields are nil, never the empty string.
type IndividualRecord struct {
	// XRef is the block's cross-reference id (e.g. "@I1@"), empty if the
	// header carried none.
	XRef string `json:"xref,omitempty" yaml:"xref,omitempty"`

	// Name is the display name with surname slashes removed.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// BirthDate is the raw DATE text found under a BIRT event.
	BirthDate *string `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`

	// DeathDate is the raw DATE text found under a DEAT event.
	DeathDate *string `json:"death_date,omitempty" yaml:"death_date,omitempty"`
}

// DisplayName returns the record's name, or "" when none was recorded.
func (r IndividualRecord) DisplayName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// Birth returns the raw birth date text and whether one was present.
func (r IndividualRecord) Birth() (string, bool) {
	if r.BirthDate == nil {
		return "", false
	}
	return *r.BirthDate, true
}

// Death returns the raw death date text and whether one was present.
func (r IndividualRecord) Death() (string, bool) {
	if r.DeathDate == nil {
		return "", false
	}
	return *r.DeathDate, true
}

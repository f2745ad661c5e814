// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SubjectStatus reports whether a registered subject still exists.
type SubjectStatus string

const (
	StatusActive    SubjectStatus = "active"
	StatusDissolved SubjectStatus = "dissolved"
)

// Subject holds the registry data of one economic subject as returned by
// ARES. Optional fields are empty when the registry omits them; a Subject
// with missing citation fields is still a valid lookup result.
type Subject struct {
	// ICO is the eight-digit identifier echoed back by the registry.
	ICO string `json:"ico" yaml:"ico"`

	// Name is the registered legal name (obchodní jméno).
	Name string `json:"name" yaml:"name"`

	// Address is the registered office (sídlo).
	Address Address `json:"address" yaml:"address"`

	// LegalForm is the ARES legal form code (e.g. "121" for a joint-stock company).
	LegalForm string `json:"legal_form,omitempty" yaml:"legal_form,omitempty"`

	// VATID is the tax identifier (DIČ), if registered.
	VATID string `json:"vat_id,omitempty" yaml:"vat_id,omitempty"`

	// Established, Dissolved and Updated are ISO dates (YYYY-MM-DD) as sent by ARES.
	Established string `json:"established,omitempty" yaml:"established,omitempty"`
	Dissolved   string `json:"dissolved,omitempty" yaml:"dissolved,omitempty"`
	Updated     string `json:"updated,omitempty" yaml:"updated,omitempty"`

	Status SubjectStatus `json:"status" yaml:"status"`
}

// Address is a registered office address broken into the parts a citation needs.
type Address struct {
	Street string `json:"street,omitempty" yaml:"street,omitempty"`

	// BuildingNumber combines the descriptive and orientation numbers,
	// e.g. "333/150".
	BuildingNumber string `json:"building_number,omitempty" yaml:"building_number,omitempty"`

	// District is the part of the municipality (část obce).
	District string `json:"district,omitempty" yaml:"district,omitempty"`

	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`

	// Municipality is the city district for statutory cities (e.g. "Praha 5"),
	// otherwise the municipality name.
	Municipality string `json:"municipality,omitempty" yaml:"municipality,omitempty"`

	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Text is the registry's own single-line rendering of the address.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsDissolved reports whether the registry records a dissolution date.
func (s Subject) IsDissolved() bool {
	return s.Status == StatusDissolved
}

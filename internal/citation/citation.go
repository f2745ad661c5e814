// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation renders a registry subject as the fixed-format
// identification used in Czech formal correspondence and contracts:
//
//	<name>, IČO <ico>, sídlem <street> <number>, [<district>, ]<postal code> <municipality>
package citation

import (
	"fmt"
	"strings"

	"github.com/pdiddy/ares-cite/pkg/types"
)

const (
	icoLabel    = "IČO"
	officeLabel = "sídlem"
	separator   = ", "
)

// Field names reported by FormatError.
const (
	FieldName           = "name"
	FieldICO            = "ico"
	FieldStreet         = "street"
	FieldBuildingNumber = "building_number"
	FieldDistrict       = "district"
	FieldPostalCode     = "postal_code"
	FieldMunicipality   = "municipality"
)

// FormatError reports a subject that lacks a field the citation requires.
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format citation: missing field %q", e.Field)
}

// Format returns the citation for s. It fails with *FormatError naming the
// first missing required field, in citation order.
func Format(s types.Subject) (string, error) {
	if err := checkRequired(s); err != nil {
		return "", err
	}

	a := s.Address
	segments := []string{
		s.Name,
		icoLabel + " " + s.ICO,
		officeLabel + " " + a.Street + " " + a.BuildingNumber,
	}
	if !sameLocality(a.District, a.Municipality) && !sameLocality(a.District, a.Street) {
		segments = append(segments, a.District)
	}
	segments = append(segments, a.PostalCode+" "+a.Municipality)

	return strings.Join(segments, separator), nil
}

func checkRequired(s types.Subject) error {
	fields := []struct {
		name  string
		value string
	}{
		{FieldName, s.Name},
		{FieldICO, s.ICO},
		{FieldStreet, s.Address.Street},
		{FieldBuildingNumber, s.Address.BuildingNumber},
		{FieldDistrict, s.Address.District},
		{FieldPostalCode, s.Address.PostalCode},
		{FieldMunicipality, s.Address.Municipality},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &FormatError{Field: f.name}
		}
	}
	return nil
}

// sameLocality compares a district with the municipality or street. Small
// municipalities register their only part under the same name, and places
// without street names are addressed by the part itself.
func sameLocality(district, municipality string) bool {
	return strings.EqualFold(strings.TrimSpace(district), strings.TrimSpace(municipality))
}

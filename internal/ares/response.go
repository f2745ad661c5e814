// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ares

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pdiddy/ares-cite/pkg/types"
)

// notFoundCode is the ARES error code for an unknown subject.
const notFoundCode = "NENALEZENO"

// subjectResponse captures the fields we need from an ARES economic
// subject. Unknown fields are ignored.
type subjectResponse struct {
	ICO         string        `json:"ico"`
	Name        string        `json:"obchodniJmeno"`
	Seat        *seatResponse `json:"sidlo"`
	LegalForm   string        `json:"pravniForma"`
	VATID       string        `json:"dic"`
	Established string        `json:"datumVzniku"`
	Dissolved   string        `json:"datumZaniku"`
	Updated     string        `json:"datumAktualizace"`
}

// seatResponse is the registered office (sídlo) of a subject.
type seatResponse struct {
	CountryName       string `json:"nazevStatu"`
	Municipality      string `json:"nazevObce"`
	CityArea          string `json:"nazevMestskehoObvodu"`
	MunicipalityPart  string `json:"nazevCastiObce"`
	Street            string `json:"nazevUlice"`
	HouseNumber       *int   `json:"cisloDomovni"`
	EvidenceNumber    *int   `json:"cisloEvidencni"`
	OrientationNumber *int   `json:"cisloOrientacni"`
	OrientationLetter string `json:"cisloOrientacniPismeno"`
	PostalCode        *int   `json:"psc"`
	Text              string `json:"textovaAdresa"`
}

// parseSubject decodes a 200 body. A body that decodes but carries neither
// an IČO nor a name is the registry's empty result and maps to
// *NotFoundError.
func parseSubject(ico string, body []byte) (*types.Subject, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &TransportError{ICO: ico, StatusCode: 200, Err: fmt.Errorf("%w: empty body", errMalformedResponse)}
	}

	var r subjectResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, &TransportError{ICO: ico, StatusCode: 200, Err: fmt.Errorf("%w: %v", errMalformedResponse, err)}
	}
	if r.ICO == "" && r.Name == "" {
		return nil, &NotFoundError{ICO: ico}
	}

	s := &types.Subject{
		ICO:         r.ICO,
		Name:        r.Name,
		LegalForm:   r.LegalForm,
		VATID:       r.VATID,
		Established: r.Established,
		Dissolved:   r.Dissolved,
		Updated:     r.Updated,
		Status:      types.StatusActive,
	}
	if r.Dissolved != "" {
		s.Status = types.StatusDissolved
	}
	if r.Seat != nil {
		s.Address = r.Seat.address()
	}
	return s, nil
}

// address maps the seat the way ARES renders textovaAdresa: Prague
// offices end in the numbered district ("Praha 5"), other cities in the
// municipality name ("Brno"). Places without street names use the part of
// the municipality in place of the street ("Lhota 12").
func (r *seatResponse) address() types.Address {
	a := types.Address{
		Street:         r.Street,
		BuildingNumber: buildingNumber(r.HouseNumber, r.EvidenceNumber, r.OrientationNumber, r.OrientationLetter),
		District:       r.MunicipalityPart,
		Municipality:   r.CityArea,
		Country:        r.CountryName,
		Text:           r.Text,
	}
	if a.Street == "" {
		a.Street = r.MunicipalityPart
	}
	if a.Municipality == "" {
		a.Municipality = r.Municipality
	}
	if r.PostalCode != nil {
		a.PostalCode = fmt.Sprintf("%05d", *r.PostalCode)
	}
	return a
}

// buildingNumber renders "333/150", "333", "č. ev. 45" for buildings
// with only an evidence number, or "150a" when only the orientation
// number is known.
func buildingNumber(house, evidence, orientation *int, letter string) string {
	var h string
	switch {
	case house != nil:
		h = strconv.Itoa(*house)
	case evidence != nil:
		h = "č. ev. " + strconv.Itoa(*evidence)
	}

	var o string
	if orientation != nil {
		o = strconv.Itoa(*orientation) + letter
	}

	switch {
	case h != "" && o != "":
		return h + "/" + o
	case h != "":
		return h
	default:
		return o
	}
}

// parseAPIError decodes an ARES error body. It returns nil when the body
// is not an ARES error document.
func parseAPIError(body []byte) *apiError {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil || e.Code == "" {
		return nil
	}
	return &e
}

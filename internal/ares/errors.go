// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ares

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ValidationError reports an identifier that is not eight digits. It is
// returned before any request is made.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid IČO %q: must be exactly %d digits", e.Input, ICOLength)
}

// NotFoundError reports that the registry has no subject with the IČO.
type NotFoundError struct {
	ICO string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no subject with IČO %s in ARES", e.ICO)
}

// TransportError reports a lookup that could not complete: the request
// failed, timed out, returned an unexpected status, or the body could not
// be decoded. StatusCode is zero when no response was received.
type TransportError struct {
	ICO        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("ARES lookup of %s: HTTP %d: %v", e.ICO, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("ARES lookup of %s: HTTP %d", e.ICO, e.StatusCode)
	default:
		return fmt.Sprintf("ARES lookup of %s: %v", e.ICO, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the lookup failed because a deadline expired.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// errMalformedResponse marks a 200 response whose body is not a subject record.
var errMalformedResponse = errors.New("malformed response body")

// apiError is the error body ARES sends with non-200 responses.
type apiError struct {
	Code        string `json:"kod"`
	SubCode     string `json:"subKod"`
	Description string `json:"popis"`
}

func (e *apiError) Error() string {
	if e.SubCode != "" {
		return fmt.Sprintf("%s/%s: %s", e.Code, e.SubCode, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

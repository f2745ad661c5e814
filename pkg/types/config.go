// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultRegistryURL is the ARES economic-subjects endpoint. The IČO is
// appended as the last path segment.
const DefaultRegistryURL = "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest/ekonomicke-subjekty/"

// HTTPConfig holds shared HTTP settings used for registry requests.
type HTTPConfig struct {
	// Timeout bounds a single registry request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ares-cite/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RegistryConfig holds settings for the ARES client.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the subject lookup endpoint (default DefaultRegistryURL).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Pad left-pads identifiers shorter than eight digits with zeros
	// before lookup. Only the CLI honours it.
	Pad bool `json:"pad" yaml:"pad"`
}

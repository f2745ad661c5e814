// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ares

import (
	"regexp"
	"strings"
)

// ICOLength is the fixed length of a Czech IČO.
const ICOLength = 8

var icoPattern = regexp.MustCompile(`^[0-9]{8}$`)

// digitsPattern matches a non-empty run of ASCII digits of at most eight.
var digitsPattern = regexp.MustCompile(`^[0-9]{1,8}$`)

// ValidateICO checks that s is exactly eight ASCII digits.
func ValidateICO(s string) error {
	if !icoPattern.MatchString(s) {
		return &ValidationError{Input: s}
	}
	return nil
}

// PadICO trims s and left-pads it with zeros to eight digits. Many public
// institutions have IČOs starting with several zeros that users tend to
// leave out. Inputs that are not one to eight digits fail with
// *ValidationError.
func PadICO(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !digitsPattern.MatchString(trimmed) {
		return "", &ValidationError{Input: s}
	}
	return strings.Repeat("0", ICOLength-len(trimmed)) + trimmed, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials and private settings from a directory of
// plain-text files. Each file in the directory represents one secret: the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: contact-email.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ContactEmail is the key of the address advertised to ARES in the
// User-Agent header so the operator can be reached about misbehaving clients.
const ContactEmail = "contact-email"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads all files in dir. A missing directory is not an error; Load
// returns empty Secrets. Unreadable files are logged and skipped.
func Load(dir string, logger *slog.Logger) (Secrets, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", "name", name, "error", err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			s[name] = value
		}
	}

	return s, nil
}

// Get returns the value for key, or fallback when the key is absent.
func (s Secrets) Get(key, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// UserAgent appends the contact email, if any, to base:
// "ares-cite/0.1 (+mailto:ops@example.com)".
func (s Secrets) UserAgent(base string) string {
	email := s.Get(ContactEmail, "")
	if email == "" {
		return base
	}
	return fmt.Sprintf("%s (+mailto:%s)", base, email)
}

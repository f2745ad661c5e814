// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   Secrets
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "contact-email", "  ops@example.com  \n")
				writeFile(t, dir, "other-key", "v1")
				return dir
			},
			want: Secrets{
				"contact-email": "ops@example.com",
				"other-key":     "v1",
			},
		},
		{
			name: "returns empty secrets for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "contact-email", "ops@example.com")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: Secrets{"contact-email": "ops@example.com"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "contact-email", "ops@example.com")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: Secrets{"contact-email": "ops@example.com"},
		},
		{
			name: "fails when path is a file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "not-a-dir", "x")
				return filepath.Join(dir, "not-a-dir")
			},
			errMsg: "reading secrets directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir, nil)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "ares-cite/0.1", Secrets{}.UserAgent("ares-cite/0.1"))
	assert.Equal(t, "ares-cite/0.1 (+mailto:ops@example.com)",
		Secrets{ContactEmail: "ops@example.com"}.UserAgent("ares-cite/0.1"))
}

func TestGet(t *testing.T) {
	s := Secrets{"contact-email": "ops@example.com"}
	assert.Equal(t, "ops@example.com", s.Get("contact-email", "fallback"))
	assert.Equal(t, "fallback", s.Get("missing", "fallback"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

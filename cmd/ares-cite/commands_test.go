package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ares-cite/internal/ares"
	"github.com/pdiddy/ares-cite/pkg/types"
)

const sampleSubject = `{"ico":"00001350","obchodniJmeno":"Československá obchodní banka, a. s.",
"sidlo":{"nazevUlice":"Radlická","cisloDomovni":333,"cisloOrientacni":150,"nazevCastiObce":"Radlice",
"psc":15000,"nazevMestskehoObvodu":"Praha 5","nazevObce":"Praha"},"datumVzniku":"1990-01-01"}`

// useRegistry points the package-level client at a test server that knows
// only 00001350.
func useRegistry(t *testing.T, pad bool) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/00001350") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"kod":"NENALEZENO"}`)
			return
		}
		fmt.Fprint(w, sampleSubject)
	}))
	t.Cleanup(ts.Close)

	oldRegistry, oldPad := registry, padICO
	registry = ares.NewClient(types.RegistryConfig{BaseURL: ts.URL}, ares.WithHTTPClient(ts.Client()))
	padICO = pad
	t.Cleanup(func() { registry, padICO = oldRegistry, oldPad })
}

func newTestCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("json", false, "")
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunDescribe(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer

	require.NoError(t, runDescribe(newTestCommand(&out), []string{"00001350", "00001350"}))

	want := "Československá obchodní banka, a. s., IČO 00001350, sídlem Radlická 333/150, Radlice, 15000 Praha 5\n"
	assert.Equal(t, want+want, out.String())
}

func TestRunDescribeStopsAtFirstError(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer

	err := runDescribe(newTestCommand(&out), []string{"99999999", "00001350"})

	var nf *ares.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "99999999", nf.ICO)
	assert.Empty(t, out.String())
}

func TestRunDescribeWithPad(t *testing.T) {
	useRegistry(t, true)
	var out bytes.Buffer

	require.NoError(t, runDescribe(newTestCommand(&out), []string{"1350"}))
	assert.Contains(t, out.String(), "IČO 00001350")
}

func TestRunDescribeWithoutPadRejectsShortIdentifier(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer

	err := runDescribe(newTestCommand(&out), []string{"1350"})

	var ve *ares.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestRunLookupYAML(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer

	require.NoError(t, runLookup(newTestCommand(&out), []string{"00001350"}))

	var got types.Subject
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "00001350", got.ICO)
	assert.Equal(t, "Radlice", got.Address.District)
	assert.Equal(t, types.StatusActive, got.Status)
}

func TestRunLookupJSON(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer
	cmd := newTestCommand(&out)
	require.NoError(t, cmd.Flags().Set("json", "true"))

	require.NoError(t, runLookup(cmd, []string{"00001350"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Československá obchodní banka, a. s.", got["name"])
	assert.Equal(t, "1990-01-01", got["established"])
}

func TestRunPrompt(t *testing.T) {
	useRegistry(t, false)
	var out bytes.Buffer
	cmd := newTestCommand(&out)
	cmd.SetIn(strings.NewReader("00001350\nq\n"))

	require.NoError(t, runPrompt(cmd, nil))
	assert.Contains(t, out.String(), "sídlem Radlická 333/150")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt runs the interactive IČO lookup loop.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/ares-cite/internal/ares"
	"github.com/pdiddy/ares-cite/internal/citation"
)

// Prompt is printed before each read.
const Prompt = "IČO> "

// Describer turns an IČO into a citation. *ares.Client implements it.
type Describer interface {
	Describe(ctx context.Context, ico string) (string, error)
}

// Session reads identifiers from In and writes one result line per
// identifier to Out. Lookup failures are reported and the loop continues.
type Session struct {
	Describer Describer
	In        io.Reader
	Out       io.Writer

	// Pad left-pads short identifiers with zeros before lookup.
	Pad bool

	// Logger receives per-lookup diagnostics. Nil disables them.
	Logger *slog.Logger
}

// Run loops until In is exhausted, the user types q/quit/exit, or ctx is
// cancelled. It returns an error only for I/O failures or cancellation.
func (s *Session) Run(ctx context.Context) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	scanner := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(s.Out, Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			_, err := fmt.Fprintln(s.Out)
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		result := s.describe(ctx, line)
		logger.Debug("prompt lookup", "input", line, "result", result)
		if _, err := fmt.Fprintln(s.Out, result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
}

func (s *Session) describe(ctx context.Context, input string) string {
	ico := input
	if s.Pad {
		padded, err := ares.PadICO(input)
		if err != nil {
			return Message(err)
		}
		ico = padded
	}

	text, err := s.Describer.Describe(ctx, ico)
	if err != nil {
		return Message(err)
	}
	return text
}

// Message returns the user-facing text for a lookup or format error.
func Message(err error) string {
	var (
		ve *ares.ValidationError
		nf *ares.NotFoundError
		te *ares.TransportError
		fe *citation.FormatError
	)
	switch {
	case errors.As(err, &ve):
		return fmt.Sprintf("error: %q is not a valid IČO (expected %d digits)", ve.Input, ares.ICOLength)
	case errors.As(err, &nf):
		return fmt.Sprintf("error: no subject with IČO %s found in ARES", nf.ICO)
	case errors.As(err, &te) && te.Timeout():
		return fmt.Sprintf("error: ARES did not answer in time for IČO %s, try again later", te.ICO)
	case errors.As(err, &te):
		return fmt.Sprintf("error: ARES lookup failed: %v", te)
	case errors.As(err, &fe):
		return fmt.Sprintf("error: ARES record is missing %s, cannot build citation", fe.Field)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ares looks up economic subjects in ARES, the Czech public
// registry of economic subjects, by their IČO.
package ares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/ares-cite/internal/citation"
	"github.com/pdiddy/ares-cite/internal/httputil"
	"github.com/pdiddy/ares-cite/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "ares-cite/0.1"
	tracerName       = "github.com/pdiddy/ares-cite/internal/ares"
)

// Client queries the ARES subject endpoint. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from the config. The
// config timeout is then ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for request diagnostics. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client for cfg. Zero config values fall back to the
// public ARES endpoint, a 30s timeout and the ares-cite User-Agent.
func NewClient(cfg types.RegistryConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
	}
	if c.baseURL == "" {
		c.baseURL = types.DefaultRegistryURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the subject registered under ico. The IČO must be exactly
// eight digits; otherwise Lookup returns *ValidationError without making a
// request. A missing subject yields *NotFoundError, any other failure
// *TransportError. Lookup makes exactly one request and never retries.
func (c *Client) Lookup(ctx context.Context, ico string) (*types.Subject, error) {
	if err := ValidateICO(ico); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "ares.Lookup", trace.WithAttributes(attribute.String("ares.ico", ico)))
	defer span.End()

	subject, err := c.lookup(ctx, ico)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("ares.status", string(subject.Status)))
	return subject, nil
}

func (c *Client) lookup(ctx context.Context, ico string) (*types.Subject, error) {
	url := strings.TrimRight(c.baseURL, "/") + "/" + ico

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("User-Agent", c.userAgent)

	start := time.Now()
	c.logger.Debug("ARES request", "ico", ico, "url", url)

	resp, err := httputil.Get(ctx, c.httpClient, url, header)
	if err != nil {
		c.logger.Debug("ARES request failed", "ico", ico, "error", err, "elapsed", time.Since(start))
		return nil, &TransportError{ICO: ico, Err: err}
	}
	c.logger.Debug("ARES response", "ico", ico, "status", resp.StatusCode, "bytes", len(resp.Body), "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusOK {
		subject, err := parseSubject(ico, resp.Body)
		if err == nil && subject.ICO != ico {
			c.logger.Debug("ARES returned a different IČO", "requested", ico, "returned", subject.ICO)
		}
		return subject, err
	}

	apiErr := parseAPIError(resp.Body)
	if resp.StatusCode == http.StatusNotFound ||
		(resp.StatusCode >= 400 && resp.StatusCode < 500 && apiErr != nil && apiErr.Code == notFoundCode) {
		return nil, &NotFoundError{ICO: ico}
	}

	te := &TransportError{ICO: ico, StatusCode: resp.StatusCode}
	if apiErr != nil {
		te.Err = apiErr
	}
	return nil, te
}

// Describe looks up ico and formats the subject as a citation. Errors from
// Lookup and citation.Format are returned unchanged.
func (c *Client) Describe(ctx context.Context, ico string) (string, error) {
	subject, err := c.Lookup(ctx, ico)
	if err != nil {
		return "", err
	}
	return citation.Format(*subject)
}

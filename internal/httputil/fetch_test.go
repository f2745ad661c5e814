// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "ares-cite-test/0.1", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	header := http.Header{}
	header.Set("User-Agent", "ares-cite-test/0.1")
	header.Set("Accept", "application/json")

	resp, err := Get(context.Background(), ts.Client(), ts.URL, header)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ErrorStatusIsNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusNotFound} {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(status)
		}))

		resp, err := Get(context.Background(), ts.Client(), ts.URL, nil)
		ts.Close()

		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "status %d", status)
	}
}

func TestGet_BodyTooLarge(t *testing.T) {
	old := MaxBodySize
	MaxBodySize = 16
	defer func() { MaxBodySize = old }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 17)))
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 16 bytes")
}

func TestGet_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_Unreachable(t *testing.T) {
	client := &http.Client{Timeout: time.Second}
	_, err := Get(context.Background(), client, "http://127.0.0.1:1/", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request")
}

package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUA = "supplier-matcher-test/1.0"

func TestGetHtmlBytes_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, testUA, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html><title>ok</title></html>"))
	}))
	defer server.Close()

	f := NewFetcher(testUA, 5*time.Second)
	body, err := f.GetHtmlBytes(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html><title>ok</title></html>", string(body))
}

func TestGetHtmlBytes_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(testUA, 5*time.Second)
	_, err := f.GetHtmlBytes(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, server.URL, fetchErr.URL)
	assert.Contains(t, fetchErr.Error(), "404")
}

func TestGetHtmlBytes_LenientStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<title>Maintenance</title>"))
	}))
	defer server.Close()

	f := NewFetcher(testUA, 5*time.Second, WithLenientStatus())
	body, err := f.GetHtmlBytes(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, string(body), "Maintenance")
}

func TestGetHtmlBytes_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	f := NewFetcher(testUA, time.Second)
	_, err := f.GetHtmlBytes(context.Background(), serverURL)

	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestGetHtmlBytes_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(testUA, 5*time.Second)
	_, err := f.GetHtmlBytes(context.Background(), server.URL)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewFetcher_TimeoutOverridesClient(t *testing.T) {
	client := &http.Client{Timeout: time.Hour}
	f := NewFetcher(testUA, 3*time.Second, WithClient(client))

	assert.Same(t, client, f.client)
	assert.Equal(t, 3*time.Second, f.client.Timeout)
}

package flashscore

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "logoscraper/pkg/errors"
)

func TestGetPageSendsConfiguredUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body><span>ok</span></body></html>"))
	}))
	defer server.Close()

	client := NewClient("logoscraper-test/1.0", 5*time.Second, nil)
	page, err := client.GetPage(server.URL)
	require.NoError(t, err)

	assert.Equal(t, "logoscraper-test/1.0", gotUA)
	assert.Equal(t, 1, page.Document.Find("span").Length())
	assert.Contains(t, page.Raw, "<span>ok</span>")
	assert.Equal(t, server.URL, page.URL)
}

func TestGetPageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient("ua", 5*time.Second, nil)
	_, err := client.GetPage(server.URL + "/missing")
	require.Error(t, err)

	var apiErr *apperrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apperrors.ErrorTypeNotFound, apiErr.Type)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestGetPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("ua", 5*time.Second, nil)
	_, err := client.GetPage(server.URL)
	require.Error(t, err)

	var apiErr *apperrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apperrors.ErrorTypeServerError, apiErr.Type)
}

func TestGetNetworkError(t *testing.T) {
	client := NewClient("ua", 200*time.Millisecond, nil)
	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := client.Get(url)
	require.Error(t, err)

	var apiErr *apperrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apperrors.ErrorTypeNetwork, apiErr.Type)
}

func TestFetchAssetStreamsBody(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient("ua", 5*time.Second, nil)
	body, err := client.FetchAsset(server.URL + "/logo.png")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetchAssetNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("ua", 5*time.Second, nil)
	_, err := client.FetchAsset(server.URL + "/logo.png")
	require.Error(t, err)

	var apiErr *apperrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apperrors.ErrorTypeUnknown, apiErr.Type)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "testdata/global-temperature.json"

func serveFile(t *testing.T, status int, file string) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile(file)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Fetch(t *testing.T) {
	srv := serveFile(t, http.StatusOK, sample)

	ds, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.66, ds.BaseTemperature)
	require.Len(t, ds.Readings, 5)
	assert.Equal(t, 1753, ds.Readings[0].Year)
	assert.Equal(t, 1, ds.Readings[0].Month)
	assert.Equal(t, -1.366, ds.Readings[0].Variance)
	assert.Equal(t, 2015, ds.Readings[4].Year)
}

func TestClient_Status(t *testing.T) {
	srv := serveFile(t, http.StatusInternalServerError, sample)

	_, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	require.Error(t, err)

	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, srv.URL, ferr.Source)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Malformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"baseTemperature": 8.66, "monthlyVariance": [`), 0o644))
	srv := serveFile(t, http.StatusOK, file)

	_, err := NewClient(srv.URL, time.Second, nil).Fetch(context.Background())
	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestClient_Cancelled(t *testing.T) {
	srv := serveFile(t, http.StatusOK, sample)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, time.Second, nil).Fetch(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient("", time.Second, nil)
	assert.Equal(t, DefaultURL, c.URL)
	assert.Equal(t, time.Second, c.HTTP.Timeout)
}

func TestFile_Fetch(t *testing.T) {
	ds, err := File{Path: sample}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Readings, 5)

	_, err = File{Path: filepath.Join(t.TempDir(), "missing.json")}.Fetch(context.Background())
	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

package platform

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	var (
		gotAuth, gotType, gotID string
		gotBody                 []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get(HeaderClientRequestID)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewHTTPClient("secret", 0)
	resp, err := c.PostJSON(context.Background(), srv.URL, []byte(`{"a":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, `{"a":1}`, string(gotBody))
	_, err = uuid.Parse(gotID)
	assert.NoError(t, err)
}

func TestPostJSONTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient("secret", time.Second)
	resp, err := c.PostJSON(context.Background(), url, nil)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestSetBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	SetBearer(req, "abc")
	assert.Equal(t, "Bearer abc", req.Header.Get(HeaderAuthorization))

	SetBearer(req, "rotated")
	assert.Equal(t, []string{"Bearer rotated"}, req.Header.Values(HeaderAuthorization))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LAPTOPPRICE_TEST_DOTENV=from-file\nLAPTOPPRICE_TEST_PRESET=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LAPTOPPRICE_TEST_DOTENV") })
	t.Setenv("LAPTOPPRICE_TEST_PRESET", "from-env")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("LAPTOPPRICE_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("LAPTOPPRICE_TEST_PRESET"))
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := initLogger(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, initLogger(&buf, "loud").GetLevel())
}

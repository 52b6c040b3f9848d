package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgtm-migrator/qibot/internal/config"
	"github.com/lgtm-migrator/qibot/internal/resource"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestNew_WiresConfigLoggerAndResources(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "BOT_TOKEN=token\nSERVER_ID=10\nCUSTOM_LOG_THRESHOLD=debug\nGENERAL_CHANNEL_ID=4\n")
	writeFile(t, filepath.Join(dir, "assets", "data", "x.json"), `{"a":1}`)

	var logs bytes.Buffer
	env, err := New(config.NewStore(config.Options{Path: envPath, SkipProcessEnv: true}), Options{AssetRoot: dir, LogOutput: &logs})
	require.NoError(t, err)
	t.Cleanup(env.Close)

	assert.Equal(t, int64(10), env.Config.ServerID())
	assert.Equal(t, int64(4), env.Config.ChannelID("general"))
	assert.Equal(t, logrus.DebugLevel, env.Log.GetLevel())
	assert.Contains(t, logs.String(), "environment ready")

	doc, err := env.LoadJSON("x")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, doc)
}

func TestNew_ConfigurationErrorIsFatal(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "SERVER_ID=10\n")
	t.Setenv("BOT_TOKEN", "from-process")

	_, err := New(config.NewStore(config.Options{Path: envPath, SkipProcessEnv: true}), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
}

func TestEnv_FetchBytesAndAssetErrorsPropagate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_, _ = w.Write([]byte("payload"))
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	t.Cleanup(server.Close)

	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "BOT_TOKEN=token\nSERVER_ID=1\n")
	cfg, err := config.Load(config.Options{Path: envPath, SkipProcessEnv: true})
	require.NoError(t, err)

	var logs bytes.Buffer
	env := NewWithConfig(cfg, Options{AssetRoot: t.TempDir(), LogOutput: &logs})
	t.Cleanup(env.Close)

	body, err := env.FetchBytes(context.Background(), server.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), body)

	_, err = env.FetchBytes(context.Background(), server.URL+"/missing")
	var netErr *resource.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusGone, netErr.StatusCode)

	_, err = env.LoadJSON("absent")
	assert.True(t, errors.Is(err, resource.ErrAssetNotFound))

	assert.Equal(t, logrus.InfoLevel, env.Log.GetLevel())
	assert.Empty(t, logs.String())
}

type stubFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *stubFetcher) FetchBytes(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

func TestEnv_UsesInjectedFetcher(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "BOT_TOKEN=token\nSERVER_ID=1\nCUSTOM_LOG_THRESHOLD=debug\n")
	cfg, err := config.Load(config.Options{Path: envPath, SkipProcessEnv: true})
	require.NoError(t, err)

	fetcher := &stubFetcher{body: []byte("cached")}
	var logs bytes.Buffer
	env := NewWithConfig(cfg, Options{Fetcher: fetcher, LogOutput: &logs})

	body, err := env.FetchBytes(context.Background(), "https://example.invalid/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), body)
	assert.Equal(t, []string{"https://example.invalid/a.png"}, fetcher.urls)

	fetcher.err = &resource.NetworkError{URL: "https://example.invalid/b.png", StatusCode: http.StatusNotFound}
	_, err = env.FetchBytes(context.Background(), "https://example.invalid/b.png")
	var netErr *resource.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
	assert.Contains(t, logs.String(), "fetch failed")

	assert.NotPanics(t, env.Close)
}

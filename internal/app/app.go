package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgtm-migrator/qibot/internal/config"
	"github.com/lgtm-migrator/qibot/internal/resource"
)

// Options configure how the shared environment is built.
type Options struct {
	AssetRoot   string        // empty uses the working directory
	HTTPTimeout time.Duration // zero uses the client default
	LogOutput   io.Writer     // nil uses stderr

	// Fetcher replaces the pooled HTTP client. Close leaves it alone.
	Fetcher resource.Fetcher
}

// Env bundles everything command handlers need. It is built once at process
// start and passed by pointer; the fields are read-only afterwards.
type Env struct {
	Config *config.Config
	HTTP   resource.Fetcher
	Assets resource.Assets
	Log    *logrus.Logger

	client *resource.Client
}

// New takes the configuration from store and builds the shared resources. A
// configuration error is wrapped so the caller can abort startup.
func New(store *config.Store, opts Options) (*Env, error) {
	cfg, err := store.Get()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, opts), nil
}

// NewWithConfig builds the shared resources around an already loaded Config.
func NewWithConfig(cfg *config.Config, opts Options) *Env {
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(cfg.LogLevel())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	env := &Env{
		Config: cfg,
		HTTP:   opts.Fetcher,
		Assets: resource.Assets{Root: opts.AssetRoot},
		Log:    logger,
	}
	if env.HTTP == nil {
		env.client = resource.NewClient(resource.ClientOptions{Timeout: opts.HTTPTimeout})
		env.HTTP = env.client
	}

	logger.WithFields(logrus.Fields{
		"server_id": cfg.ServerID(),
		"dev_mode":  cfg.DevMode(),
		"prefix":    cfg.CommandPrefix(),
		"env_file":  cfg.Path(),
	}).Debug("environment ready")
	return env
}

// FetchBytes fetches url through the shared client.
func (e *Env) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := e.HTTP.FetchBytes(ctx, url)
	if err != nil {
		e.Log.WithError(err).WithField("url", url).Debug("fetch failed")
		return nil, err
	}
	return body, nil
}

// LoadJSON loads a named asset.
func (e *Env) LoadJSON(name string) (any, error) {
	doc, err := e.Assets.LoadJSON(name)
	if err != nil {
		e.Log.WithError(err).WithField("asset", name).Debug("asset load failed")
		return nil, err
	}
	return doc, nil
}

// Close releases the shared HTTP connections.
func (e *Env) Close() {
	if e == nil {
		return
	}
	e.client.Close()
	e.Log.Debug("environment closed")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

const (
	// Version is the bot release reported by the CLI and the HTTP user agent.
	Version = "0.2.0"

	// DefaultCommandPrefix is used when CUSTOM_COMMAND_PREFIX is not set.
	DefaultCommandPrefix = "."

	envFileName      = ".env"
	channelKeySuffix = "_CHANNEL_ID"
)

// settings lists the statically known keys. Dynamic channel keys are read
// straight from the value map.
type settings struct {
	BotToken      string `env:"BOT_TOKEN,required,notEmpty"`
	ServerID      int64  `env:"SERVER_ID,required,notEmpty"`
	CommandPrefix string `env:"CUSTOM_COMMAND_PREFIX"`
	LogThreshold  string `env:"CUSTOM_LOG_THRESHOLD"`
}

// knownKeys are the static keys taken from the process environment. Channel
// keys are matched by suffix.
var knownKeys = map[string]bool{
	"BOT_TOKEN":             true,
	"SERVER_ID":             true,
	"DEV_MODE_ENABLED":      true,
	"CUSTOM_COMMAND_PREFIX": true,
	"CUSTOM_LOG_THRESHOLD":  true,
}

// requiredKeys keep their empty values so validation can name them.
var requiredKeys = map[string]bool{
	"BOT_TOKEN": true,
	"SERVER_ID": true,
}

// Config is the immutable process configuration.
type Config struct {
	botToken string
	serverID int64
	devMode  bool
	path     string

	commandPrefix string
	logThreshold  string
	values        map[string]string
}

// Options control where Load reads values from.
type Options struct {
	// Path names the .env file explicitly. Empty walks up from Dir.
	Path string
	// Dir is where the .env search starts. Empty uses the working directory.
	Dir string
	// SkipProcessEnv ignores the process environment entirely.
	SkipProcessEnv bool
}

// Load discovers and parses the environment file, overlays the recognised
// keys found in the process environment and validates the required keys.
func Load(opts Options) (*Config, error) {
	path, err := resolvePath(opts)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil {
			return nil, &ConfigurationError{Err: fmt.Errorf("read %s: %w", path, err)}
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	if !opts.SkipProcessEnv {
		for k, v := range env.ToMap(os.Environ()) {
			if isKnownKey(k) && strings.TrimSpace(v) != "" {
				values[k] = v
			}
		}
	}

	return fromValues(path, values)
}

func isKnownKey(key string) bool {
	if knownKeys[key] {
		return true
	}
	name, ok := strings.CutSuffix(key, channelKeySuffix)
	return ok && name != ""
}

// normalize trims every value and drops blank optional keys, so an empty
// assignment behaves the same as a missing one.
func normalize(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		v = strings.TrimSpace(v)
		if v == "" && !requiredKeys[k] {
			continue
		}
		out[k] = v
	}
	return out
}

func fromValues(path string, values map[string]string) (*Config, error) {
	values = normalize(values)

	var raw settings
	if err := env.ParseWithOptions(&raw, env.Options{Environment: values}); err != nil {
		return nil, toConfigurationError(err)
	}

	return &Config{
		botToken:      raw.BotToken,
		serverID:      raw.ServerID,
		devMode:       parseFlag(values["DEV_MODE_ENABLED"]),
		path:          path,
		commandPrefix: raw.CommandPrefix,
		logThreshold:  raw.LogThreshold,
		values:        values,
	}, nil
}

// BotToken returns the platform authentication token.
func (c *Config) BotToken() string { return c.botToken }

// ServerID returns the primary guild id.
func (c *Config) ServerID() int64 { return c.serverID }

// DevMode reports whether DEV_MODE_ENABLED is on.
func (c *Config) DevMode() bool { return c.devMode }

// Path is the .env file the values came from, empty when none was found.
func (c *Config) Path() string { return c.path }

// ChannelID returns the value of "<NAME>_CHANNEL_ID". Unset keys and values
// that are not integers both yield 0, which callers read as "no channel".
func (c *Config) ChannelID(name string) int64 {
	if c == nil {
		return 0
	}
	raw, ok := c.values[ChannelKey(name)]
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ChannelKey builds the configuration key for a named channel.
func ChannelKey(name string) string {
	return strings.ToUpper(name) + channelKeySuffix
}

// CustomCommandPrefix reports CUSTOM_COMMAND_PREFIX and whether it was set.
func (c *Config) CustomCommandPrefix() (string, bool) {
	return c.commandPrefix, c.commandPrefix != ""
}

// CommandPrefix returns the custom prefix when set, otherwise the default.
func (c *Config) CommandPrefix() string {
	if prefix, ok := c.CustomCommandPrefix(); ok {
		return prefix
	}
	return DefaultCommandPrefix
}

// CustomLogThreshold reports CUSTOM_LOG_THRESHOLD and whether it was set.
func (c *Config) CustomLogThreshold() (string, bool) {
	return c.logThreshold, c.logThreshold != ""
}

// LogLevel parses the custom log threshold, falling back to info.
func (c *Config) LogLevel() logrus.Level {
	threshold, ok := c.CustomLogThreshold()
	if !ok {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(threshold)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Lookup returns a raw value from the loaded mapping.
func (c *Config) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Redacted is a printable view of Config with the token masked.
type Redacted struct {
	Path          string           `toml:"path,omitempty"`
	BotToken      string           `toml:"bot_token"`
	ServerID      int64            `toml:"server_id"`
	DevMode       bool             `toml:"dev_mode_enabled"`
	CommandPrefix string           `toml:"command_prefix"`
	LogLevel      string           `toml:"log_level"`
	Channels      map[string]int64 `toml:"channels,omitempty"`
}

// Redacted returns the printable view.
func (c *Config) Redacted() Redacted {
	r := Redacted{
		Path:          c.path,
		BotToken:      maskToken(c.botToken),
		ServerID:      c.serverID,
		DevMode:       c.devMode,
		CommandPrefix: c.CommandPrefix(),
		LogLevel:      c.LogLevel().String(),
	}
	for key := range c.values {
		if name, ok := strings.CutSuffix(key, channelKeySuffix); ok && name != "" {
			if r.Channels == nil {
				r.Channels = map[string]int64{}
			}
			r.Channels[strings.ToLower(name)] = c.ChannelID(name)
		}
	}
	return r
}

// String renders the redacted view so printing a Config never shows the token.
func (c *Config) String() string {
	return fmt.Sprintf("%+v", c.Redacted())
}

// TOML renders the redacted view.
func (c *Config) TOML() ([]byte, error) {
	bytes, err := toml.Marshal(c.Redacted())
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return bytes, nil
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-4)
}

// parseFlag reads DEV_MODE_ENABLED. Unrecognised non-empty values count as
// enabled.
func parseFlag(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	switch strings.ToLower(value) {
	case "no", "n", "off":
		return false
	default:
		return true
	}
}

func toConfigurationError(err error) error {
	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 0 {
		err = agg.Errors[0]
	}

	var notSet env.VarIsNotSetError
	if errors.As(err, &notSet) {
		return &ConfigurationError{Key: notSet.Key, Err: errors.New("required key is missing")}
	}
	var empty env.EmptyVarError
	if errors.As(err, &empty) {
		return &ConfigurationError{Key: empty.Key, Err: errors.New("required key is empty")}
	}
	var parse env.ParseError
	if errors.As(err, &parse) {
		return &ConfigurationError{Key: keyForField(parse.Name), Err: parse.Err}
	}
	return &ConfigurationError{Err: err}
}

func keyForField(field string) string {
	f, ok := reflect.TypeOf(settings{}).FieldByName(field)
	if !ok {
		return field
	}
	key, _, _ := strings.Cut(f.Tag.Get("env"), ",")
	return key
}

func resolvePath(opts Options) (string, error) {
	if strings.TrimSpace(opts.Path) != "" {
		path, err := expandPath(opts.Path)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("open config: %w", err)
		}
		return path, nil
	}

	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working dir: %w", err)
		}
		dir = wd
	}
	start, err := expandPath(dir)
	if err != nil {
		return "", err
	}
	return findEnvFile(start), nil
}

// findEnvFile returns the first .env in dir or any of its parents.
func findEnvFile(dir string) string {
	for {
		candidate := filepath.Join(dir, envFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

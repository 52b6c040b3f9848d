// Package config loads the bot's process configuration from an
// environment-style file.
//
// # Overview
//
// Configuration is read once at process start into an immutable Config that
// is passed explicitly to whatever needs it. There is no package level state:
// Store provides the once-only loading for callers that share a handle.
//
// # Discovery
//
// Load resolves the source in this order:
//
//  1. If Options.Path is set, use it (a missing file is an error)
//  2. Otherwise look for .env in Options.Dir (default: working directory)
//  3. Walk up through the parent directories until a .env is found
//  4. If none is found, continue with the process environment only
//
// Only the recognised keys listed below are taken from the process
// environment, and only when non-empty. They override values from the file
// unless Options.SkipProcessEnv is set. Unrelated variables never enter the
// Config, so Lookup and printing a Config cannot expose them.
//
// Values are trimmed before parsing. An optional key assigned an empty value
// is treated as absent, whether it comes from the file or the environment.
//
// # File Format
//
// One KEY=value pair per line, lines starting with # are comments:
//
//	BOT_TOKEN=abc.def.ghi
//	SERVER_ID=123456789012345678
//	DEV_MODE_ENABLED=true
//	CUSTOM_COMMAND_PREFIX=!
//	CUSTOM_LOG_THRESHOLD=debug
//	GENERAL_CHANNEL_ID=234567890123456789
//
// # Keys
//
//   - BOT_TOKEN: required, non-empty
//   - SERVER_ID: required, integer
//   - DEV_MODE_ENABLED: optional, boolean-ish, default false
//   - CUSTOM_COMMAND_PREFIX: optional, CommandPrefix falls back to "."
//   - CUSTOM_LOG_THRESHOLD: optional, LogLevel falls back to info
//   - <NAME>_CHANNEL_ID: optional, read through ChannelID
//
// # Error Handling
//
// Load returns a *ConfigurationError when a required key is missing, empty or
// not parseable, or when an explicit path cannot be read. Optional keys never
// fail. ChannelID returns 0 for any channel that is not configured or whose
// value is not an integer; callers treat 0 as "no channel".
//
// Config is read through getters. Its String method prints the redacted view
// with the token masked.
//
// # Usage Example
//
//	store := config.NewStore(config.Options{})
//	cfg, err := store.Get()
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//	general := cfg.ChannelID("general")
package config

// Package app is the composition root for the bot's shared layer.
//
// # Overview
//
// New wires configuration, logging, the pooled HTTP client and the asset
// loader into one Env. The Env is created once at process start and handed to
// every component that needs it instead of being reached through globals.
//
//	┌──────────────┐
//	│   New()      │
//	└──────┬───────┘
//	       ├─────> config.NewStore().Get()  read .env once
//	       ├─────> logrus.New()             level from CUSTOM_LOG_THRESHOLD
//	       ├─────> resource.NewClient()     shared connection pool
//	       └─────> resource.Assets{}        assets/data/<name>.json
//
// # Error Handling
//
// A *config.ConfigurationError from New is fatal: the bot cannot run without
// a token and a server id. Errors from FetchBytes and LoadJSON are returned to
// the caller unchanged and only logged at debug level.
//
// # Shutdown
//
// The owner of the Env calls Close once, after the last request, to release
// pooled connections.
package app

// Package resource provides the bot's two I/O helpers: fetching raw bytes over
// HTTP and loading local JSON assets.
//
// # HTTP
//
// Client wraps a single pooled *http.Client meant to be created once at
// process start and shared by all callers. FetchBytes does not retry; a
// caller wanting a deadline passes a context with one. The owner of the
// Client calls Close during shutdown.
//
// # Assets
//
// Assets resolves a short name to assets/data/<name>.json under its Root and
// parses the file as UTF-8 JSON. Missing files yield an *AssetError wrapping
// ErrAssetNotFound; invalid contents yield a *MalformedAssetError.
//
// A leading UTF-8 byte order mark is stripped before decoding, so files saved
// by editors that write one still load. encoding/json alone would reject
// them as malformed.
//
//	var quotes []string
//	if err := (resource.Assets{}).Decode("quotes", &quotes); err != nil {
//		if errors.Is(err, resource.ErrAssetNotFound) {
//			// report to the user
//		}
//	}
package resource

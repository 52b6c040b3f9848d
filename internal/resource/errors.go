package resource

import (
	"errors"
	"fmt"
)

// ErrAssetNotFound is wrapped by AssetError when the asset file is missing.
var ErrAssetNotFound = errors.New("asset not found")

// NetworkError reports a failed fetch. StatusCode is zero when no response
// was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: returned status %d", e.URL, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AssetError reports an asset that could not be read.
type AssetError struct {
	Name string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// MalformedAssetError reports an asset whose contents are not valid JSON.
type MalformedAssetError struct {
	Name string
	Path string
	Err  error
}

func (e *MalformedAssetError) Error() string {
	return fmt.Sprintf("asset %q (%s) is malformed: %v", e.Name, e.Path, e.Err)
}

func (e *MalformedAssetError) Unwrap() error {
	return e.Err
}

package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/lgtm-migrator/qibot/internal/tmpl"
)

var assetPath = tmpl.New("assets/data/${name}.json")

// Assets loads read-only JSON documents by short name from
// <Root>/assets/data/<name>.json. Nothing is cached: every call reads and
// parses the file again.
type Assets struct {
	// Root is the directory containing assets/. Empty means the working
	// directory.
	Root string
}

// Path returns the file an asset name resolves to.
func (a Assets) Path(name string) string {
	rel := filepath.FromSlash(assetPath.MustSubstitute(tmpl.Vars{"name": name}))
	if a.Root == "" {
		return rel
	}
	return filepath.Join(a.Root, rel)
}

// LoadJSON returns the parsed document: map[string]any for objects, []any for
// arrays.
func (a Assets) LoadJSON(name string) (any, error) {
	var doc any
	if err := a.Decode(name, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode parses the named asset into dest.
func (a Assets) Decode(name string, dest any) error {
	path := a.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &AssetError{Name: name, Path: path, Err: ErrAssetNotFound}
		}
		return &AssetError{Name: name, Path: path, Err: fmt.Errorf("read asset: %w", err)}
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return &MalformedAssetError{Name: name, Path: path, Err: errors.New("not valid UTF-8")}
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &MalformedAssetError{Name: name, Path: path, Err: err}
	}
	return nil
}

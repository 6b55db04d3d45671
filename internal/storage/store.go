package storage

import (
	"context"
	"path"
	"path/filepath"
	"strings"
)

// Store creates directories and writes files.
type Store interface {
	MkdirAll(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, name string, data []byte) error
}

// ContentType is the MIME type manifests are uploaded with.
const ContentType = "application/javascript"

// objectKey maps a file name to a key under prefix. Host separators are
// converted to forward slashes and the result never starts with "/".
func objectKey(prefix, name string) string {
	key := path.Clean(strings.ReplaceAll(filepath.ToSlash(name), `\`, "/"))
	key = strings.TrimLeft(key, "/")
	if key == "." {
		key = ""
	}

	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

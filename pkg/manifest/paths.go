package manifest

import (
	"path/filepath"
	"strings"
)

// Posix converts host path separators, and any backslash, to forward slashes.
func Posix(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// ImportPath returns the specifier a module in dir uses to import file, where
// file is relative to the routes source root src. Relative dir or src are
// resolved against root when the other one is absolute. The result always
// uses forward slashes and starts with "./", "../" or "/".
func ImportPath(root, dir, src, file string) string {
	target := filepath.Join(filepath.FromSlash(Posix(src)), filepath.FromSlash(Posix(file)))
	from := filepath.FromSlash(Posix(dir))

	if filepath.IsAbs(target) != filepath.IsAbs(from) {
		target = absolute(root, target)
		from = absolute(root, from)
	}

	rel, err := filepath.Rel(from, target)
	if err != nil {
		return Posix(target)
	}

	rel = Posix(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") || strings.HasPrefix(rel, "/") {
		return rel
	}
	return "./" + rel
}

func absolute(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if root != "" {
		return filepath.Join(root, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

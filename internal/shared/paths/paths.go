package paths

import "strings"

// Join joins base and path with exactly one separating slash.
//
// At most one trailing slash is stripped from base. An empty path yields the
// stripped base. At most one trailing slash is stripped from the result.
func Join(base, path string) string {
	base = strings.TrimSuffix(base, "/")
	if path == "" {
		return base
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimSuffix(base+path, "/")
}

// Base is a normalized URL prefix that endpoint paths are joined onto.
// It is a plain value and safe to share between goroutines.
type Base string

// New returns the Base for base joined with segment.
func New(base, segment string) Base {
	return Base(Join(base, segment))
}

// URL returns the absolute URL of path below the base.
func (b Base) URL(path string) string {
	return Join(string(b), path)
}

// String returns the base URL
func (b Base) String() string {
	return string(b)
}

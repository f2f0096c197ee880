package ignore

import (
	"path/filepath"
	"strings"
)

// Matches reports whether relativePath is ignored by the loaded patterns.
// The path is queried as given and again with a trailing separator so that
// directory-only patterns ("build/") are honoured; either query matching is
// enough. isDir does not narrow the queries.
func (f *Filter) Matches(relativePath string, isDir bool) bool {
	if f == nil || f.matcher == nil {
		return false
	}

	// Never match the root itself
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := strings.TrimSuffix(filepath.ToSlash(relativePath), "/")
	return f.ignored(unixPath, false) || f.ignored(unixPath, true)
}

func (f *Filter) ignored(unixPath string, isDir bool) (ignored bool) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			ignored = false
		}
	}()

	m := f.matcher.Relative(unixPath, isDir)
	if m == nil {
		return false
	}
	if !m.Ignore() {
		f.logger.Debug("ignore.Matches: %q explicitly included by %s", unixPath, m)
		return false
	}
	return true
}

package walker

import "path/filepath"

// ResolvePath formats path for output: absolute when absolute is set,
// otherwise relative to baseDir ("." for the base itself).
func ResolvePath(path, baseDir string, absolute bool) string {
	if absolute {
		abs, err := filepath.Abs(path)
		if err != nil {
			return filepath.Clean(path)
		}
		return abs
	}

	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return filepath.Clean(path)
	}
	return rel
}

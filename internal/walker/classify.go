package walker

import (
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-struct/internal/ignore"
)

// Classify decides how the entry at fullPath is treated. Paths that resolve
// outside baseDir are always included and never reach the filter.
func Classify(baseDir, fullPath string, isDir bool, modes ModeConfig, filter ignore.Matcher) Status {
	relativePath, err := filepath.Rel(baseDir, fullPath)
	if err != nil || escapesBase(relativePath) {
		return StatusIncluded
	}

	isHidden := isDir && strings.HasPrefix(filepath.Base(fullPath), ".")

	mode := modes.FileMode
	switch {
	case isHidden:
		mode = modes.HiddenMode
	case isDir:
		mode = modes.DirMode
	}

	if filter == nil || !filter.Matches(relativePath, isDir) {
		return StatusIncluded
	}

	switch mode {
	case ModeIgnore:
		return StatusIgnored
	case ModeSeal:
		// sealing needs children to hide
		if isDir {
			return StatusSealed
		}
		return StatusIgnored
	case ModeRedact:
		return StatusRedacted
	default:
		return StatusIgnored
	}
}

func escapesBase(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

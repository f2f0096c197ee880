// Package setup turns the CLI configuration into walker options.
package setup

import (
	"strings"

	"github.com/bethropolis/dir-struct/internal/config"
	"github.com/bethropolis/dir-struct/internal/utils"
	"github.com/bethropolis/dir-struct/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// ConfigureWalker builds the walker options for cfg. The returned Tracker
// is nil unless skipped entries were requested.
func ConfigureWalker(cfg *config.Config, log utils.Logger, infoLog InfoLogger) ([]walker.Option, *walker.Tracker) {
	log = utils.OrNoop(log)

	modes, invalid := cfg.Modes()
	for _, flagName := range invalid {
		log.Warn("Unrecognised value for --%s, falling back to %q.", flagName, walker.ModeIgnore)
	}

	infoLog("Using ignore file: %s", cfg.IgnoreFile)
	infoLog("Modes: dir=%s, file=%s, hidden=%s", modes.DirMode, modes.FileMode, modes.HiddenMode)
	if cfg.Recursive {
		infoLog("Recursive traversal enabled.")
	} else {
		infoLog("Listing the first level only.")
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithIgnoreFile(strings.TrimSpace(cfg.IgnoreFile)),
		walker.WithModes(modes),
		walker.WithAbsolutePaths(cfg.AbsolutePaths),
		walker.WithRecursive(cfg.Recursive),
		walker.WithRedactedNames(cfg.RedactedDirName, cfg.RedactedFileName),
	}

	var tracker *walker.Tracker
	if cfg.ShowSkipped {
		log.Debug("Skipped entry tracking enabled")
		tracker = walker.NewTracker(100)
		walkOptions = append(walkOptions, walker.WithTracker(tracker))
	}

	return walkOptions, tracker
}

// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-struct/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Stats counts the entries of a structure tree below the root.
type Stats struct {
	Dirs     int
	Files    int
	Symlinks int
}

// Collect walks root and counts its descendants.
func Collect(root *walker.Entry) Stats {
	var s Stats
	if root == nil {
		return s
	}
	stack := append([]*walker.Entry(nil), root.Children...)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case e.Sym:
			s.Symlinks++
		case e.IsDir():
			s.Dirs++
			stack = append(stack, e.Children...)
		default:
			s.Files++
		}
	}
	return s
}

// DisplayResults shows the end results of a scan operation
func DisplayResults(logger Logger, stats Stats, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Found %d directories, %d files and %d symlinks.", stats.Dirs, stats.Files, stats.Symlinks)
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		// Sort for consistent output
		sort.Slice(skippedItems, func(i, j int) bool {
			return skippedItems[i].Path < skippedItems[j].Path
		})
		for _, item := range skippedItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}

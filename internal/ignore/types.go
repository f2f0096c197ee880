// Package ignore loads an ignore file and answers whether a path relative
// to the traversal root is matched by its patterns.
package ignore

import (
	"github.com/bethropolis/dir-struct/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// DefaultFile is the ignore file consulted when none is named.
const DefaultFile = ".gitignore"

// Filter is an immutable set of gitignore-style patterns.
type Filter struct {
	// nil when no ignore file was found
	matcher gitignore.GitIgnore

	source   string
	patterns int
	logger   utils.Logger
}

// Matcher is the lookup the walker needs from a Filter.
type Matcher interface {
	Matches(relativePath string, isDir bool) bool
}

var _ Matcher = (*Filter)(nil)

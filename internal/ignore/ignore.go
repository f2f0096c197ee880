package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-struct/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Load reads <baseDir>/<fileName> and compiles its patterns. A file that
// cannot be stat'ed (missing, or inside an unreadable directory) yields an
// empty Filter that matches nothing. A file that exists but cannot be read
// is an error.
func Load(baseDir, fileName string, opts ...Option) (*Filter, error) {
	if fileName == "" {
		fileName = DefaultFile
	}

	f := newFilter(filepath.Join(baseDir, fileName), opts)
	f.logger.Debug("ignore.Load: Reading patterns from %s", f.source)

	if _, err := os.Stat(f.source); err != nil {
		f.logger.Debug("ignore.Load: %s not available (%v), no rules loaded", f.source, err)
		return f, nil
	}

	data, err := os.ReadFile(f.source)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to read %q: %w", f.source, err)
	}

	f.compile(baseDir, splitLines(string(data)))
	f.logger.Debug("ignore.Load: Loaded %d patterns from %s", f.patterns, f.source)
	return f, nil
}

// FromLines compiles an in-memory list of pattern lines.
func FromLines(baseDir string, lines []string, opts ...Option) *Filter {
	f := newFilter("", opts)
	f.compile(baseDir, lines)
	return f
}

// Len returns the number of effective (non-blank, non-comment) patterns.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return f.patterns
}

// Source returns the path the patterns were read from, if any.
func (f *Filter) Source() string {
	if f == nil {
		return ""
	}
	return f.source
}

func newFilter(source string, opts []Option) *Filter {
	f := &Filter{
		source: source,
		logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) compile(baseDir string, lines []string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		f.patterns++
	}
	if f.patterns == 0 {
		return
	}

	// Malformed patterns are reported and skipped; parsing continues.
	onError := func(e gitignore.Error) bool {
		f.logger.Warn("ignore: skipping invalid pattern in %s: %v", f.source, e)
		return true
	}
	f.matcher = gitignore.New(strings.NewReader(strings.Join(lines, "\n")), baseDir, onError)
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

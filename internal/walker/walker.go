package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/dir-struct/internal/ignore"
)

// Generate validates root, loads its ignore file once and returns the
// filtered tree. The returned root node is always a directory node, even
// when root itself could not be listed.
func Generate(root string, opts ...Option) (*Entry, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if _, err := os.Stat(root); err != nil {
		return nil, &RootNotFoundError{Path: root, Err: err}
	}

	filter, err := ignore.Load(root, options.IgnoreFile, ignore.WithLogger(options.Logger))
	if err != nil {
		return nil, err
	}
	options.Logger.Debug("walker.Generate: loaded %d ignore patterns from %q", filter.Len(), filter.Source())

	options.Logger.Debug("walker.Generate started. Root: %s, Recursive: %v, Absolute: %v, Modes: dir=%s file=%s hidden=%s",
		root, options.Recursive, options.AbsolutePaths,
		options.Modes.DirMode, options.Modes.FileMode, options.Modes.HiddenMode)

	result := walk(root, options, filter)

	options.Logger.Debug("walker.Generate: Total walk time: %s", time.Since(startTime))
	return result, nil
}

// pending is a directory node whose children have not been listed yet.
type pending struct {
	dir  string
	node *Entry
}

// walk traverses baseDir depth-first with an explicit stack. Nodes are
// linked into their parent before being expanded, so sibling order matches
// the directory listing regardless of the order frames are popped.
func walk(baseDir string, options Options, filter ignore.Matcher) *Entry {
	root := newDir(ResolvePath(baseDir, baseDir, options.AbsolutePaths))

	stack := []pending{{dir: baseDir, node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		subdirs := expand(top, baseDir, options, filter)
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return root
}

// expand lists p.dir into p.node and returns the included subdirectories
// that still need listing. An unreadable directory keeps empty children.
func expand(p pending, baseDir string, options Options, filter ignore.Matcher) []pending {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}

	var subdirs []pending
	for _, d := range entries {
		fullPath := filepath.Join(p.dir, d.Name())
		resolved := ResolvePath(fullPath, baseDir, options.AbsolutePaths)

		// Symlinks are never followed.
		if d.Type()&fs.ModeSymlink != 0 {
			options.Logger.Debug("Walker: Symlink %q", resolved)
			p.node.add(&Entry{Path: resolved, Sym: true})
			continue
		}

		isDir := d.IsDir()
		status := Classify(baseDir, fullPath, isDir, options.Modes, filter)
		if status != StatusIncluded {
			options.Logger.Debug("Walker: %q %s by ignore rules", resolved, status)
			options.Tracker.Track(ResolvePath(fullPath, baseDir, false), reasonFor(status), isDir)
		}

		switch status {
		case StatusIgnored:
			continue
		case StatusSealed:
			p.node.add(newDir(resolved))
		case StatusRedacted:
			if isDir {
				p.node.add(newDir(options.RedactedDirName))
			} else {
				p.node.add(&Entry{Path: options.RedactedFileName})
			}
		default:
			if !isDir {
				p.node.add(&Entry{Path: resolved})
				continue
			}
			child := newDir(resolved)
			p.node.add(child)
			if options.Recursive {
				subdirs = append(subdirs, pending{dir: fullPath, node: child})
			}
		}
	}
	return subdirs
}

// Package walker builds a filtered snapshot of a directory tree.
package walker

import (
	"encoding/json"
	"strings"
	"sync"
)

// Entry is one node of the output tree. Directories always carry a non-nil
// Children slice (possibly empty); files and symlinks carry nil.
type Entry struct {
	Path     string
	Children []*Entry
	Sym      bool
}

// IsDir reports whether e is a directory node.
func (e *Entry) IsDir() bool {
	return e != nil && e.Children != nil
}

func newDir(path string) *Entry {
	return &Entry{Path: path, Children: []*Entry{}}
}

func (e *Entry) add(child *Entry) {
	e.Children = append(e.Children, child)
}

// entryDoc is the serialized form: "children" is present only for
// directories and "sym" only for symlinks.
type entryDoc struct {
	Path     string    `json:"path" yaml:"path"`
	Children *[]*Entry `json:"children,omitempty" yaml:"children,omitempty"`
	Sym      bool      `json:"sym,omitempty" yaml:"sym,omitempty"`
}

func (e *Entry) doc() entryDoc {
	d := entryDoc{Path: e.Path, Sym: e.Sym}
	if e.Children != nil && !e.Sym {
		d.Children = &e.Children
	}
	return d
}

// MarshalJSON implements json.Marshaler.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (e *Entry) MarshalYAML() (interface{}, error) {
	return e.doc(), nil
}

// Mode is the disposition applied to an entry matched by the ignore file.
type Mode int

const (
	ModeIgnore Mode = iota
	ModeSeal
	ModeRedact
)

func (m Mode) String() string {
	switch m {
	case ModeSeal:
		return "seal"
	case ModeRedact:
		return "redact"
	default:
		return "ignore"
	}
}

// ParseMode converts "ignore", "seal" or "redact" to a Mode. The second
// result is false when s was not recognised and ModeIgnore was substituted.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return ModeIgnore, true
	case "seal":
		return ModeSeal, true
	case "redact":
		return ModeRedact, true
	default:
		return ModeIgnore, false
	}
}

// ParseFileMode is ParseMode restricted to the modes legal for files.
// Files have no children, so "seal" falls back to ModeIgnore.
func ParseFileMode(s string) (Mode, bool) {
	m, ok := ParseMode(s)
	if m == ModeSeal {
		return ModeIgnore, false
	}
	return m, ok
}

// ModeConfig selects a Mode per entry category.
type ModeConfig struct {
	DirMode    Mode
	FileMode   Mode
	HiddenMode Mode // directories whose name starts with "."
}

// Status is the outcome of classifying a single entry.
type Status int

const (
	StatusIncluded Status = iota
	StatusIgnored
	StatusSealed
	StatusRedacted
)

func (s Status) String() string {
	switch s {
	case StatusIgnored:
		return "ignored"
	case StatusSealed:
		return "sealed"
	case StatusRedacted:
		return "redacted"
	default:
		return "included"
	}
}

// SkippedReason clarifies why an entry was not included as-is.
type SkippedReason string

const (
	ReasonIgnored  SkippedReason = "Ignored (Ignore Rule)"
	ReasonSealed   SkippedReason = "Sealed (Contents Hidden)"
	ReasonRedacted SkippedReason = "Redacted (Name Hidden)"
)

func reasonFor(s Status) SkippedReason {
	switch s {
	case StatusSealed:
		return ReasonSealed
	case StatusRedacted:
		return ReasonRedacted
	default:
		return ReasonIgnored
	}
}

// SkippedItem holds information about an entry matched by the ignore file.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// Tracker records skipped entries. It is safe for concurrent use.
type Tracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewTracker creates a Tracker with room for capacity items.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item. A nil Tracker ignores the call.
func (t *Tracker) Track(path string, reason SkippedReason, isDir bool) {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.items = append(t.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items.
func (t *Tracker) Items() []SkippedItem {
	if t == nil {
		return nil
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	out := make([]SkippedItem, len(t.items))
	copy(out, t.items)
	return out
}

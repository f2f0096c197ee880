// Package printer handles output formatting of the structure tree
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

// Printer writes a structure tree to the configured output destination
type Printer struct {
	output       io.Writer
	count        atomic.Int64
	useColors    bool
	format       string
	redactedDir  string
	redactedFile string
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:       os.Stdout,
		useColors:    true,
		format:       FormatJSON,
		redactedDir:  walker.DefaultRedactedDirName,
		redactedFile: walker.DefaultRedactedFileName,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output. Only the tree format is
// colored.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithFormat selects json, yaml or tree.
func (p *Printer) WithFormat(format string) *Printer {
	p.format = format
	return p
}

// WithRedactedNames tells the tree format which names are placeholders.
func (p *Printer) WithRedactedNames(dirName, fileName string) *Printer {
	p.redactedDir = dirName
	p.redactedFile = fileName
	return p
}

// Print writes root in the selected format.
func (p *Printer) Print(root *walker.Entry) error {
	if root == nil {
		return fmt.Errorf("printer: nil tree")
	}
	p.count.Store(countEntries(root))

	switch p.format {
	case FormatJSON:
		return p.printJSON(root)
	case FormatYAML:
		return p.printYAML(root)
	case FormatTree:
		return p.printTree(root)
	default:
		return fmt.Errorf("printer: unknown format %q", p.format)
	}
}

// GetCount returns the number of entries in the last printed tree,
// including the root.
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}

func (p *Printer) printJSON(root *walker.Entry) error {
	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("printer: failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(root *walker.Entry) error {
	enc := yaml.NewEncoder(p.output)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("printer: failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func (p *Printer) printTree(root *walker.Entry) error {
	if _, err := fmt.Fprintln(p.output, p.paint(root, root.Path)); err != nil {
		return err
	}
	return p.printChildren(root.Children, "")
}

func (p *Printer) printChildren(children []*walker.Entry, indent string) error {
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}

		if _, err := fmt.Fprintf(p.output, "%s%s%s\n", indent, branch, p.label(child)); err != nil {
			return err
		}
		if child.IsDir() {
			if err := p.printChildren(child.Children, indent+next); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) label(e *walker.Entry) string {
	name := e.Path
	if !p.isPlaceholder(e) {
		name = filepath.Base(e.Path)
	}
	switch {
	case e.Sym:
		name += "@"
	case e.IsDir():
		name += "/"
	}
	return p.paint(e, name)
}

func (p *Printer) paint(e *walker.Entry, text string) string {
	if !p.useColors {
		return text
	}
	switch {
	case p.isPlaceholder(e):
		return color.YellowString("%s", text)
	case e.Sym:
		return color.CyanString("%s", text)
	case e.IsDir():
		return color.New(color.FgBlue, color.Bold).Sprint(text)
	default:
		return text
	}
}

// isPlaceholder reports whether e is a redacted stand-in. Placeholders are
// recognised by path alone, so a real first-level directory named like the
// directory placeholder (relative mode) is labelled and colored as one too.
func (p *Printer) isPlaceholder(e *walker.Entry) bool {
	if e.Sym {
		return false
	}
	if e.IsDir() {
		return e.Path == p.redactedDir
	}
	return e.Path == p.redactedFile
}

func countEntries(e *walker.Entry) int64 {
	n := int64(1)
	for _, child := range e.Children {
		n += countEntries(child)
	}
	return n
}

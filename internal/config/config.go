// Package config holds the command-line configuration of dir-struct.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bethropolis/dir-struct/internal/ignore"
	"github.com/bethropolis/dir-struct/internal/printer"
	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Output formats accepted by --format.
const (
	FormatJSON = printer.FormatJSON
	FormatYAML = printer.FormatYAML
	FormatTree = printer.FormatTree
)

// Version is reported by --version.
const Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir    string
	IgnoreFile string

	// Disposition of entries matched by the ignore file
	DirMode    string
	FileMode   string
	HiddenMode string

	// Traversal settings
	AbsolutePaths    bool
	Recursive        bool
	RedactedDirName  string
	RedactedFileName string
	Timeout          time.Duration

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Output settings
	Format      string
	OutputFile  string
	ShowSkipped bool
	ShowSummary bool

	// Version info
	ShowVersion bool
	Version     string
}

// Default returns a Config with every option at its default.
func Default() *Config {
	return &Config{
		RootDir:          ".",
		IgnoreFile:       ignore.DefaultFile,
		DirMode:          walker.ModeIgnore.String(),
		FileMode:         walker.ModeIgnore.String(),
		HiddenMode:       walker.ModeIgnore.String(),
		RedactedDirName:  walker.DefaultRedactedDirName,
		RedactedFileName: walker.DefaultRedactedFileName,
		LogLevel:         "INFO",
		Format:           FormatJSON,
		Version:          Version,
	}
}

// BindFlags registers the configuration flags on fs, using the current
// field values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.IgnoreFile, "ignore-file", c.IgnoreFile, "Ignore file read from the root directory")
	fs.StringVar(&c.DirMode, "dir-mode", c.DirMode, "Treatment of matched directories (ignore, seal, redact)")
	fs.StringVar(&c.FileMode, "file-mode", c.FileMode, "Treatment of matched files (ignore, redact)")
	fs.StringVar(&c.HiddenMode, "hidden-mode", c.HiddenMode, "Treatment of matched hidden directories (ignore, seal, redact)")
	fs.BoolVarP(&c.AbsolutePaths, "absolute", "a", c.AbsolutePaths, "Use absolute paths instead of paths relative to the root")
	fs.BoolVarP(&c.Recursive, "recursive", "r", c.Recursive, "Descend below the first level")
	fs.StringVar(&c.RedactedDirName, "redacted-dir-name", c.RedactedDirName, "Placeholder name for redacted directories")
	fs.StringVar(&c.RedactedFileName, "redacted-file-name", c.RedactedFileName, "Placeholder name for redacted files")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Maximum execution time (e.g., '30s', '5m')")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable color output")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "Output format (json, yaml, tree)")
	fs.StringVarP(&c.OutputFile, "output", "o", c.OutputFile, "Output to file instead of stdout")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", c.ShowSkipped, "Show the entries that were ignored, sealed or redacted")
	fs.BoolVar(&c.ShowSummary, "summary", c.ShowSummary, "Show entry counts after the scan")
	fs.BoolVar(&c.ShowVersion, "version", c.ShowVersion, "Show version information")
}

// Finalize derives settings that depend on the environment. Call it after
// flags are parsed.
func (c *Config) Finalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""
}

// Validate rejects settings that cannot be recovered from.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatTree:
		return nil
	default:
		return fmt.Errorf("config: unknown output format %q (want json, yaml or tree)", c.Format)
	}
}

// Modes parses the mode strings. Unrecognised values fall back to ignore;
// their flag names are returned so the caller can warn about them.
func (c *Config) Modes() (walker.ModeConfig, []string) {
	var invalid []string

	dirMode, ok := walker.ParseMode(c.DirMode)
	if !ok {
		invalid = append(invalid, "dir-mode")
	}
	fileMode, ok := walker.ParseFileMode(c.FileMode)
	if !ok {
		invalid = append(invalid, "file-mode")
	}
	hiddenMode, ok := walker.ParseMode(c.HiddenMode)
	if !ok {
		invalid = append(invalid, "hidden-mode")
	}

	return walker.ModeConfig{DirMode: dirMode, FileMode: fileMode, HiddenMode: hiddenMode}, invalid
}

package walker

import (
	"github.com/bethropolis/dir-struct/internal/ignore"
	"github.com/bethropolis/dir-struct/internal/utils"
)

const (
	DefaultRedactedDirName  = "!dir"
	DefaultRedactedFileName = "!file"
)

// Options configures Generate.
type Options struct {
	IgnoreFile       string
	Modes            ModeConfig
	AbsolutePaths    bool
	Recursive        bool
	RedactedDirName  string
	RedactedFileName string
	Logger           utils.Logger
	Tracker          *Tracker
}

func defaultOptions() Options {
	return Options{
		IgnoreFile:       ignore.DefaultFile,
		Modes:            ModeConfig{DirMode: ModeIgnore, FileMode: ModeIgnore, HiddenMode: ModeIgnore},
		AbsolutePaths:    false,
		Recursive:        false,
		RedactedDirName:  DefaultRedactedDirName,
		RedactedFileName: DefaultRedactedFileName,
		Logger:           utils.NoopLogger{},
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// WithIgnoreFile sets the name of the ignore file read from the root.
// An empty name keeps the default.
func WithIgnoreFile(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.IgnoreFile = name
		}
	}
}

// WithModes sets all three modes at once.
func WithModes(modes ModeConfig) Option {
	return func(o *Options) {
		o.Modes = modes
	}
}

func WithDirMode(m Mode) Option {
	return func(o *Options) {
		o.Modes.DirMode = m
	}
}

func WithFileMode(m Mode) Option {
	return func(o *Options) {
		o.Modes.FileMode = m
	}
}

func WithHiddenMode(m Mode) Option {
	return func(o *Options) {
		o.Modes.HiddenMode = m
	}
}

// WithAbsolutePaths switches output paths from root-relative to absolute.
func WithAbsolutePaths(enabled bool) Option {
	return func(o *Options) {
		o.AbsolutePaths = enabled
	}
}

// WithRecursive enables descending below the first level.
func WithRecursive(enabled bool) Option {
	return func(o *Options) {
		o.Recursive = enabled
	}
}

// WithRedactedNames sets the placeholders used for redacted entries.
// Empty strings keep the defaults.
func WithRedactedNames(dirName, fileName string) Option {
	return func(o *Options) {
		if dirName != "" {
			o.RedactedDirName = dirName
		}
		if fileName != "" {
			o.RedactedFileName = fileName
		}
	}
}

// WithLogger sets a custom logger for the walker and the ignore filter.
func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithTracker records every ignored, sealed or redacted entry in t.
func WithTracker(t *Tracker) Option {
	return func(o *Options) {
		o.Tracker = t
	}
}

package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/dir-struct/internal/config"
	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	warnings []string
	infos    []string
}

func (l *captureLogger) Debug(format string, args ...interface{}) {}
func (l *captureLogger) Info(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *captureLogger) Warn(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *captureLogger) Error(format string, args ...interface{}) {}

func TestConfigureWalker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("vendor\nsecret.txt\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), nil, 0o644))

	cfg := config.Default()
	cfg.DirMode = "seal"
	cfg.FileMode = "redact"
	cfg.Recursive = true
	cfg.RedactedFileName = "[hidden]"
	cfg.ShowSkipped = true

	log := &captureLogger{}
	opts, tracker := ConfigureWalker(cfg, log, log.Info)
	require.NotNil(t, tracker)
	assert.Empty(t, log.warnings)
	assert.Contains(t, log.infos, "Modes: dir=seal, file=redact, hidden=ignore")
	assert.Contains(t, log.infos, "Recursive traversal enabled.")

	result, err := walker.Generate(root, opts...)
	require.NoError(t, err)

	assert.Equal(t, []*walker.Entry{
		{Path: ".gitignore"},
		{Path: "[hidden]"},
		{Path: "vendor", Children: []*walker.Entry{}},
	}, result.Children)
	assert.Len(t, tracker.Items(), 2)
}

func TestConfigureWalkerWarnsOnInvalidModes(t *testing.T) {
	cfg := config.Default()
	cfg.FileMode = "seal"
	cfg.HiddenMode = "bogus"

	log := &captureLogger{}
	_, tracker := ConfigureWalker(cfg, log, func(string, ...interface{}) {})

	assert.Nil(t, tracker)
	assert.Equal(t, []string{
		`Unrecognised value for --file-mode, falling back to "ignore".`,
		`Unrecognised value for --hidden-mode, falling back to "ignore".`,
	}, log.warnings)
}

func TestConfigureWalkerNilLogger(t *testing.T) {
	opts, _ := ConfigureWalker(config.Default(), nil, func(string, ...interface{}) {})
	assert.NotEmpty(t, opts)
}

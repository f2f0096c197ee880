package summary

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Info(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestCollect(t *testing.T) {
	root := &walker.Entry{Path: ".", Children: []*walker.Entry{
		{Path: "a.txt"},
		{Path: "link", Sym: true},
		{Path: "nested", Children: []*walker.Entry{
			{Path: "nested/b.txt"},
			{Path: "nested/deep", Children: []*walker.Entry{}},
		}},
	}}

	assert.Equal(t, Stats{Dirs: 2, Files: 2, Symlinks: 1}, Collect(root))
	assert.Equal(t, Stats{}, Collect(nil))
}

func TestDisplayResults(t *testing.T) {
	log := &captureLogger{}
	DisplayResults(log, Stats{Dirs: 1, Files: 2, Symlinks: 3}, 1500*time.Microsecond, false)

	assert.Equal(t, []string{
		"Found 1 directories, 2 files and 3 symlinks.",
		"Scan complete in 2ms.",
	}, log.lines)

	quiet := &captureLogger{}
	DisplayResults(quiet, Stats{}, time.Second, true)
	assert.Empty(t, quiet.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	log := &captureLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, []walker.SkippedItem{
		{Path: "node_modules", Reason: walker.ReasonSealed, IsDir: true},
		{Path: ".env", Reason: walker.ReasonIgnored},
	}, &out, false)

	assert.Equal(t, []string{"--- Skipped Items (2) ---", "--- End Skipped Items ---"}, log.lines)
	assert.Equal(t,
		fmt.Sprintf("Skipped FILE: %-50s [%s]\n", ".env", walker.ReasonIgnored)+
			fmt.Sprintf("Skipped DIR : %-50s [%s]\n", "node_modules", walker.ReasonSealed),
		out.String())
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	log := &captureLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, nil, &out, false)

	assert.Contains(t, log.lines, "No items were skipped.")
	assert.Empty(t, out.String())
}

package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bethropolis/dir-struct/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTree() *walker.Entry {
	return &walker.Entry{Path: ".", Children: []*walker.Entry{
		{Path: "a.txt"},
		{Path: "link", Sym: true},
		{Path: "nested", Children: []*walker.Entry{
			{Path: "nested/b.txt"},
		}},
		{Path: "!dir", Children: []*walker.Entry{}},
	}}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false).WithFormat(FormatTree)

	require.NoError(t, p.Print(sampleTree()))

	want := ".\n" +
		"├── a.txt\n" +
		"├── link@\n" +
		"├── nested/\n" +
		"│   └── b.txt\n" +
		"└── !dir/\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(6), p.GetCount())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithFormat(FormatJSON)

	require.NoError(t, p.Print(sampleTree()))

	assert.JSONEq(t, `{
		"path": ".",
		"children": [
			{"path": "a.txt"},
			{"path": "link", "sym": true},
			{"path": "nested", "children": [{"path": "nested/b.txt"}]},
			{"path": "!dir", "children": []}
		]
	}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"children\": [")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithFormat(FormatYAML)

	require.NoError(t, p.Print(sampleTree()))

	var doc struct {
		Path     string `yaml:"path"`
		Children []struct {
			Path     string        `yaml:"path"`
			Sym      bool          `yaml:"sym"`
			Children []interface{} `yaml:"children"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, ".", doc.Path)
	require.Len(t, doc.Children, 4)
	assert.Equal(t, "a.txt", doc.Children[0].Path)
	assert.True(t, doc.Children[1].Sym)
	assert.Len(t, doc.Children[2].Children, 1)
	assert.Equal(t, "!dir", doc.Children[3].Path)
	assert.Contains(t, buf.String(), "children: []")
}

func TestPrintUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New().WithOutput(&buf).WithFormat("xml").Print(sampleTree())
	assert.EqualError(t, err, `printer: unknown format "xml"`)
}

func TestPrintNilTree(t *testing.T) {
	assert.Error(t, New().WithOutput(&bytes.Buffer{}).Print(nil))
}

func TestLabelsPlaceholdersWithCustomNames(t *testing.T) {
	p := New().WithColors(false).WithRedactedNames("[d]", "[f]")

	assert.True(t, p.isPlaceholder(&walker.Entry{Path: "[d]", Children: []*walker.Entry{}}))
	assert.True(t, p.isPlaceholder(&walker.Entry{Path: "[f]"}))
	assert.False(t, p.isPlaceholder(&walker.Entry{Path: "[f]", Children: []*walker.Entry{}}))
	assert.False(t, p.isPlaceholder(&walker.Entry{Path: "[d]", Sym: true}))

	assert.Equal(t, "a.txt", p.label(&walker.Entry{Path: "/abs/root/a.txt"}))
}

func TestRealDirectoryNamedLikePlaceholder(t *testing.T) {
	p := New().WithColors(false)

	// Indistinguishable from a placeholder at the first level.
	assert.True(t, p.isPlaceholder(&walker.Entry{Path: "!dir", Children: []*walker.Entry{}}))
	assert.Equal(t, "!dir/", p.label(&walker.Entry{Path: "!dir", Children: []*walker.Entry{}}))

	// Deeper real directories keep their joined path and are not confused.
	assert.False(t, p.isPlaceholder(&walker.Entry{Path: "sub/!dir", Children: []*walker.Entry{}}))
}

package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "single", path: "a", want: []string{"a"}},
		{name: "nested", path: "a/b/c", want: []string{"a", "b", "c"}},
		{name: "repeated slashes", path: "a//b", want: []string{"a", "b"}},
		{name: "trailing slash", path: "a/b/", want: []string{"a", "b"}},
		{name: "leading slash", path: "/a", want: []string{"a"}},
		{name: "only slashes", path: "///", want: []string{}},
		{name: "empty", path: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.path)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_ReusesExistingNodes(t *testing.T) {
	root := Build([]string{"a/b", "a/c", "a//b", "a/b"})

	require.Len(t, root.Children, 1)
	a := root.Children["a"]
	require.NotNil(t, a)
	assert.Len(t, a.Children, 2)
	assert.True(t, a.IsDir())
	assert.False(t, a.Children["b"].IsDir())
}

func TestBuild_SkipsMalformedEntries(t *testing.T) {
	root := Build([]string{"", "   ", "//", "ok"})
	assert.Equal(t, []string{"└─ ok"}, Render(root, Options{MaxDepth: 1}))
}

func TestBuild_TrailingSlashMarksDirectory(t *testing.T) {
	root := Build([]string{"empty/", "file"})

	assert.True(t, root.Children["empty"].Dir)
	assert.True(t, root.Children["empty"].IsDir())
	assert.False(t, root.Children["empty"].HasChildren())
	assert.False(t, root.Children["file"].IsDir())
}

func TestBuild_InsensitiveToInputOrder(t *testing.T) {
	forward := Build([]string{"a", "a/b", "c/", "c"})
	backward := Build([]string{"c", "c/", "a/b", "a"})

	opts := Options{MaxDepth: DefaultMaxDepth, Classify: true}
	assert.Equal(t, Render(forward, opts), Render(backward, opts))
	assert.True(t, forward.Children["a"].IsDir())
	assert.True(t, backward.Children["c"].Dir)
}

func TestInsert_ReportsSkippedEntries(t *testing.T) {
	root := Build(nil)
	assert.False(t, Insert(root, " / "))
	assert.True(t, Insert(root, " src/main.go "))
	assert.Contains(t, root.Children, "src")
}

package route

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONList(t *testing.T) {
	data := []byte(`[
  {"id": "index", "type": "page", "file": "index.html", "pattern": "/^\\/$/", "dynamic": []},
  {"id": "post", "type": "page", "file": "[slug].html", "pattern": "/^\\/([^\\/]+)$/", "dynamic": ["slug"]}
]`)

	routes, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, "index", routes[0].ID)
	assert.Equal(t, KindPage, routes[0].Type)
	assert.Equal(t, `/^\/$/`, routes[0].Pattern)
	assert.Equal(t, []string{"slug"}, routes[1].Dynamic)
}

func TestParseJSONDocument(t *testing.T) {
	data := []byte(`{"routes": [{"id": "api_posts", "type": "route", "file": "api/posts.js", "pattern": "/^\\/api\\/posts$/"}]}`)

	routes, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, routes, 1)

	assert.Equal(t, KindRoute, routes[0].Type)
	assert.NotNil(t, routes[0].Dynamic, "missing dynamic should decode as an empty list")
	assert.Empty(t, routes[0].Dynamic)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`routes:
  - id: index
    type: page
    file: index.html
    pattern: /^\/$/
  - id: _4xx
    type: page
    file: _4xx.html
    pattern: ""
  - id: blog_$slug
    type: page
    file: blog/[slug].html
    pattern: '/^\/blog\/([^\/]+?)\/?$/'
    dynamic: [slug]
`)

	routes, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, routes, 3)

	assert.Equal(t, `/^\/$/`, routes[0].Pattern)
	assert.Equal(t, ClientErrorID, routes[1].ID)
	assert.Equal(t, `/^\/blog\/([^\/]+?)\/?$/`, routes[2].Pattern)
	assert.Equal(t, []string{"slug"}, routes[2].Dynamic)
}

func TestParseYAMLList(t *testing.T) {
	data := []byte(`- id: about
  type: page
  file: about.html
  pattern: /^\/about$/
`)

	routes, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "about", routes[0].ID)
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		routes, err := Parse([]byte("  \n"), format)
		require.NoError(t, err)
		assert.NotNil(t, routes)
		assert.Empty(t, routes)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`[{"id": 1}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("routes: [: :"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.yml")
	require.NoError(t, os.WriteFile(path, []byte("- {id: index, type: page, file: index.html, pattern: /^\\/$/}\n"), 0644))

	routes, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "index.html", routes[0].File)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("routes.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("ROUTES.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("routes.json"))
	assert.Equal(t, FormatJSON, FormatForPath("routes"))
}

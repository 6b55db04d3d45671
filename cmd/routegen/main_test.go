package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
)

const scenarioRoutes = `[
  {"id": "home", "type": "page", "file": "index.js", "pattern": "/^\\/$/", "dynamic": []},
  {"id": "_4xx", "type": "page", "file": "_error.js", "pattern": "", "dynamic": []}
]`

func newProject(t *testing.T, routes string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, config.New().SaveTo(filepath.Join(dir, config.ConfigFileName)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultRoutesFile), []byte(routes), 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func code(err error) string {
	var re *errors.RoutegenError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}

func TestPrintClient(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	out, err := run(t, "print", "client", "-C", dir)
	require.NoError(t, err)

	want := `// Code generated by routegen. DO NOT EDIT.
export const routes = [
	{ pattern: /^\/$/, params: () => ({}), load: () => import(/* webpackChunkName: "home" */ '../../routes/index.js') },
	{ error: '4xx', load: () => import(/* webpackChunkName: "_4xx" */ '../../routes/_error.js') }
];
`
	assert.Equal(t, want, out)

	_, statErr := os.Stat(filepath.Join(dir, config.DefaultOutput))
	assert.True(t, os.IsNotExist(statErr), "print must not write files")
}

func TestPrintServerWithOverrides(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	out, err := run(t, "print", "server", "-C", dir, "--src", "src/pages", "--out", "build")
	require.NoError(t, err)
	assert.Contains(t, out, "import home from '../src/pages/index.js';")
	assert.Contains(t, out, "import _4xx from '../src/pages/_error.js';")
}

func TestPrintDev(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	out, err := run(t, "print", "client", "-C", dir, "--dev", "--port", "3000")
	require.NoError(t, err)
	assert.Contains(t, out, "if (module.hot) {")
	assert.Contains(t, out, "client.connect(3000);")
}

func TestPrintUnknownTarget(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	_, err := run(t, "print", "router", "-C", dir)
	assert.Equal(t, "E400", code(err))
}

func TestGenerate(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	_, err := run(t, "generate", "-C", dir)
	require.NoError(t, err)

	client, err := os.ReadFile(filepath.Join(dir, "app", "manifest", "client.js"))
	require.NoError(t, err)
	server, err := os.ReadFile(filepath.Join(dir, "app", "manifest", "server.js"))
	require.NoError(t, err)

	printed, err := run(t, "print", "client", "-C", dir)
	require.NoError(t, err)
	assert.Equal(t, printed, string(client), "generate and print must agree")
	assert.True(t, strings.HasPrefix(string(server), "// Code generated by routegen. DO NOT EDIT.\n"))
}

func TestGenerateIdempotent(t *testing.T) {
	dir := newProject(t, scenarioRoutes)
	path := filepath.Join(dir, "app", "manifest", "server.js")

	_, err := run(t, "generate", "-C", dir)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = run(t, "gen", "-C", dir)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestGenerateInvalidDescriptors(t *testing.T) {
	dir := newProject(t, `[{"id": "_4xx", "type": "page", "file": "a.js"}, {"id": "_4xx", "type": "page", "file": "b.js"}]`)

	_, err := run(t, "generate", "-C", dir)
	assert.Equal(t, "E202", code(err))
}

func TestGenerateInvalidPort(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	_, err := run(t, "generate", "-C", dir, "--port", "70000")
	assert.Equal(t, "E102", code(err))
}

func TestValidate(t *testing.T) {
	dir := newProject(t, scenarioRoutes)

	_, err := run(t, "validate", "-C", dir)
	assert.NoError(t, err)

	_, err = run(t, "validate", "-C", dir, "--routes", "missing.json")
	assert.Equal(t, "E200", code(err))
}

func TestNotAProject(t *testing.T) {
	_, err := run(t, "validate", "-C", t.TempDir())
	assert.Equal(t, "E103", code(err))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", "-C", dir, "--name", "blog", "--src", "src/routes")
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "blog", cfg.Name)
	assert.Equal(t, "src/routes", cfg.Src)

	_, err = run(t, "init", "-C", dir)
	assert.Equal(t, "E402", code(err))

	_, err = run(t, "init", "-C", dir, "--force")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestInitTemplate(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", "-C", dir, "--template", "blog")
	require.NoError(t, err)

	_, err = run(t, "generate", "-C", dir)
	require.NoError(t, err)

	server, err := os.ReadFile(filepath.Join(dir, "app", "manifest", "server.js"))
	require.NoError(t, err)
	assert.Contains(t, string(server), "import * as api_posts from '../../routes/api/posts.js';")
	assert.Contains(t, string(server), "params: match => ({ slug: match[1] })")
}

func TestInitUnknownTemplate(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", "-C", dir, "--template", "nope")
	assert.Equal(t, "E403", code(err))
	assert.False(t, config.Exists(dir), "nothing should be written for an unknown template")
}

package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/vango-dev/routegen/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// RoutesFile is the descriptor file path.
	RoutesFile string

	// Src is the routes source root.
	Src string
}

// Template represents a starter route tree.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps relative paths to file contents. Both are templates.
	Files map[string]string
}

var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"blog":    blogTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E403").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: blog, minimal")
	}
	return tmpl, nil
}

// List returns all available template names in sorted order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the template into dir and returns the written paths,
// relative to dir, in sorted order. Existing files are left untouched.
func (t *Template) Create(dir string, cfg Config) ([]string, error) {
	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	var written []string
	for _, relPath := range paths {
		name, err := execute("path:"+relPath, relPath, cfg)
		if err != nil {
			return written, err
		}
		content, err := execute(relPath, t.Files[relPath], cfg)
		if err != nil {
			return written, err
		}

		fullPath := filepath.Join(dir, filepath.FromSlash(string(name)))
		if _, err := os.Stat(fullPath); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			return written, err
		}
		written = append(written, filepath.ToSlash(string(name)))
	}

	sort.Strings(written)
	return written, nil
}

func execute(name, text string, cfg Config) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", name, err)
	}
	return buf.Bytes(), nil
}

func commonFiles() map[string]string {
	return map[string]string{
		".env.example": `# Overrides for routegen.json, loaded by every routegen command.
# ROUTEGEN_DEV_PORT=10000
# ROUTEGEN_PUBLISH_BACKEND=s3
# ROUTEGEN_PUBLISH_BUCKET={{.ProjectName}}-manifests
# ROUTEGEN_PUBLISH_ACCESS_KEY=
# ROUTEGEN_PUBLISH_SECRET_KEY=
`,
		"{{.Src}}/_4xx.js": `export default function render({ status, error }) {
	return '<h1>' + status + '</h1><p>' + error.message + '</p>';
}
`,
		"{{.Src}}/_5xx.js": `export default function render({ error }) {
	return '<h1>Something went wrong</h1><pre>' + error.message + '</pre>';
}
`,
	}
}

func minimalTemplate() *Template {
	files := commonFiles()
	files["{{.RoutesFile}}"] = `[
  { "id": "index", "type": "page", "file": "index.js", "pattern": "/^\\/?$/", "dynamic": [] },
  { "id": "_4xx", "type": "page", "file": "_4xx.js", "pattern": "", "dynamic": [] },
  { "id": "_5xx", "type": "page", "file": "_5xx.js", "pattern": "", "dynamic": [] }
]
`
	files["{{.Src}}/index.js"] = `export default function render() {
	return '<h1>{{.ProjectName}}</h1>';
}
`
	return &Template{
		Name:        "minimal",
		Description: "One page plus the error handlers",
		Files:       files,
	}
}

func blogTemplate() *Template {
	files := commonFiles()
	files["{{.RoutesFile}}"] = `[
  { "id": "index", "type": "page", "file": "index.js", "pattern": "/^\\/?$/", "dynamic": [] },
  { "id": "blog", "type": "page", "file": "blog/index.js", "pattern": "/^\\/blog\\/?$/", "dynamic": [] },
  { "id": "blog_$slug", "type": "page", "file": "blog/[slug].js", "pattern": "/^\\/blog\\/([^\\/]+?)\\/?$/", "dynamic": ["slug"] },
  { "id": "api_posts", "type": "route", "file": "api/posts.js", "pattern": "/^\\/api\\/posts\\/?$/", "dynamic": [] },
  { "id": "api_posts_$slug", "type": "route", "file": "api/posts/[slug].js", "pattern": "/^\\/api\\/posts\\/([^\\/]+?)\\/?$/", "dynamic": ["slug"] },
  { "id": "_4xx", "type": "page", "file": "_4xx.js", "pattern": "", "dynamic": [] },
  { "id": "_5xx", "type": "page", "file": "_5xx.js", "pattern": "", "dynamic": [] }
]
`
	files["{{.Src}}/index.js"] = `export default function render() {
	return '<h1>{{.ProjectName}}</h1><a href="/blog">Blog</a>';
}
`
	files["{{.Src}}/blog/index.js"] = `export async function preload({ fetch }) {
	const res = await fetch('/api/posts');
	return { posts: await res.json() };
}

export default function render({ posts }) {
	return '<ul>' + posts.map(p => '<li><a href="/blog/' + p.slug + '">' + p.title + '</a></li>').join('') + '</ul>';
}
`
	files["{{.Src}}/blog/[slug].js"] = `export async function preload({ params, fetch }) {
	const res = await fetch('/api/posts/' + params.slug);
	return { post: await res.json() };
}

export default function render({ post }) {
	return '<h1>' + post.title + '</h1>' + post.html;
}
`
	files["{{.Src}}/api/posts.js"] = `import { posts } from './posts/data.js';

export function get(req, res) {
	res.setHeader('Content-Type', 'application/json');
	res.end(JSON.stringify(posts.map(({ slug, title }) => ({ slug, title }))));
}
`
	files["{{.Src}}/api/posts/[slug].js"] = `import { posts } from './data.js';

export function get(req, res) {
	const post = posts.find(p => p.slug === req.params.slug);
	res.statusCode = post ? 200 : 404;
	res.setHeader('Content-Type', 'application/json');
	res.end(JSON.stringify(post || { message: 'Not found' }));
}
`
	files["{{.Src}}/api/posts/data.js"] = `export const posts = [
	{ slug: 'hello-world', title: 'Hello, world', html: '<p>First post of {{.ProjectName}}.</p>' }
];
`
	return &Template{
		Name:        "blog",
		Description: "Pages with a dynamic segment and an API route",
		Files:       files,
	}
}

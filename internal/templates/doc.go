// Package templates provides starter route trees for new routegen projects.
//
// A template writes a sample descriptor file (the shape route discovery
// produces) plus the route modules it refers to, so `routegen generate`
// works right after `routegen init`.
//
// # Available Templates
//
//   - minimal: one page plus the _4xx and _5xx handlers
//   - blog: pages with a dynamic segment and a non-page API route
//
// # Usage
//
//	tmpl, err := templates.Get("blog")
//	if err != nil {
//	    return err
//	}
//	written, err := tmpl.Create(projectDir, templates.Config{
//	    ProjectName: "blog",
//	    RoutesFile:  "routes.json",
//	    Src:         "routes",
//	})
//
// # Template Variables
//
// File paths and contents support variable substitution:
//
//	{{.ProjectName}}     - Name of the project
//	{{.RoutesFile}}      - Descriptor file, relative to the project
//	{{.Src}}             - Routes source root, relative to the project
package templates

// Package route defines the route descriptors consumed by the manifest generator.
//
// Descriptors are produced upstream by a route-discovery step that walks the
// routes directory and computes a match pattern for every file. This package
// only models them, loads them from disk and validates them:
//
//	routes/
//	├── index.js        → {id: "index", type: "page", pattern: /^\/$/}
//	├── blog/[slug].js  → {id: "blog_$slug", type: "page", dynamic: ["slug"]}
//	├── api/posts.js    → {id: "api_posts", type: "route"}
//	├── _4xx.js         → {id: "_4xx", type: "page"} (client error handler)
//	└── _5xx.js         → {id: "_5xx", type: "page"} (server error handler)
//
// # Descriptor Files
//
// Descriptor files are JSON or YAML. Either a bare list or an object with a
// "routes" key is accepted:
//
//	routes:
//	  - id: index
//	    type: page
//	    file: index.js
//	    pattern: /^\/$/
//	    dynamic: []
//
// # Usage
//
//	routes, err := route.LoadFile("routes.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := route.Validate(routes); err != nil {
//	    return err
//	}
package route

package manifest

import (
	"github.com/vango-dev/routegen/pkg/route"
)

// Module is one generated manifest file.
type Module struct {
	// Imports are the static import statements, in order.
	Imports []Import

	// Entries are the elements of the exported routes list, in order.
	Entries []Entry

	// Bootstrap is the live-reload block. Nil means the block is absent.
	Bootstrap *Bootstrap
}

// Import is a static import statement binding one route module.
type Import struct {
	// Binding is the local name.
	Binding string

	// Path is the module specifier in forward-slash form.
	Path string

	// Namespace binds the whole module namespace instead of the default export.
	Namespace bool
}

// Entry is one element of the routes list. An entry with a non-empty Error is
// an error entry and carries no Pattern or Params.
type Entry struct {
	// Error is the handled error class ("4xx" or "5xx").
	Error string

	// ID and Type are emitted by the server manifest only.
	ID   string
	Type route.Kind

	// Pattern is matcher source text, emitted verbatim.
	Pattern string

	// Params builds the parameter extractor.
	Params *Params

	// Load is the deferred loader (client manifest).
	Load *Loader

	// Module is the binding of an eagerly imported module (server manifest).
	Module string
}

// IsError reports whether e is an error entry.
func (e Entry) IsError() bool {
	return e.Error != ""
}

// Params maps captured groups of a match result to parameter names.
// Names[i] is bound to capture slot i+1; slot 0 holds the whole match.
type Params struct {
	Names []string
}

// Extract applies the mapping to a match result the same way the generated
// function does at runtime. Slots missing from match yield "".
func (p Params) Extract(match []string) map[string]string {
	out := make(map[string]string, len(p.Names))
	for i, name := range p.Names {
		if i+1 < len(match) {
			out[name] = match[i+1]
		} else {
			out[name] = ""
		}
	}
	return out
}

// Loader is a deferred import of a route module, fetched as its own chunk.
type Loader struct {
	// Path is the module specifier in forward-slash form.
	Path string

	// Chunk is the bundler chunk name.
	Chunk string
}

// Bootstrap connects the page to the live-reload server in development.
type Bootstrap struct {
	// Guard is the expression that must be truthy for the block to run.
	Guard string

	// Client is the reload client module specifier.
	Client string

	// Port is passed to the client's connect function.
	Port int
}

// paramsFor returns the extractor for a descriptor. Static routes get an
// extractor with no names.
func paramsFor(d route.Descriptor) *Params {
	names := make([]string, len(d.Dynamic))
	copy(names, d.Dynamic)
	return &Params{Names: names}
}

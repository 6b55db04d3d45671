package manifest

import (
	"github.com/vango-dev/routegen/pkg/route"
)

// BuildServer builds the server manifest: one import per descriptor and one
// entry per descriptor, unfiltered and in input order. Pages bind their
// default export; other routes bind the whole module namespace since they
// export one handler per HTTP method. The server manifest has no dev variant.
func BuildServer(routes []route.Descriptor, opts Options) *Module {
	m := &Module{
		Imports: make([]Import, 0, len(routes)),
		Entries: make([]Entry, 0, len(routes)),
	}

	for _, r := range routes {
		m.Imports = append(m.Imports, Import{
			Binding:   r.ID,
			Path:      opts.importPath(r.File),
			Namespace: !r.IsPage(),
		})

		if kind, ok := r.ErrorKind(); ok {
			m.Entries = append(m.Entries, Entry{Error: kind, Module: r.ID})
			continue
		}

		m.Entries = append(m.Entries, Entry{
			ID:      r.ID,
			Type:    r.Type,
			Pattern: r.Pattern,
			Params:  paramsFor(r),
			Module:  r.ID,
		})
	}

	return m
}

// GenerateServer renders the server manifest source.
func GenerateServer(routes []route.Descriptor, opts Options) []byte {
	return BuildServer(routes, opts).Render()
}

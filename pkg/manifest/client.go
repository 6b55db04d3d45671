package manifest

import (
	"github.com/vango-dev/routegen/pkg/route"
)

// BuildClient builds the browser manifest. Only page descriptors are
// included, in input order. Every entry loads its module lazily as a chunk
// named after the route id. With opts.Dev set the module carries the
// live-reload bootstrap; otherwise the bootstrap is absent.
func BuildClient(routes []route.Descriptor, opts Options) *Module {
	m := &Module{Entries: make([]Entry, 0, len(routes))}

	for _, r := range routes {
		if !r.IsPage() {
			continue
		}

		load := &Loader{
			Path:  opts.importPath(r.File),
			Chunk: r.ID,
		}

		if kind, ok := r.ErrorKind(); ok {
			m.Entries = append(m.Entries, Entry{Error: kind, Load: load})
			continue
		}

		m.Entries = append(m.Entries, Entry{
			Pattern: r.Pattern,
			Params:  paramsFor(r),
			Load:    load,
		})
	}

	if opts.Dev {
		m.Bootstrap = &Bootstrap{
			Guard:  ReloadGuard,
			Client: Posix(opts.reloadClient()),
			Port:   opts.DevPort,
		}
	}

	return m
}

// GenerateClient renders the browser manifest source.
func GenerateClient(routes []route.Descriptor, opts Options) []byte {
	return BuildClient(routes, opts).Render()
}

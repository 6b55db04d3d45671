package manifest

const (
	// DefaultDir is where manifests are written, relative to the project root.
	DefaultDir = "app/manifest"

	// ClientFile is the client manifest file name.
	ClientFile = "client.js"

	// ServerFile is the server manifest file name.
	ServerFile = "server.js"

	// DefaultReloadClient is the reload client module imported in development.
	DefaultReloadClient = "routegen/reload-client"

	// ReloadGuard is the host facility the dev bootstrap checks for.
	ReloadGuard = "module.hot"

	// Header is the provenance comment at the top of every generated file.
	Header = "// Code generated by routegen. DO NOT EDIT."
)

// Options configures manifest generation.
type Options struct {
	// Src is the routes source root that descriptor files are relative to.
	Src string

	// Dir is the manifest output directory (default: DefaultDir).
	Dir string

	// Root resolves relative Src or Dir when the other one is absolute.
	// Defaults to the working directory.
	Root string

	// Dev enables the live-reload bootstrap in the client manifest.
	Dev bool

	// DevPort is the live-reload port. Only used when Dev is set.
	DevPort int

	// ReloadClient is the reload client specifier (default: DefaultReloadClient).
	ReloadClient string
}

func (o Options) dir() string {
	if o.Dir == "" {
		return DefaultDir
	}
	return o.Dir
}

func (o Options) reloadClient() string {
	if o.ReloadClient == "" {
		return DefaultReloadClient
	}
	return o.ReloadClient
}

func (o Options) importPath(file string) string {
	return ImportPath(o.Root, o.dir(), o.Src, file)
}

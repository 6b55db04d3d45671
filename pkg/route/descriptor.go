package route

// Kind distinguishes navigable pages from other handler modules.
type Kind string

const (
	// KindPage is a user-navigable page component.
	KindPage Kind = "page"

	// KindRoute is a non-page handler module, such as an API endpoint exporting
	// one function per HTTP method.
	KindRoute Kind = "route"
)

// Reserved ids for the fallback error handlers.
const (
	// ClientErrorID identifies the 4xx fallback handler.
	ClientErrorID = "_4xx"

	// ServerErrorID identifies the 5xx fallback handler.
	ServerErrorID = "_5xx"
)

// Descriptor describes one routable path and its implementation module.
type Descriptor struct {
	// ID is the unique symbolic identifier. It doubles as the module binding
	// name in the server manifest and the chunk name in the client manifest.
	ID string `json:"id" yaml:"id"`

	// Type is the route kind.
	Type Kind `json:"type" yaml:"type"`

	// File is the implementation module, relative to the routes directory.
	File string `json:"file" yaml:"file"`

	// Pattern is the match expression, spliced verbatim into generated code.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Dynamic lists the captured parameter names in capture-group order.
	Dynamic []string `json:"dynamic" yaml:"dynamic"`
}

// IsPage reports whether the descriptor is a page.
func (d Descriptor) IsPage() bool {
	return d.Type == KindPage
}

// ErrorKind returns the error class handled by a sentinel descriptor
// ("4xx" or "5xx"). ok is false for ordinary routes.
func (d Descriptor) ErrorKind() (kind string, ok bool) {
	switch d.ID {
	case ClientErrorID, ServerErrorID:
		return d.ID[1:], true
	}
	return "", false
}

// Pages returns the page descriptors in their original order.
func Pages(routes []Descriptor) []Descriptor {
	pages := make([]Descriptor, 0, len(routes))
	for _, r := range routes {
		if r.IsPage() {
			pages = append(pages, r)
		}
	}
	return pages
}

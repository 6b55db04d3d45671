package route

import (
	"strings"
	"testing"
)

func validRoutes() []Descriptor {
	return []Descriptor{
		{ID: "index", Type: KindPage, File: "index.html", Pattern: `/^\/?$/`, Dynamic: []string{}},
		{ID: "blog_$slug", Type: KindPage, File: "blog/[slug].html", Pattern: `/^\/blog\/([^\/]+?)\/?$/`, Dynamic: []string{"slug"}},
		{ID: "api_blog", Type: KindRoute, File: "api/blog.js", Pattern: `/^\/api\/blog\/?$/`, Dynamic: []string{}},
		{ID: ClientErrorID, Type: KindPage, File: "_4xx.html"},
		{ID: ServerErrorID, Type: KindPage, File: "_5xx.html"},
	}
}

func expectErrors(t *testing.T, err error, types ...ValidationErrorType) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected validation error")
	}
	multiErr, ok := err.(*MultiValidationError)
	if !ok {
		t.Fatalf("Expected MultiValidationError, got %T", err)
	}
	if len(multiErr.Errors) != len(types) {
		t.Fatalf("Expected %d errors, got %d: %v", len(types), len(multiErr.Errors), err)
	}
	for i, typ := range types {
		if multiErr.Errors[i].Type != typ {
			t.Errorf("Error %d: expected %s, got %s", i, typ, multiErr.Errors[i].Type)
		}
	}
}

func TestValidateAcceptsWellFormedRoutes(t *testing.T) {
	if err := Validate(validRoutes()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateAcceptsEmptyList(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Errorf("Expected no error for empty list, got: %v", err)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	routes := validRoutes()
	routes = append(routes, Descriptor{ID: "index", Type: KindPage, File: "home.html", Pattern: `/^\/home$/`})

	err := Validate(routes)
	expectErrors(t, err, ErrorDuplicateID)

	if !strings.Contains(err.Error(), "index.html and home.html") {
		t.Errorf("Expected both files in error, got: %v", err)
	}
}

func TestValidateDuplicateSentinel(t *testing.T) {
	routes := validRoutes()
	routes = append(routes, Descriptor{ID: ServerErrorID, Type: KindPage, File: "other_5xx.html"})

	expectErrors(t, Validate(routes), ErrorDuplicateSentinel)
}

func TestValidateInvalidIdentifiers(t *testing.T) {
	routes := []Descriptor{
		{ID: "blog-post", Type: KindPage, File: "blog-post.html", Pattern: `/^\/blog-post$/`},
		{ID: "user", Type: KindPage, File: "[user-id].html", Pattern: `/^\/([^\/]+)$/`, Dynamic: []string{"user-id"}},
	}

	expectErrors(t, Validate(routes), ErrorInvalidIdentifier, ErrorInvalidIdentifier)
}

func TestValidateFields(t *testing.T) {
	routes := []Descriptor{
		{ID: "a", Type: "layout", File: "a.html", Pattern: `/^\/a$/`},
		{ID: "b", Type: KindPage, File: "", Pattern: `/^\/b$/`},
		{ID: "c", Type: KindRoute, File: "c.js", Pattern: ""},
	}

	expectErrors(t, Validate(routes), ErrorUnknownType, ErrorMissingFile, ErrorMissingPattern)
}

func TestValidateSentinelWithoutPattern(t *testing.T) {
	routes := []Descriptor{{ID: ClientErrorID, Type: KindPage, File: "_4xx.html"}}

	if err := Validate(routes); err != nil {
		t.Errorf("Sentinel routes need no pattern, got: %v", err)
	}
}

func TestValidateDuplicateParam(t *testing.T) {
	routes := []Descriptor{
		{ID: "pair", Type: KindPage, File: "[a]/[a].html", Pattern: `/^\/([^\/]+)\/([^\/]+)$/`, Dynamic: []string{"a", "a"}},
	}

	expectErrors(t, Validate(routes), ErrorDuplicateParam)
}

func TestMultiValidationErrorMessage(t *testing.T) {
	err := &MultiValidationError{Errors: []ValidationError{
		{Type: ErrorMissingFile, Message: "route \"a\" has no file"},
		{Type: ErrorMissingPattern, Message: "route \"b\" has no pattern"},
	}}

	msg := err.Error()
	if !strings.HasPrefix(msg, "2 route validation errors:") {
		t.Errorf("Unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "  2. MISSING_PATTERN") {
		t.Errorf("Expected numbered entries, got: %s", msg)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"index", true},
		{"_4xx", true},
		{"blog_$slug", true},
		{"$", true},
		{"Post2", true},
		{"", false},
		{"2fa", false},
		{"blog-post", false},
		{"default", false},
		{"import", false},
		{"café", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		id       string
		wantKind string
		wantOK   bool
	}{
		{ClientErrorID, "4xx", true},
		{ServerErrorID, "5xx", true},
		{"index", "", false},
		{"_404", "", false},
	}

	for _, tt := range tests {
		kind, ok := Descriptor{ID: tt.id}.ErrorKind()
		if kind != tt.wantKind || ok != tt.wantOK {
			t.Errorf("ErrorKind(%q) = (%q, %v), want (%q, %v)", tt.id, kind, ok, tt.wantKind, tt.wantOK)
		}
	}
}

func TestPagesKeepsOrder(t *testing.T) {
	pages := Pages(validRoutes())

	var ids []string
	for _, p := range pages {
		ids = append(ids, p.ID)
	}
	if got := strings.Join(ids, ","); got != "index,blog_$slug,_4xx,_5xx" {
		t.Errorf("Pages() = %s", got)
	}
}

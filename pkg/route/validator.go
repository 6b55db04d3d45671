package route

import (
	"fmt"
	"strings"
)

// ValidationErrorType categorizes validation errors.
type ValidationErrorType string

const (
	// ErrorDuplicateID indicates two descriptors share an id.
	ErrorDuplicateID ValidationErrorType = "DUPLICATE_ID"

	// ErrorDuplicateSentinel indicates more than one _4xx or _5xx handler.
	ErrorDuplicateSentinel ValidationErrorType = "DUPLICATE_SENTINEL"

	// ErrorInvalidIdentifier indicates an id or parameter name that cannot be
	// used as a binding in generated code.
	ErrorInvalidIdentifier ValidationErrorType = "INVALID_IDENTIFIER"

	// ErrorUnknownType indicates a type other than page or route.
	ErrorUnknownType ValidationErrorType = "UNKNOWN_TYPE"

	// ErrorMissingFile indicates an empty file path.
	ErrorMissingFile ValidationErrorType = "MISSING_FILE"

	// ErrorMissingPattern indicates a non-sentinel route without a pattern.
	ErrorMissingPattern ValidationErrorType = "MISSING_PATTERN"

	// ErrorDuplicateParam indicates a parameter name captured twice by one route.
	ErrorDuplicateParam ValidationErrorType = "DUPLICATE_PARAM"
)

// ValidationError represents a descriptor validation error.
type ValidationError struct {
	// Type is the error category
	Type ValidationErrorType

	// Message is the human-readable error message
	Message string

	// IDs are the descriptor ids involved
	IDs []string

	// Details contains additional error-specific information
	Details string
}

func (e ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// MultiValidationError wraps multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d route validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks descriptors the way the upstream discovery step is expected
// to. Returns nil if all descriptors are valid, or a *MultiValidationError.
func Validate(routes []Descriptor) error {
	return NewValidator(routes).Validate()
}

// Validator validates descriptors for conflicts and errors.
type Validator struct {
	routes []Descriptor
	errors []ValidationError
}

// NewValidator creates a new descriptor validator.
func NewValidator(routes []Descriptor) *Validator {
	return &Validator{routes: routes}
}

// Validate checks all descriptors. The order of reported errors follows the
// order of checks, then descriptor order.
func (v *Validator) Validate() error {
	v.errors = nil

	v.validateIDs()
	v.validateFields()
	v.validateParams()

	if len(v.errors) > 0 {
		return &MultiValidationError{Errors: v.errors}
	}
	return nil
}

func (v *Validator) add(err ValidationError) {
	v.errors = append(v.errors, err)
}

// validateIDs checks uniqueness, sentinel cardinality and identifier syntax.
func (v *Validator) validateIDs() {
	seen := make(map[string]int)
	for i, r := range v.routes {
		if !IsIdentifier(r.ID) {
			v.add(ValidationError{
				Type:    ErrorInvalidIdentifier,
				Message: fmt.Sprintf("route id %q is not a valid identifier", r.ID),
				IDs:     []string{r.ID},
				Details: fmt.Sprintf("file %s", r.File),
			})
		}

		first, dup := seen[r.ID]
		if !dup {
			seen[r.ID] = i
			continue
		}

		typ := ErrorDuplicateID
		if _, sentinel := r.ErrorKind(); sentinel {
			typ = ErrorDuplicateSentinel
		}
		v.add(ValidationError{
			Type:    typ,
			Message: fmt.Sprintf("route id %q is declared more than once", r.ID),
			IDs:     []string{r.ID},
			Details: fmt.Sprintf("files %s and %s", v.routes[first].File, r.File),
		})
	}
}

// validateFields checks type, file and pattern.
func (v *Validator) validateFields() {
	for _, r := range v.routes {
		if r.Type != KindPage && r.Type != KindRoute {
			v.add(ValidationError{
				Type:    ErrorUnknownType,
				Message: fmt.Sprintf("route %q has unknown type %q", r.ID, r.Type),
				IDs:     []string{r.ID},
				Details: "expected page or route",
			})
		}
		if strings.TrimSpace(r.File) == "" {
			v.add(ValidationError{
				Type:    ErrorMissingFile,
				Message: fmt.Sprintf("route %q has no file", r.ID),
				IDs:     []string{r.ID},
			})
		}
		if _, sentinel := r.ErrorKind(); !sentinel && strings.TrimSpace(r.Pattern) == "" {
			v.add(ValidationError{
				Type:    ErrorMissingPattern,
				Message: fmt.Sprintf("route %q has no pattern", r.ID),
				IDs:     []string{r.ID},
			})
		}
	}
}

// validateParams checks parameter names.
func (v *Validator) validateParams() {
	for _, r := range v.routes {
		seen := make(map[string]bool, len(r.Dynamic))
		for _, name := range r.Dynamic {
			if !IsIdentifier(name) {
				v.add(ValidationError{
					Type:    ErrorInvalidIdentifier,
					Message: fmt.Sprintf("route %q has invalid parameter name %q", r.ID, name),
					IDs:     []string{r.ID},
				})
			}
			if seen[name] {
				v.add(ValidationError{
					Type:    ErrorDuplicateParam,
					Message: fmt.Sprintf("route %q captures parameter %q more than once", r.ID, name),
					IDs:     []string{r.ID},
				})
			}
			seen[name] = true
		}
	}
}

// reserved holds words that cannot be used as bindings in generated modules.
var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true, "new": true,
	"null": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "static": true, "super": true,
	"switch": true, "this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "var": true, "void": true, "while": true, "with": true,
	"yield": true,
}

// IsIdentifier reports whether s can be used as a binding name in a generated
// module: ASCII letters, digits, '_' and '$', not starting with a digit, and
// not a reserved word.
func IsIdentifier(s string) bool {
	if s == "" || reserved[s] {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://routegen.vango.dev/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid routegen.json",
		Detail:   "The routegen.json configuration file is malformed.",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The development port must be between 1 and 65535.",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Not a routegen project",
		Detail:   "No routegen.json was found. Run this command from a directory with routegen.json.",
		DocURL:   docBase + "E103",
	},

	// ============================================
	// Route Descriptor Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryRoutes,
		Message:  "Descriptor file not found",
		Detail:   "The route descriptor file produced by route discovery does not exist.",
		DocURL:   docBase + "E200",
	},
	"E201": {
		Category: CategoryRoutes,
		Message:  "Invalid descriptor file",
		Detail:   "The route descriptor file could not be decoded.",
		DocURL:   docBase + "E201",
	},
	"E202": {
		Category: CategoryRoutes,
		Message:  "Route validation failed",
		Detail:   "One or more route descriptors are invalid. Manifests were not written.",
		DocURL:   docBase + "E202",
	},

	// ============================================
	// Generation Errors (E300-E349)
	// ============================================

	"E300": {
		Category: CategoryGenerate,
		Message:  "Manifest generation failed",
		Detail:   "The manifest directory could not be created or a manifest could not be written.",
		DocURL:   docBase + "E300",
	},

	// ============================================
	// Storage Errors (E350-E399)
	// ============================================

	"E350": {
		Category: CategoryStorage,
		Message:  "Publish failed",
		Detail:   "The manifests could not be uploaded to the configured bucket.",
		DocURL:   docBase + "E350",
	},
	"E351": {
		Category: CategoryStorage,
		Message:  "Storage backend misconfigured",
		Detail:   "The publish section of routegen.json is incomplete or names an unknown backend.",
		DocURL:   docBase + "E351",
	},

	// ============================================
	// CLI Errors (E400-E499)
	// ============================================

	"E400": {
		Category: CategoryCLI,
		Message:  "Unknown manifest target",
		Detail:   "The manifest target must be either client or server.",
		DocURL:   docBase + "E400",
	},
	"E401": {
		Category: CategoryCLI,
		Message:  "Dev server failed",
		Detail:   "The development server stopped with an error.",
		DocURL:   docBase + "E401",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Configuration already exists",
		Detail:   "A routegen.json file already exists in this directory.",
		DocURL:   docBase + "E402",
	},
	"E403": {
		Category: CategoryCLI,
		Message:  "Unknown template",
		Detail:   "The requested starter template does not exist.",
		DocURL:   docBase + "E403",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

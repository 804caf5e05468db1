package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRender,
		Message:  "Invalid render configuration",
		Detail:   "A configuration value is outside the recognized enumeration. The renderer fails fast instead of silently defaulting.",
		DocURL:   "https://velum.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryRender,
		Message:  "Rendering context already consumed",
		Detail:   "A Context carries the stylesheet and output state for exactly one render. Allocate a fresh Context per render call.",
		DocURL:   "https://velum.dev/docs/errors/E102",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid velum.json",
		Detail:   "The velum.json configuration file is malformed.",
		DocURL:   "https://velum.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://velum.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is invalid or already in use.",
		DocURL:   "https://velum.dev/docs/errors/E122",
	},

	// ============================================
	// Export Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryExport,
		Message:  "Invalid export destination",
		Detail:   "The export output path escapes the output directory or is not writable.",
		DocURL:   "https://velum.dev/docs/errors/E130",
	},
	"E131": {
		Category: CategoryExport,
		Message:  "Export upload failed",
		Detail:   "The export store rejected the rendered page.",
		DocURL:   "https://velum.dev/docs/errors/E131",
	},

	// ============================================
	// Serve Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryServe,
		Message:  "Page not registered",
		Detail:   "No page function is registered for the requested path.",
		DocURL:   "https://velum.dev/docs/errors/E140",
	},

	// ============================================
	// CLI Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Not a Velum project",
		Detail:   "The current directory is not a Velum project. Run this command from a directory with velum.json.",
		DocURL:   "https://velum.dev/docs/errors/E150",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

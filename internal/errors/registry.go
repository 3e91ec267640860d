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
	// Config Errors (E100-E109)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "termkit.json could not be read or contains invalid values.",
		DocURL:   "https://termkit.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Not a termkit project",
		Detail:   "The current directory is not a termkit project. Run this command from a directory with termkit.json.",
		DocURL:   "https://termkit.dev/docs/errors/E101",
	},

	// ============================================
	// Registry Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryRegistry,
		Message:  "Component not found",
		Detail:   "The requested component is not available in the registry.",
		DocURL:   "https://termkit.dev/docs/errors/E110",
	},
	"E111": {
		Category: CategoryRegistry,
		Message:  "Registry unavailable",
		Detail:   "Unable to read the component registry manifest.",
		DocURL:   "https://termkit.dev/docs/errors/E111",
	},
	"E112": {
		Category: CategoryRegistry,
		Message:  "Component fetch failed",
		Detail:   "The registry knows this component but could not return its files.",
		DocURL:   "https://termkit.dev/docs/errors/E112",
	},
	"E113": {
		Category: CategoryRegistry,
		Message:  "Invalid component descriptor",
		Detail:   "The registry returned a component descriptor that failed validation.",
		DocURL:   "https://termkit.dev/docs/errors/E113",
	},

	// ============================================
	// Ledger Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryLedger,
		Message:  "Ledger unreadable",
		Detail:   "The installation ledger exists but could not be parsed.",
		DocURL:   "https://termkit.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryLedger,
		Message:  "Unsupported ledger format",
		Detail:   "The installation ledger was written by an incompatible version of termkit.",
		DocURL:   "https://termkit.dev/docs/errors/E121",
	},

	// ============================================
	// Sync Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategorySync,
		Message:  "Component not installed",
		Detail:   "The component has no entry in the installation ledger.",
		DocURL:   "https://termkit.dev/docs/errors/E130",
	},
	"E131": {
		Category: CategorySync,
		Message:  "Local changes detected",
		Detail:   "The component's files differ from what was installed. Updating would overwrite local edits.",
		DocURL:   "https://termkit.dev/docs/errors/E131",
	},

	// ============================================
	// Storage Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryStorage,
		Message:  "Project storage failure",
		Detail:   "A project file could not be read or written.",
		DocURL:   "https://termkit.dev/docs/errors/E140",
	},

	// ============================================
	// CLI Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with invalid arguments.",
		DocURL:   "https://termkit.dev/docs/errors/E150",
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

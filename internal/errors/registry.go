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
	// Runtime Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Scope already closed",
		Detail:   "A finalizer was registered against a scope that has finished closing. The caller must release the resource itself.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Mount cancelled",
		Detail:   "The scope owning this mount was closed while the mount was still in flight. Partial mutations have been rolled back.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Finalizer failed",
		Detail:   "One or more finalizers returned an error or panicked during scope close. All finalizers still ran.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Node already detached",
		Detail:   "A removal was requested for a node that is no longer attached to its parent.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Session not found",
		Detail:   "The session ID is invalid or the session has expired.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E005",
	},

	// ============================================
	// Usage Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryUsage,
		Message:  "Children not rendered",
		Detail:   "Children.Append was called before the collection's Render modifier was mounted, so there is no mount point to insert into.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryUsage,
		Message:  "Children rendered twice",
		Detail:   "A Children collection's Render modifier must be mounted exactly once.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryUsage,
		Message:  "Child index out of range",
		Detail:   "The ordinal position passed to Children.InsertAt does not exist in the collection.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E102",
	},

	// ============================================
	// Protocol Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "The wire frame could not be decoded. The client and server protocol versions may not match.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryProtocol,
		Message:  "Frame too large",
		Detail:   "The frame exceeds the configured size limit.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryProtocol,
		Message:  "Unknown operation",
		Detail:   "The frame contains an operation code this server does not understand.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E202",
	},

	// ============================================
	// Config Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "pulse.json could not be parsed or contains invalid values.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E300",
	},
	"E301": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No pulse.json was found in the project root or any parent directory.",
		DocURL:   "https://pulse-ui.dev/docs/errors/E301",
	},
}

// Lookup returns the registered template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

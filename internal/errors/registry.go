package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Gate Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategoryValidation,
		Message:  "Negative exit duration",
		Detail:   "ExitDuration is the time exiting content stays rendered with the exit class. It must be zero or positive.",
	},
	"E102": {
		Category: CategoryValidation,
		Message:  "Child cannot carry a class",
		Detail:   "Without wrap mode every top-level child receives the enter or exit class. Text, raw HTML and components that do not accept a class cannot.",
	},
	"E103": {
		Category: CategoryRuntime,
		Message:  "Gate unmounted",
		Detail:   "The gate has been torn down and no longer accepts props.",
	},
	"E104": {
		Category: CategoryRuntime,
		Message:  "Event loop closed",
		Detail:   "The event loop driving the gate has stopped.",
	},

	// ============================================
	// Config Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Invalid JSON in config file",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Scenario Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryScenario,
		Message:  "Cannot read scenario file",
	},
	"E302": {
		Category: CategoryScenario,
		Message:  "Invalid YAML in scenario file",
	},
	"E303": {
		Category: CategoryScenario,
		Message:  "Invalid scenario",
	},

	// ============================================
	// Preview Errors (E401-E499)
	// ============================================

	"E401": {
		Category: CategoryValidation,
		Message:  "Invalid request body",
	},

	// ============================================
	// CLI Errors (E501-E599)
	// ============================================

	"E501": {
		Category: CategoryCLI,
		Message:  "Unknown template",
	},
	"E502": {
		Category: CategoryCLI,
		Message:  "File already exists",
	},
}

// Register adds or replaces an error template. Intended for tools that
// embed the gate and define their own codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

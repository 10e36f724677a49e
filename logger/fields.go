package logger

// Standard field names for consistent structured logging across instviz.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldClientID = "client_id"

	// Components
	FieldComponent = "component"

	// Operations
	FieldRequestType = "request_type"
	FieldPath        = "path"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"

	// Network
	FieldAddress = "address"

	// Domain
	FieldAxis    = "axis"
	FieldReading = "reading"
	FieldPreset  = "preset"
)

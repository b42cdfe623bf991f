package log

const (
	// ModeProduction disables development behaviour (stack traces on warn, DPanic panics).
	ModeProduction = "production"
	// ModeDevelopment is the default mode.
	ModeDevelopment = "debug"

	// EncodingConsole writes human readable lines.
	EncodingConsole = "console"
	// EncodingJSON writes one JSON object per line.
	EncodingJSON = "json"

	// RequestIDField is the field name carrying the request id.
	RequestIDField = "request_id"

	defaultLevel = "info"
)

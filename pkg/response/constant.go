package response

const (
	// DefaultErrorMessage is used for errors that carry no client-facing message.
	DefaultErrorMessage = "Internal server error"
)

package response

// Resp is the JSON body written for failed requests.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Error     string `json:"error"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is the body of acknowledgements without a resource, e.g. deletes.
type MessageResp struct {
	Message string `json:"message"`
}

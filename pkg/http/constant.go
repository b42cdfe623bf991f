package http

import "time"

const (
	// DefaultTimeout applies when ClientConfig.Timeout is zero.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent applies when ClientConfig.UserAgent is empty.
	DefaultUserAgent = "report-srv-client"

	headerContentType = "Content-Type"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
)

package reportsrv

import (
	"context"
	"strings"
)

// IReport defines the interface for the report API client.
// Implementations are safe for concurrent use.
type IReport interface {
	List(ctx context.Context) ([]Report, error)
	Create(ctx context.Context, input CreateInput) (Report, error)
	Update(ctx context.Context, id string, input UpdateInput) (Report, error)
	Delete(ctx context.Context, id string) error
}

// New creates a new report API client. Returns the interface.
func New(cfg ReportConfig) IReport {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &reportImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

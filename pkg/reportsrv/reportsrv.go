package reportsrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	pkghttp "report-srv/pkg/http"
)

// The dashboard never retries: a failed call is reported and must be re-initiated by the user.
func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   0,
		UserAgent: UserAgent,
	})
}

// List returns every report, newest first.
func (c *reportImpl) List(ctx context.Context) ([]Report, error) {
	body, statusCode, err := c.httpClient.Get(ctx, c.collectionURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, newAPIError(statusCode, body)
	}

	var reports []Report
	if err := json.Unmarshal(body, &reports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reports: %w", err)
	}
	return reports, nil
}

// Create creates a report and returns it as stored by the server.
func (c *reportImpl) Create(ctx context.Context, input CreateInput) (Report, error) {
	body, statusCode, err := c.httpClient.Post(ctx, c.collectionURL(), input, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create report: %w", err)
	}
	if statusCode != http.StatusCreated {
		return Report{}, newAPIError(statusCode, body)
	}
	return decodeReport(body)
}

// Update merge-patches the report identified by id.
func (c *reportImpl) Update(ctx context.Context, id string, input UpdateInput) (Report, error) {
	body, statusCode, err := c.httpClient.Put(ctx, c.itemURL(id), input, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to update report: %w", err)
	}
	if statusCode != http.StatusOK {
		return Report{}, newAPIError(statusCode, body)
	}
	return decodeReport(body)
}

// Delete removes the report identified by id.
func (c *reportImpl) Delete(ctx context.Context, id string) error {
	body, statusCode, err := c.httpClient.Delete(ctx, c.itemURL(id), nil)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if statusCode != http.StatusOK {
		return newAPIError(statusCode, body)
	}
	return nil
}

func (c *reportImpl) collectionURL() string {
	return c.baseURL + PathReports
}

func (c *reportImpl) itemURL(id string) string {
	return fmt.Sprintf("%s%s/%s", c.baseURL, PathReports, url.PathEscape(id))
}

func decodeReport(body []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(body, &r); err != nil {
		return Report{}, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return r, nil
}

// newAPIError maps 404 to ErrNotFound so callers can use errors.Is.
func newAPIError(statusCode int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	apiErr := &APIError{StatusCode: statusCode, Message: eb.Error}
	if statusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

package reportsrv

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) IReport {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(ReportConfig{BaseURL: srv.URL + "/"})
}

func TestList(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/reports" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"1","title":"A","progress":75,"status":"in-progress","createdAt":"2024-01-01T00:00:00.000Z","updatedAt":"2024-01-15T00:00:00.000Z"}]`))
	})

	reports, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 1 || reports[0].ID != "1" || reports[0].Progress != 75 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
	if reports[0].UpdatedAt.Day() != 15 {
		t.Errorf("updatedAt not parsed: %v", reports[0].UpdatedAt)
	}
}

func TestCreate(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Title != "X" || in.Progress != 10 {
			t.Errorf("unexpected body %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1700000000000","title":"X","progress":10}`))
	})

	got, err := c.Create(context.Background(), CreateInput{Title: "X", Progress: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != "1700000000000" {
		t.Errorf("id = %q", got.ID)
	}
}

func TestUpdateSendsOnlySetFields(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"progress":100,"status":"completed"}` {
			t.Errorf("body = %s", b)
		}
		_, _ = w.Write([]byte(`{"id":"2","progress":100,"status":"completed"}`))
	})

	progress := 100
	status := StatusCompleted
	got, err := c.Update(context.Background(), "2", UpdateInput{Progress: &progress, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
}

func TestErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error_code":404,"error":"Report not found"}`))
		})
		err := c.Delete(context.Background(), "999")
		if !IsNotFound(err) {
			t.Fatalf("err = %v, want not found", err)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "Report not found" {
			t.Errorf("APIError not preserved: %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error_code":500,"error":"Failed to fetch reports"}`))
		})
		_, err := c.List(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
			t.Fatalf("err = %v", err)
		}
		if IsNotFound(err) {
			t.Error("500 must not be reported as not found")
		}
	})
}

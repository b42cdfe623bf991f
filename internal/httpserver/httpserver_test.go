package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"report-srv/internal/report/repository/memory"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type stubProducer struct {
	healthErr error
	published chan string
}

func (p *stubProducer) Publish(key, value []byte) error {
	if p.published != nil {
		p.published <- string(key)
	}
	return nil
}
func (p *stubProducer) Close() error                    { return nil }
func (p *stubProducer) HealthCheck() error              { return p.healthErr }

func newTestHandler(t *testing.T, producer pkgKafka.IProducer) http.Handler {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:        log.NewNop(),
		Mode:          gin.TestMode,
		Port:          8080,
		Environment:   "development",
		Seed:          memory.DefaultSeed(),
		KafkaProducer: producer,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h, err := srv.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	return h
}

func TestNewValidate(t *testing.T) {
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestReadyKafkaDown(t *testing.T) {
	h := newTestHandler(t, &stubProducer{healthErr: errors.New("down")})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestReportRoutesMounted(t *testing.T) {
	p := &stubProducer{published: make(chan string, 1)}
	h := newTestHandler(t, p)

	for _, path := range []string{"/reports", "/api/reports"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 3 {
			t.Errorf("GET %s: %d reports, err %v", path, len(body), err)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s: missing X-Request-ID", path)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/reports/1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE = %d, want 200", w.Code)
	}
	select {
	case key := <-p.published:
		if key != "1" {
			t.Errorf("event key = %q, want 1", key)
		}
	case <-time.After(2 * time.Second):
		t.Error("delete event not published")
	}

	// Both mounts share one store.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
	if strings.Contains(w.Body.String(), `"id":"1"`) {
		t.Errorf("deleted report still listed under /reports")
	}
}

func TestReadyReportsCount(t *testing.T) {
	h := newTestHandler(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Reports int    `json:"reports"`
		Kafka   string `json:"kafka"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Reports != 3 || body.Kafka != "disabled" {
		t.Errorf("unexpected ready body: %s", w.Body.String())
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRunStopsOnContextCancel(t *testing.T) {
	port := freePort(t)
	srv, err := New(log.NewNop(), Config{
		Mode:        gin.TestMode,
		Host:        "127.0.0.1",
		Port:        port,
		Environment: "development",
		Seed:        memory.DefaultSeed(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

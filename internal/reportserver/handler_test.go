package reportserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snaketest/internal/testutil"
)

// TestNewHandlerServesReport ensures the root path returns the report HTML.
func TestNewHandlerServesReport(t *testing.T) {
	reportPath := writeTempReport(t, "<html>snake report</html>")
	handler, err := NewHandler(Config{ReportPath: reportPath})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	for _, path := range []string{"/", "/report.html"} {
		req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "snake report") {
			t.Fatalf("%s: unexpected body %q", path, resp.Body.String())
		}
		if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
	}
}

// TestNewHandlerRejectsOtherPaths verifies unknown paths are not served.
func TestNewHandlerRejectsOtherPaths(t *testing.T) {
	handler, err := NewHandler(Config{ReportPath: writeTempReport(t, "<html></html>")})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/secrets.txt", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected error without report path")
	}
}

// TestNewHandlerServesHistory ensures the history endpoint returns the file content.
func TestNewHandlerServesHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.duckdb")
	testutil.WriteFile(t, dbPath, "duckdb")
	handler, err := NewHandler(Config{ReportPath: writeTempReport(t, "<html></html>"), HistoryDBPath: dbPath})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com"+HistoryDBRoute, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "duckdb" {
		t.Fatalf("unexpected db payload: %s", got)
	}

	req = httptest.NewRequest(http.MethodPost, "http://example.com"+HistoryDBRoute, nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}

// TestServeStopsOnContextCancel verifies the server answers and shuts down cleanly.
func TestServeStopsOnContextCancel(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Config{Addr: addr, ReportPath: writeTempReport(t, "<html>live</html>")})
	}()

	testutil.Eventually(t, 2*time.Second, 20*time.Millisecond, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, "report server did not start")

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

// writeTempReport writes a report file for handler tests.
func writeTempReport(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-report.html")
	testutil.WriteFile(t, path, contents)
	return path
}

// freeAddr reserves a local port and releases it for the server under test.
func freeAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()
	return addr
}

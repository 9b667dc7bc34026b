package reportserver

import (
	"errors"
	"net/http"
)

// HistoryDBRoute serves the history database for offline analysis.
const HistoryDBRoute = "/data/history.duckdb"

// NewHandler builds the HTTP handler for serving the generated report and history file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ReportPath == "" {
		return nil, errors.New("reportserver: report path is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveReport(cfg.ReportPath))
	if cfg.HistoryDBPath != "" {
		mux.Handle(HistoryDBRoute, serveFile(cfg.HistoryDBPath, "application/octet-stream"))
	}
	return mux, nil
}

// serveReport serves the report HTML at the root and as /report.html.
func serveReport(reportPath string) http.Handler {
	file := serveFile(reportPath, "text/html; charset=utf-8")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/report.html":
			file.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// serveFile serves a single file from disk for GET and HEAD requests.
func serveFile(path, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, path)
	})
}

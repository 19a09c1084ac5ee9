// internal/server/spa.go
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"grant-portal/internal/models"
)

// handleSPA serves the built frontend. Real files are served as-is; any
// other GET falls back to index.html so client-side routing keeps working
// after a hard refresh. API misses stay JSON 404s.
func (s *Server) handleSPA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api") {
		writeJSON(w, http.StatusNotFound, models.SubmissionResponse{
			Success: false,
			Message: "Resource not found.",
		})
		return
	}

	requested := filepath.Join(s.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

package server

import (
	_ "embed"
	"log"
	"net/http"
)

//go:embed static/index.html
var indexHTML []byte

// handleIndex serves the dashboard page shell. All data rendering happens
// client-side against the JSON API.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		log.Printf("[ERROR] write index page: %v", err)
	}
}

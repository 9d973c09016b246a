package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withAccessLog tags every request with an ID and logs method, path,
// status and latency.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Printf("[INFO] %s %s %s -> %d (%s) req=%s",
			r.Method, r.URL.Path, r.RemoteAddr, sw.status, time.Since(start), reqID)
	})
}

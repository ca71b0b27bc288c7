package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/adamspd/InterviewCoach/utils"
)

// apiKeyMiddleware protects the authoring and archive endpoints with a
// single bcrypt-hashed admin key. With API_KEY_HASH unset everything is open,
// which is the local-dev default.
func apiKeyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := os.Getenv("API_KEY_HASH")
		if hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("X-API-Key")
		if key == "" {
			http.Error(w, "Missing API key", http.StatusUnauthorized)
			return
		}

		if !utils.CheckAPIKey(hash, key) {
			utils.LogHTTP("Rejected request with invalid API key for %s", r.URL.Path)
			http.Error(w, "Invalid API key", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		utils.LogHTTP("%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

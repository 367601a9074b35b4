package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"car-rental/internal/middleware"
)

func writeJSON(w http.ResponseWriter, statusCode int, object interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(object)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// internalError logs the actual cause server-side and hands the client the
// generic 500 body. Handlers route every unclassified failure through here.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[%s] %s %s: %v", middleware.GetRequestID(r.Context()), r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

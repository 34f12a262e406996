package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// InternalErrorMessage is the only text a client sees for a 5xx response.
const InternalErrorMessage = "An unexpected error occurred."

// SafeError returns the error message for client responses.
// Server errors (5xx) are always replaced with InternalErrorMessage so storage
// or driver details never reach the caller.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return InternalErrorMessage
	}
	return err.Error()
}

// Created writes v with 201 and a Location header pointing at the new resource.
func Created(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

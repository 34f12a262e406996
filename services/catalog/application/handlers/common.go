// Package handlers holds one HTTP handler per catalog endpoint.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/productcatalog/pkg/httpx"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"An unexpected error occurred."`
} // @name ErrorResponse

// ValidationErrorResponse is returned when a request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

const invalidIDMessage = "Invalid id"

// pathID parses the {id} URL parameter as a positive integer. On failure it
// writes a 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, invalidIDMessage)
		return 0, false
	}
	return id, true
}

func productLocation(id int64) string {
	return "/api/products/" + strconv.FormatInt(id, 10)
}

func itemLocation(id int64) string {
	return "/api/item/" + strconv.FormatInt(id, 10)
}

package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Errors     any    `json:"errors,omitempty"`
}

// ResponseJSON writes data as a JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseOK returns 200 with a JSON body.
func ResponseOK(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// ResponseEmpty returns 200 with no body.
func ResponseEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func responseError(w http.ResponseWriter, code int, message string, errors any) {
	ResponseJSON(w, code, ErrorResponse{
		StatusCode: code,
		Message:    message,
		Errors:     errors,
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	responseError(w, http.StatusBadRequest, message, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	responseError(w, http.StatusNotFound, message, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	responseError(w, http.StatusConflict, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	responseError(w, http.StatusInternalServerError, message, nil)
}

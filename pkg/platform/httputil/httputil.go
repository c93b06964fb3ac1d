package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "personnummer/pkg/domain-errors"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are sent; an encoding failure can no longer change the status.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError translates a domain error into an HTTP response. Errors without
// a domain code become 500 internal_error and their message is not exposed.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		response := map[string]string{
			"error": DomainCodeToHTTPCode(domainErr.Code),
		}
		if domainErr.Message != "" {
			response["error_description"] = domainErr.Message
		}
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), response)
		return
	}

	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error": DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch {
	case dErrors.IsValidity(code):
		return http.StatusBadRequest
	case code == dErrors.CodeBadRequest, code == dErrors.CodeValidation:
		return http.StatusBadRequest
	case code == dErrors.CodeNegativeAge:
		return http.StatusUnprocessableEntity
	case code == dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the "error" field of
// the JSON response. Identity number validity codes are passed through so
// clients can tell which rule failed.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch {
	case dErrors.IsValidity(code), code == dErrors.CodeNegativeAge:
		return string(code)
	case code == dErrors.CodeNotFound:
		return "not_found"
	case code == dErrors.CodeBadRequest:
		return "bad_request"
	case code == dErrors.CodeValidation:
		return "validation_error"
	default:
		return "internal_error"
	}
}

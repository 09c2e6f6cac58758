// Package httpapi shapes the JSON surface: response payloads plus the error
// envelope clients branch on by code.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Code classifies an API error. Clients switch on the code; messages are
// human-readable and free to change.
type Code string

const (
	CodeNotFound         Code = "not_found"
	CodeInvalidID        Code = "invalid_id"
	CodeInvalidBody      Code = "invalid_body"
	CodeInvalidInput     Code = "invalid_input"
	CodeInvalidRange     Code = "invalid_range"
	CodeUnauthorized     Code = "unauthorized"
	CodeMethodNotAllowed Code = "method_not_allowed"
	CodeInternal         Code = "internal"
)

// Status is the HTTP status the code implies. Unknown codes degrade to 500
// rather than panicking in a response path.
func (c Code) Status() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidID, CodeInvalidBody, CodeInvalidInput, CodeInvalidRange:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// ErrorEnvelope is the uniform error body every endpoint emits.
type ErrorEnvelope struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// WriteError writes the envelope for code under the status the code maps to,
// keeping status and code from drifting apart across controllers.
func WriteError(w http.ResponseWriter, code Code, message string) error {
	return WriteJSON(w, code.Status(), &ErrorEnvelope{Code: code, Message: message})
}

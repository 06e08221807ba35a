package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
)

type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ApiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	Success    bool   `json:"success"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	WriteJSON(w, statusCode, ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

// WriteError renders err with the status derived from its kind. Internal
// causes are not echoed to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := KindOf(err)
	msg := err.Error()
	var e *Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	if code == codes.Internal {
		msg = "internal server error"
	}

	statusCode := HTTPStatus(code)
	WriteJSON(w, statusCode, ApiError{
		StatusCode: statusCode,
		Message:    msg,
		Kind:       KindName(code),
		Success:    false,
	})
}

// DecodeJSON decodes a request body and validates it.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return InvalidArgument("malformed request body")
	}
	return ValidateStruct(dst)
}

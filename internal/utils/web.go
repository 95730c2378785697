package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
	"github.com/newsrack-dev/newsrack/internal/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// WriteError maps an error to a JSON {"error": ...} body. Errors
// carrying a status code keep it; everything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if e, ok := err.(*apperrors.ErrorWithStatusCode); ok {
		code = e.StatusCode
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encErr := json.NewEncoder(w).Encode(errorBody{Error: err.Error()}); encErr != nil {
		logger.Log.Error("failed to encode error response", "error", encErr)
	}
}

// WriteData writes the {"success": true, "data": ...} envelope used by
// every JSON endpoint.
func WriteData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(successBody{Success: true, Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteJSON writes v as-is, for endpoints with a bespoke response shape.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &apperrors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &apperrors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &apperrors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}

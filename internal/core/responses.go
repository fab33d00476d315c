// BYH Music Store | 2026
// responses.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the wire shape for every failure. The top-level message
// field is the contract browser clients surface to users.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type PaginatedResponse struct {
	Data     any `json:"data"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(payload)
}

func OK(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

func Created(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusCreated, payload)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, pageSize, total int) {
	writeJSON(w, http.StatusOK, PaginatedResponse{
		Data:     data,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: message,
		Code:    "BAD_REQUEST",
	})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Message: fmt.Sprintf("%s not found", resource),
		Code:    "NOT_FOUND",
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Message: message,
		Code:    "UNAUTHORIZED",
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "insufficient permissions"
	}
	writeJSON(w, http.StatusForbidden, ErrorResponse{
		Message: message,
		Code:    "FORBIDDEN",
	})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorResponse{
		Message: message,
		Code:    "CONFLICT",
	})
}

// InternalServerError logs the cause and hides it from the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
		Code:    "INTERNAL",
	})
}

// JSONError writes an AppError with its own status, or falls back to 500.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, ErrorResponse{
			Message: appErr.Message,
			Code:    appErr.Code,
		})
		return
	}
	InternalServerError(w, err)
}

func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email")
		case "min":
			messages = append(
				messages,
				fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()),
			)
		case "max":
			messages = append(
				messages,
				fmt.Sprintf("%s must be at most %s", field, fieldErr.Param()),
			)
		case "oneof":
			messages = append(
				messages,
				fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param()),
			)
		case "gte":
			messages = append(
				messages,
				fmt.Sprintf("%s must be >= %s", field, fieldErr.Param()),
			)
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}

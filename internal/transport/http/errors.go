package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/service/impl"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps sentinel errors to user-safe messages. Internal
// detail never crosses this boundary.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "Internal error."

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Incorrect email/phone or password."
	case errors.Is(err, domain.ErrUserNotFound):
		status, msg = http.StatusNotFound, "User not found."
	case errors.Is(err, domain.ErrTokenNotFound):
		status, msg = http.StatusUnauthorized, "Invalid or expired token."
	case errors.Is(err, domain.ErrAlreadyVerified):
		status, msg = http.StatusConflict, "Already verified."
	case errors.Is(err, domain.ErrOtpExpired):
		status, msg = http.StatusBadRequest, "The code has expired. Request a new one."
	case errors.Is(err, domain.ErrOtpMismatch):
		status, msg = http.StatusBadRequest, "Incorrect code."
	case errors.Is(err, domain.ErrTokenExpired):
		status, msg = http.StatusBadRequest, "This link has expired."
	case errors.Is(err, domain.ErrTokenSignature), errors.Is(err, domain.ErrTokenMalformed):
		status, msg = http.StatusBadRequest, "Invalid link."
	case errors.Is(err, domain.ErrUnauthorized):
		status, msg = http.StatusForbidden, "Not authorized."
	case errors.Is(err, domain.ErrDuplicateKey):
		status, msg = http.StatusConflict, "An account with this email or phone number already exists."
	case errors.Is(err, impl.ErrEmptyCredential):
		status, msg = http.StatusBadRequest, "Missing required fields."
	case errors.Is(err, impl.ErrPasswordLength):
		status, msg = http.StatusBadRequest, "Password must be at least 8 characters."
	case errors.Is(err, domain.ErrTokenGenerationExhausted):
		// Operationally fatal: RNG or store exhaustion. Alert, don't retry.
		slog.Error("token generation exhausted", "error", err)
	default:
		slog.Error("unhandled service error", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

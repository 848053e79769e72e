package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/pkg/httpx"
)

// ErrorResponse is the uniform error body for every API route.
type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, ErrorResponse{Message: message})
}

// writeServiceError translates service and store errors into API responses.
// Validation failures echo their message; anything unexpected is logged and
// hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username is already taken")
	case errors.Is(err, service.ErrNotThreadCreator):
		writeError(w, http.StatusForbidden, "only the thread creator may do that")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrUsernameRequired):
		writeError(w, http.StatusBadRequest, "username is required")
	case errors.Is(err, service.ErrUsernameTooLong):
		writeError(w, http.StatusBadRequest, "username is too long")
	case errors.Is(err, service.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, "password is required")
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "thread title is required")
	case errors.Is(err, service.ErrTitleTooLong):
		writeError(w, http.StatusBadRequest, "thread title is too long")
	case errors.Is(err, service.ErrContentRequired):
		writeError(w, http.StatusBadRequest, "content is required")
	case errors.Is(err, service.ErrContentTooLong):
		writeError(w, http.StatusBadRequest, "content is too long")
	default:
		log.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

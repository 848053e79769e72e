package http

import (
	"encoding/json"
	"net/http"

	"github.com/wizardchad/forum/internal/forum/domain"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// HandleGet returns the authenticated user's own account.
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The session middleware already loaded the user for this request.
	if user, ok := ctx.Value(httpx.CtxKeyUser).(domain.User); ok {
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, newUserView(user))
		return
	}

	user, err := h.UserService.GetUserByID(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newUserView(user))
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
	AboutMe     string `json:"about_me"`
	Skillset    string `json:"skillset"`
}

// HandleUpdateProfile updates the caller's profile fields. Empty fields
// keep their stored values.
func (h *MeHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.UserService.UpdateProfile(ctx,
		httpx.UserIDFromContext(ctx), req.DisplayName, req.AboutMe, req.Skillset)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newUserView(user))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HandleChangePassword rotates the caller's password after verifying the
// current one.
func (h *MeHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if err := h.UserService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("password changed", "user_id", userID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

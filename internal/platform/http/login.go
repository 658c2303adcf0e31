package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/harvestnet/platform/pkg/slogx"
)

// maxLoginBody bounds the login JSON body.
const maxLoginBody = 1 << 16

// LoginHandler serves POST /api/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
	Validate    *validator.Validate
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges an email and password for a bearer token valid for 24 hours.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		platformsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	platformsdk.LoginResponse	"token, user"
//	@Failure		400		{object}	platformsdk.ErrorResponse	"Missing email or password, or a malformed body"
//	@Failure		401		{object}	platformsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	platformsdk.ErrorResponse	"Too many attempts"
//	@Failure		500		{object}	platformsdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&req); err != nil {
		platformsdk.ErrInvalidRequest.WithDescription("request body must be a JSON object").WriteError(w)
		return
	}
	if err := h.Validate.StructCtx(ctx, req); err != nil {
		platformsdk.ErrMissingCredentials.WriteError(w)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		platformsdk.ErrMissingCredentials.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		platformsdk.ErrInvalidCredentials.WriteError(w)
		return
	case err != nil:
		log.Error("login failed", "err", err)
		platformsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.LoginResponse{
		Token: token,
		User: platformsdk.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	})
}

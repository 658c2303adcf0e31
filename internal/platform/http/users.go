package http

import (
	"net/http"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/harvestnet/platform/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP lists every user, newest first.
//
//	@Summary		List users
//	@Description	Returns all users without password hashes, newest first. Any authenticated caller may list.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.ListUsersResponse	"users"
//	@Failure		401	{object}	platformsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500	{object}	platformsdk.ErrorResponse		"Internal server error"
//	@Router			/api/users [get].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "err", err)
		platformsdk.ErrServerError.WriteError(w)
		return
	}

	resp := platformsdk.ListUsersResponse{Users: make([]platformsdk.UserInfo, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserInfo(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func toUserInfo(u domain.User) platformsdk.UserInfo {
	return platformsdk.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Location:  u.Location,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}

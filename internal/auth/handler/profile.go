package handler

import (
	"fmt"
	"net/http"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/middleware"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	FullName          *string `json:"full_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// UpdateProfile mutates the authenticated user's profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	current, ok := middleware.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, fmt.Errorf("%w", auth.ErrUnauthorized))
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", auth.ErrValidation))
		return
	}

	if req.FullName == nil && req.ProfilePictureURL == nil {
		writeError(c, fmt.Errorf("%w: nothing to update", auth.ErrValidation))
		return
	}

	updated, err := h.users.Update(c.Request.Context(), current.ID, auth.UserUpdate{
		FullName:          req.FullName,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if updated == nil {
		writeError(c, fmt.Errorf("%w", auth.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, fmt.Errorf("%w", auth.ErrUnauthorized))
		return
	}
	c.JSON(http.StatusOK, toUserResponse(current))
}

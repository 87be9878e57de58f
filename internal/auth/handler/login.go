package handler

import (
	"fmt"

	"github.com/shad03152015/HotRide/internal/auth"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login authenticates an email-or-phone identifier with a password and
// returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", auth.ErrValidation))
		return
	}

	if req.Identifier == "" || req.Password == "" {
		writeError(c, fmt.Errorf("%w: identifier and password are required", auth.ErrValidation))
		return
	}

	user, err := h.credentials.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.issueSession(c, user)
}

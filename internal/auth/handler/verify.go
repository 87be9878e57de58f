package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/verification"

	"github.com/gin-gonic/gin"
)

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resendEmailCodeRequest struct {
	Email string `json:"email"`
}

// VerifyEmail consumes the code sent to the email, marks the account's
// email verified, and issues the first session token.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		writeError(c, fmt.Errorf("%w: email and code are required", auth.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(req.Email)

	ok, err := h.codes.Verify(ctx, email, req.Code, verification.ChannelEmail)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, fmt.Errorf("%w", auth.ErrInvalidCode))
		return
	}

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, fmt.Errorf("%w: no account found for this email", auth.ErrNotFound))
		return
	}

	verified := true
	user, err = h.users.Update(ctx, user.ID, auth.UserUpdate{IsEmailVerified: &verified})
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, fmt.Errorf("%w: no account found for this email", auth.ErrNotFound))
		return
	}

	h.issueSession(c, user)
}

// ResendEmailCode sends a fresh verification code to a registered email.
func (h *Handler) ResendEmailCode(c *gin.Context) {
	var req resendEmailCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		writeError(c, fmt.Errorf("%w: email is required", auth.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(req.Email)

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, fmt.Errorf("%w: no account found for this email", auth.ErrNotFound))
		return
	}

	if err := h.codes.SendEmailCode(ctx, email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

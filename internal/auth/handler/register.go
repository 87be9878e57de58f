package handler

import (
	"fmt"
	"net/http"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an email/password account and sends a verification
// code to the email. No session is issued until the email is verified.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", auth.ErrValidation))
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(c, fmt.Errorf("%w: email and password are required", auth.ErrValidation))
		return
	}

	user, err := h.credentials.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	// Delivery is best-effort here: the account exists and the code is on
	// record, so the client can use resend-email-code if this send failed.
	if err := h.codes.SendEmailCode(c.Request.Context(), *user.Email); err != nil {
		logger.Warn("registration verification email not delivered", map[string]any{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email for the verification code.",
	})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/credentials"
	"github.com/shad03152015/HotRide/internal/auth/verification"

	"github.com/gin-gonic/gin"
)

type sendPhoneCodeRequest struct {
	Phone string `json:"phone"`
}

type verifyPhoneRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// SendPhoneCode stores a fresh code for the phone and attempts SMS
// delivery. The code stays on record even if delivery fails, so retries
// and late deliveries still work.
func (h *Handler) SendPhoneCode(c *gin.Context) {
	var req sendPhoneCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		writeError(c, fmt.Errorf("%w: phone is required", auth.ErrValidation))
		return
	}

	if err := credentials.ValidatePhone(req.Phone); err != nil {
		writeError(c, err)
		return
	}

	if err := h.codes.SendPhoneCode(c.Request.Context(), req.Phone); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyPhone consumes the code sent to the phone. Marking the phone
// verified on an account is a separate profile update.
func (h *Handler) VerifyPhone(c *gin.Context) {
	var req verifyPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" || req.Code == "" {
		writeError(c, fmt.Errorf("%w: phone and code are required", auth.ErrValidation))
		return
	}

	ok, err := h.codes.Verify(c.Request.Context(), req.Phone, req.Code, verification.ChannelPhone)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, fmt.Errorf("%w", auth.ErrInvalidCode))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phone number verified"})
}

package handler

import (
	"fmt"

	"github.com/shad03152015/HotRide/internal/auth"

	"github.com/gin-gonic/gin"
)

type googleAuthRequest struct {
	IDToken string `json:"id_token"`
}

type appleAuthRequest struct {
	IdentityToken string         `json:"identity_token"`
	Nonce         string         `json:"nonce"`
	UserData      *appleUserData `json:"user_data,omitempty"`
}

// appleUserData is the profile the client captures on the first Apple
// sign-in; Apple never discloses it again in later tokens.
type appleUserData struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// GoogleAuth verifies a Google ID token, resolves or creates the account,
// and returns a session token.
func (h *Handler) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		writeError(c, fmt.Errorf("%w: id_token is required", auth.ErrValidation))
		return
	}

	identity, err := h.google.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		writeError(c, err)
		return
	}

	if identity.Email == "" {
		writeError(c, fmt.Errorf("%w: email not provided by google", auth.ErrMissingEmail))
		return
	}

	user, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}

	h.issueSession(c, user)
}

// AppleAuth verifies an Apple identity token, resolves or creates the
// account, and returns a session token.
func (h *Handler) AppleAuth(c *gin.Context) {
	var req appleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IdentityToken == "" {
		writeError(c, fmt.Errorf("%w: identity_token is required", auth.ErrValidation))
		return
	}

	identity, err := h.apple.Verify(c.Request.Context(), req.IdentityToken, req.Nonce)
	if err != nil {
		writeError(c, err)
		return
	}

	// Fill gaps from the one-time profile Apple gave the client.
	if req.UserData != nil {
		if identity.Email == "" {
			identity.Email = req.UserData.Email
		}
		if identity.FullName == "" {
			identity.FullName = req.UserData.FullName
		}
	}

	user, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}

	h.issueSession(c, user)
}

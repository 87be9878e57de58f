package handler

import (
	"errors"
	"net/http"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/logger"

	"github.com/gin-gonic/gin"
)

type userResponse struct {
	ID                string  `json:"id"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	FullName          *string `json:"full_name,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	OAuthProvider     string  `json:"oauth_provider"`
}

type authResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      userResponse `json:"user"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:                u.ID,
		Email:             u.Email,
		Phone:             u.Phone,
		FullName:          u.FullName,
		ProfilePictureURL: u.ProfilePictureURL,
		OAuthProvider:     string(u.OAuthProvider),
	}
}

// issueSession mints a token for the user and writes the standard
// authenticated response.
func (h *Handler) issueSession(c *gin.Context, user *auth.User) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	tokenString, err := h.tokens.Issue(user.ID, email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:     tokenString,
		TokenType: "bearer",
		User:      toUserResponse(user),
	})
}

// statusMessage maps an error kind onto an HTTP status plus a client-safe
// message. Unknown errors are logged and reported generically so internal
// details never reach the client.
func statusMessage(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrInvalidIdentifier):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auth.ErrInvalidCode):
		return http.StatusBadRequest, "Invalid or expired verification code"
	case errors.Is(err, auth.ErrMissingEmail):
		return http.StatusBadRequest, "Email not provided. Please try again."
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid email/phone or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusBadRequest, "Sign in failed. Please try again."
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden, "Your account has been suspended. Contact support."
	case errors.Is(err, auth.ErrNotFound):
		return http.StatusNotFound, "No account found with this email/phone"
	case errors.Is(err, auth.ErrConflict):
		return http.StatusConflict, "An account with this email already exists. Please log in with the original method."
	case errors.Is(err, auth.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests. Please wait before requesting another code."
	case errors.Is(err, auth.ErrDelivery),
		errors.Is(err, auth.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "Service is temporarily unavailable. Please try again later."
	}
	return http.StatusInternalServerError, "Something went wrong. Please try again."
}

func writeError(c *gin.Context, err error) {
	status, msg := statusMessage(err)
	if status == http.StatusInternalServerError {
		logger.Error("unhandled auth error", map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
	}
	c.JSON(status, gin.H{"error": msg})
}

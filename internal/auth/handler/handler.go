package handler

import (
	"context"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/auth/resolver"
	"github.com/shad03152015/HotRide/internal/auth/verification"

	"github.com/gin-gonic/gin"
)

// CredentialService handles password-based registration and login.
type CredentialService interface {
	Register(ctx context.Context, fullName, email, password string) (*auth.User, error)
	Authenticate(ctx context.Context, identifier, password string) (*auth.User, error)
}

// GoogleVerifier validates Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*auth.ExternalIdentity, error)
}

// AppleVerifier validates Apple identity tokens.
type AppleVerifier interface {
	Verify(ctx context.Context, rawToken, nonce string) (*auth.ExternalIdentity, error)
}

// CodeService generates, delivers, and consumes verification codes.
type CodeService interface {
	SendEmailCode(ctx context.Context, email string) error
	SendPhoneCode(ctx context.Context, phone string) error
	Verify(ctx context.Context, identifier, code string, channel verification.Channel) (bool, error)
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// UserReader is the store subset the handler needs for flows that reload
// or mutate accounts directly.
type UserReader interface {
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	Update(ctx context.Context, id string, upd auth.UserUpdate) (*auth.User, error)
}

type Handler struct {
	credentials CredentialService
	google      GoogleVerifier
	apple       AppleVerifier
	resolver    resolver.Resolver
	codes       CodeService
	tokens      TokenIssuer
	users       UserReader
}

func NewHandler(
	credentials CredentialService,
	google GoogleVerifier,
	apple AppleVerifier,
	identityResolver resolver.Resolver,
	codes CodeService,
	tokens TokenIssuer,
	users UserReader,
) *Handler {
	return &Handler{
		credentials: credentials,
		google:      google,
		apple:       apple,
		resolver:    identityResolver,
		codes:       codes,
		tokens:      tokens,
		users:       users,
	}
}

// RegisterRoutes mounts the auth surface. requireAuth gates the routes
// that need an authenticated user.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	grp := r.Group("/auth")

	grp.POST("/login", h.Login)
	grp.POST("/google", h.GoogleAuth)
	grp.POST("/apple", h.AppleAuth)
	grp.POST("/register", h.Register)
	grp.POST("/verify-email", h.VerifyEmail)
	grp.POST("/resend-email-code", h.ResendEmailCode)
	grp.POST("/send-phone-code", h.SendPhoneCode)
	grp.POST("/verify-phone", h.VerifyPhone)

	protected := grp.Group("")
	protected.Use(requireAuth)
	protected.PUT("/update-profile", h.UpdateProfile)
	protected.GET("/me", h.Me)
}

package app

import (
	"context"

	"github.com/shad03152015/HotRide/internal/auth/credentials"
	"github.com/shad03152015/HotRide/internal/auth/handler"
	"github.com/shad03152015/HotRide/internal/auth/provider/apple"
	"github.com/shad03152015/HotRide/internal/auth/provider/google"
	"github.com/shad03152015/HotRide/internal/auth/resolver"
	"github.com/shad03152015/HotRide/internal/auth/store"
	"github.com/shad03152015/HotRide/internal/auth/token"
	"github.com/shad03152015/HotRide/internal/auth/verification"
	"github.com/shad03152015/HotRide/internal/config"
	"github.com/shad03152015/HotRide/internal/mailer"
	"github.com/shad03152015/HotRide/internal/middleware"
	"github.com/shad03152015/HotRide/internal/sms"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := store.NewPostgresStore(infra.DB)
	credentialService := credentials.NewService(userStore)
	identityResolver := resolver.NewStoreResolver(userStore)
	tokenIssuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	googleVerifier, err := google.New(ctx, cfg.GoogleClientID)
	if err != nil {
		return nil, nil, err
	}

	appleVerifier, err := apple.New(ctx, cfg.AppleClientID)
	if err != nil {
		return nil, nil, err
	}

	mailSender := buildMailSender(cfg)
	smsSender := buildSMSSender(cfg)

	codeService := verification.NewService(
		infra.DB,
		mailSender,
		smsSender,
		verification.NewRedisThrottle(infra.Redis),
	)

	authHandler := handler.NewHandler(
		credentialService,
		googleVerifier,
		appleVerifier,
		identityResolver,
		codeService,
		tokenIssuer,
		userStore,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenIssuer, userStore)
	requireAuth := middleware.GinRequireAuth(authMiddleware)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router, requireAuth)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

// buildMailSender returns the SMTP sender when configured, otherwise the
// console sender so development environments work without a relay.
func buildMailSender(cfg config.Config) mailer.Sender {
	if cfg.SMTPHost == "" {
		return &mailer.ConsoleSender{}
	}
	return mailer.NewSMTPSender(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.SMTPFromEmail,
		cfg.SMTPFromName,
	)
}

func buildSMSSender(cfg config.Config) sms.Sender {
	if cfg.TwilioAccountSID == "" {
		return &sms.ConsoleSender{}
	}
	return sms.NewTwilioSender(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
	)
}

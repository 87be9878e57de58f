package sms

import (
	"context"

	"github.com/shad03152015/HotRide/internal/logger"
)

// Sender delivers verification codes over SMS. Implementations report
// transport failures as errors and never panic.
type Sender interface {
	SendVerificationCode(ctx context.Context, to string, code string) error
}

// ConsoleSender logs the code in plaintext instead of sending it, so local
// flows can complete without a Twilio account. Development environments
// only; production deployments must configure a real sender.
type ConsoleSender struct{}

func (c *ConsoleSender) SendVerificationCode(ctx context.Context, to string, code string) error {
	logger.Info("verification sms (console)", map[string]any{
		"to":   to,
		"code": code,
	})
	return nil
}

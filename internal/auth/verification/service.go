package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shad03152015/HotRide/internal/auth"
	"github.com/shad03152015/HotRide/internal/db"
	"github.com/shad03152015/HotRide/internal/logger"
	"github.com/shad03152015/HotRide/internal/mailer"
	"github.com/shad03152015/HotRide/internal/sms"
)

// Channel is the delivery medium a code was sent over. A code sent over
// one channel can only be consumed over the same channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

const codeTTL = 10 * time.Minute

// Throttle limits how often codes may be sent to one identifier.
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Service generates, stores, delivers, and consumes verification codes.
// At most one live code exists per (identifier, channel); a new send
// replaces the previous code.
type Service struct {
	db       *db.DB
	mail     mailer.Sender
	sms      sms.Sender
	throttle Throttle
}

func NewService(db *db.DB, mail mailer.Sender, smsSender sms.Sender, throttle Throttle) *Service {
	return &Service{
		db:       db,
		mail:     mail,
		sms:      smsSender,
		throttle: throttle,
	}
}

// Store upserts the code for (identifier, channel), resetting expiry and
// the consumed flag. Whatever code was live before is gone after this.
func (s *Service) Store(ctx context.Context, identifier, code string, channel Channel) error {
	identifier = normalizeIdentifier(identifier, channel)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verification_codes (identifier, channel, code, verified, expires_at, created_at)
		VALUES ($1, $2, $3, false, NOW() + $4 * INTERVAL '1 second', NOW())
		ON CONFLICT (identifier, channel) DO UPDATE
		SET code = EXCLUDED.code,
		    verified = false,
		    expires_at = EXCLUDED.expires_at,
		    created_at = EXCLUDED.created_at
	`,
		identifier,
		string(channel),
		code,
		int(codeTTL.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

// Verify consumes the live code for (identifier, channel). The consume is
// a single guarded UPDATE, so a code can satisfy at most one successful
// verification even under concurrent requests. Returns false for unknown,
// already-consumed, or expired codes.
func (s *Service) Verify(ctx context.Context, identifier, code string, channel Channel) (bool, error) {
	identifier = normalizeIdentifier(identifier, channel)

	res, err := s.db.ExecContext(ctx, `
		UPDATE verification_codes
		SET verified = true
		WHERE identifier = $1
		  AND channel = $2
		  AND code = $3
		  AND verified = false
		  AND expires_at > NOW()
	`,
		identifier,
		string(channel),
		code,
	)
	if err != nil {
		return false, fmt.Errorf("verify code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("verify code: %w", err)
	}
	return rows == 1, nil
}

// SendEmailCode generates a fresh code for the email, stores it, and mails
// it. The code is stored before the send, so a delivery fault never strands
// the user without a code on record.
func (s *Service) SendEmailCode(ctx context.Context, email string) error {
	code, err := s.prepare(ctx, email, ChannelEmail)
	if err != nil {
		return err
	}

	if err := s.mail.SendVerificationCode(ctx, email, code); err != nil {
		logger.Error("verification email delivery failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w", auth.ErrDelivery)
	}
	return nil
}

// SendPhoneCode mirrors SendEmailCode over SMS.
func (s *Service) SendPhoneCode(ctx context.Context, phone string) error {
	code, err := s.prepare(ctx, phone, ChannelPhone)
	if err != nil {
		return err
	}

	if err := s.sms.SendVerificationCode(ctx, phone, code); err != nil {
		logger.Error("verification sms delivery failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w", auth.ErrDelivery)
	}
	return nil
}

func (s *Service) prepare(ctx context.Context, identifier string, channel Channel) (string, error) {
	if s.throttle != nil {
		key := string(channel) + ":" + normalizeIdentifier(identifier, channel)
		allowed, err := s.throttle.Allow(ctx, key)
		if err != nil {
			// throttle faults must not block sends
			logger.Warn("send throttle unavailable", map[string]any{
				"error": err.Error(),
			})
		} else if !allowed {
			return "", fmt.Errorf("%w", auth.ErrRateLimited)
		}
	}

	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	if err := s.Store(ctx, identifier, code, channel); err != nil {
		return "", err
	}
	return code, nil
}

func normalizeIdentifier(identifier string, channel Channel) string {
	if channel == ChannelEmail {
		return strings.ToLower(identifier)
	}
	return identifier
}

// internal/app/credential_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"rent_notification_bot/internal/domain/credential"
	domainTelegram "rent_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// CredentialCheckService watches the delegated refresh token's remaining
// lifetime and warns the operator before it expires.
type CredentialCheckService interface {
	RunExpiryCheck(ctx context.Context) error
}

// CredentialCheckServiceImpl implements the CredentialCheckService interface.
type CredentialCheckServiceImpl struct {
	tokenDate      string                // issuance date (YYYY-MM-DD), may be empty
	telegramClient domainTelegram.Client // nil when the bot is not configured
	chatID         int64
	logger         *logrus.Entry
}

func NewCredentialCheckService(
	tokenDate string,
	tc domainTelegram.Client,
	chatID int64,
	logger *logrus.Entry,
) *CredentialCheckServiceImpl {
	return &CredentialCheckServiceImpl{
		tokenDate:      tokenDate,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

func (s *CredentialCheckServiceImpl) RunExpiryCheck(_ context.Context) error {
	verdict := credential.CheckExpiry(s.tokenDate, time.Now())

	switch verdict.Outcome {
	case credential.OutcomeNotConfigured:
		// Fail open: absence of tracking must not produce false alarms.
		s.logger.Info("AZURE_TOKEN_DATE not set, skipping expiry check.")
		return nil
	case credential.OutcomeInvalidInput:
		s.logger.WithField("token_date", s.tokenDate).Error("Invalid AZURE_TOKEN_DATE, cannot check token expiry")
		return nil
	}

	s.logger.Infof("Token created: %s (%d days ago, ~%d days until expiry)",
		verdict.IssuedOn.Format("2006-01-02"), verdict.DaysSinceIssue, verdict.DaysUntilExpiry)

	if !verdict.NeedsWarning {
		s.logger.Info("Token is not near expiry. No action needed.")
		return nil
	}

	if s.telegramClient == nil || s.chatID == 0 {
		s.logger.Error("Cannot send warning: Telegram bot or chat ID not configured.")
		s.logger.Warnf("WARNING: %s", verdict.Message)
		return nil
	}

	err := s.telegramClient.SendMessage(s.chatID, verdict.Message, &telebot.SendOptions{
		ParseMode: telebot.ModeMarkdown,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to send expiry warning via Telegram")
		return fmt.Errorf("failed to send expiry warning: %w", err)
	}
	s.logger.Info("Expiry warning sent via Telegram.")
	return nil
}

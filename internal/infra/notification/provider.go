package notification

import (
	"context"
	"log/slog"

	"neighborly/config"
	"neighborly/internal/domain/service"
	"neighborly/internal/errors"
)

// NewFromConfig creates the push sender, or nothing when Firebase is not configured.
// Consumers take the sender as optional and treat nil as push disabled.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		logger.Info("Firebase not configured, push notifications disabled")

		return nil, nil
	}

	svc, err := NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

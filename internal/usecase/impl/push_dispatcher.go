package impl

import (
	"context"
	"log/slog"

	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/repository"
	"neighborly/internal/domain/service"

	"github.com/pkg/errors"
)

// pushDispatcher mirrors inbox notifications to the recipient's registered devices.
// A nil sender disables push entirely.
type pushDispatcher struct {
	deviceRepo repository.DeviceRepository
	sender     service.NotificationService
}

func newPushDispatcher(deviceRepo repository.DeviceRepository, sender service.NotificationService) *pushDispatcher {
	return &pushDispatcher{
		deviceRepo: deviceRepo,
		sender:     sender,
	}
}

func (d *pushDispatcher) enabled() bool {
	return d != nil && d.sender != nil && d.deviceRepo != nil
}

// dispatch sends the notification to every active device of its recipient.
// Tokens the provider reports as invalid are pruned; a failed prune is only logged.
func (d *pushDispatcher) dispatch(ctx context.Context, logger *slog.Logger, notification *entity.Notification) error {
	if !d.enabled() || notification == nil {
		return nil
	}

	devices, err := d.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load devices for push")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":            string(notification.Type),
		"notification_id": notification.ID.String(),
	}
	if notification.RequestID != nil {
		data["request_id"] = notification.RequestID.String()
	}

	success, failure, invalidTokens, err := d.sender.SendBatchNotification(ctx, tokens, pushTitle(notification.Type), notification.Message, data)
	if err != nil {
		return errors.Wrap(err, "failed to send push batch")
	}

	logger.Debug("Push delivered",
		slog.Any("userID", notification.UserID),
		slog.Int("success", success),
		slog.Int("failure", failure),
	)

	if len(invalidTokens) == 0 {
		return nil
	}

	if err := d.deviceRepo.DeleteByFCMTokens(ctx, invalidTokens); err != nil {
		logger.Warn("Failed to prune invalid device tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))

		return nil
	}

	logger.Info("Pruned invalid device tokens", slog.Int("count", len(invalidTokens)))

	return nil
}

func pushTitle(notificationType entity.NotificationType) string {
	switch notificationType {
	case entity.NotificationRequestAccepted:
		return "Request accepted"
	case entity.NotificationRequestRejected:
		return "Request declined"
	case entity.NotificationRequestCanceled:
		return "Request canceled"
	case entity.NotificationRequestCompleted:
		return "Request completed"
	default:
		return "Request update"
	}
}

package service

import (
	"context"
)

// NotificationService sends device push notifications.
// It backs the inbox, never replaces it: a failed push leaves the stored notification intact.
type NotificationService interface {
	// SendBatchNotification sends the same message to every token.
	// invalidTokens lists tokens the provider will never accept again, so callers can prune them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}

package handler

import (
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the in-app inbox handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListNotifications returns the caller's inbox, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, notifications, "Notifications retrieved successfully")
}

// UnreadCount returns how many notifications the caller has not read yet.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.MarkRead(c.Request().Context(), user.ID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Notification marked as read")
}

// MarkAllRead marks the whole inbox as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"updated": updated}, "Notifications marked as read")
}

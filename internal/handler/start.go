package handler

import (
	"flashword/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.isAuthorized(c)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(msgPasswordPrompt)
	}

	return h.show(c, h.mainMenuText(), mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.show(c, h.mainMenuText(), mainMenuMarkup())
}

// isAuthorized uses the flag set by the auth middleware, falling back to the service
func (h *Handler) isAuthorized(c tele.Context) (bool, error) {
	if v, ok := c.Get(middleware.AuthorizedKey).(bool); ok {
		return v, nil
	}

	userID := c.Sender().ID
	if err := h.authService.EnsureUserExists(userID); err != nil {
		return false, err
	}
	return h.authService.IsAuthorized(userID)
}

package middleware

import (
	"strings"

	"flashword/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthorizedKey is the context key holding the authorization verdict
const AuthorizedKey = "authorized"

const (
	msgError          = "Something went wrong. Please try again later."
	msgPasswordPrompt = "Send the password first. Use /start to begin."
)

// AuthMiddleware creates authentication middleware.
// Plain messages and /start always pass so the password can be typed;
// buttons and other commands need authorization.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			userID := sender.ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(msgError)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(msgError)
			}
			c.Set(AuthorizedKey, authorized)

			if !authorized {
				if c.Callback() != nil {
					logger.Debug("Rejected callback from unauthorized user", zap.Int64("user_id", userID))
					return c.Respond(&tele.CallbackResponse{Text: msgPasswordPrompt, ShowAlert: true})
				}
				if text := c.Text(); strings.HasPrefix(text, "/") && !strings.HasPrefix(text, "/start") {
					return c.Send(msgPasswordPrompt)
				}
			}

			return next(c)
		}
	}
}

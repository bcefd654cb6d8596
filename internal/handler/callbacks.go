package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseInts splits a "1|2|3" payload into integers
func parseInts(data string) ([]int, bool) {
	data = cleanCallbackData(data)
	if data == "" {
		return nil, false
	}

	parts := strings.Split(data, "|")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// parseSessionPayload splits a "<session>|<index>" payload; index is optional
func parseSessionPayload(data string) (string, int, bool) {
	parts := strings.SplitN(cleanCallbackData(data), "|", 2)
	if parts[0] == "" {
		return "", 0, false
	}
	if len(parts) == 1 {
		return parts[0], 0, true
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], n, true
}

func payload(c tele.Context) string {
	if cb := c.Callback(); cb != nil {
		return cb.Data
	}
	return ""
}

// callbackIDs parses the integer payload of the current callback
func callbackIDs(c tele.Context, want int) ([]int, bool) {
	ids, ok := parseInts(payload(c))
	if !ok || len(ids) != want {
		return nil, false
	}
	return ids, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback: acknowledge, don't send a new message
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message of a callback, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	return h.showToast(c, text, markup, "")
}

// showToast is show with a short notice on the callback answer
func (h *Handler) showToast(c tele.Context, text string, markup *tele.ReplyMarkup, toast string) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	if toast != "" {
		return c.Respond(&tele.CallbackResponse{Text: toast})
	}
	return c.Respond()
}

// notify answers a callback with an alert, or sends text for commands
func (h *Handler) notify(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// handleCallback acknowledges callbacks no registered button matched
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond(&tele.CallbackResponse{Text: "This button is no longer available"})
}

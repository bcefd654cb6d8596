package handler

import (
	"fmt"
	"strconv"
	"strings"

	"flashword/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var modeNames = map[domain.QuizMode]string{
	domain.ModeFlashcard:      "🃏 Flashcards",
	domain.ModeMultipleChoice: "✅ Multiple choice",
	domain.ModeMatching:       "🔀 Matching",
}

// handleStats shows the first page of quiz history
func (h *Handler) handleStats(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.showHistory(c, 1)
}

// handleHistoryPage handles page navigation
func (h *Handler) handleHistoryPage(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showHistory(c, ids[0])
}

func (h *Handler) showHistory(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.statsService.GetHistory(userID, page)
	if err != nil {
		h.logger.Error("Failed to get quiz history", zap.Error(err), zap.Int64("user_id", userID))
		return h.notify(c, "Failed to load stats")
	}
	if len(days) == 0 {
		return h.notify(c, "No finished rounds yet. Take a quiz first!")
	}

	text := "📊 Your results by day:"
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(days)+2)

	now := h.statsService.Now()
	for _, day := range days {
		label := fmt.Sprintf("%s: %d rounds, %d%%", day.DisplayString(now), day.Attempts, day.Accuracy())
		rows = append(rows, markup.Row(markup.Data(label, uqDay, day.DateString(), strconv.Itoa(page))))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", uqHistoryPage, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", uqHistoryPage, strconv.Itoa(page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.show(c, text, markup)
}

// handleDay shows the rounds finished on the selected day
func (h *Handler) handleDay(c tele.Context) error {
	userID := c.Sender().ID

	// "<YYYYMMDD>|<page>"
	ids, ok := callbackIDs(c, 2)
	if !ok {
		return c.Respond()
	}
	dateStr := fmt.Sprintf("%08d", ids[0])
	page := ids[1]

	h.logger.Debug("Handling day selection", zap.String("date", dateStr), zap.Int64("user_id", userID))

	results, err := h.statsService.GetResultsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get results by date", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load results"})
	}
	if len(results) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "No rounds on this day"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("◀️ Back", uqHistoryPage, strconv.Itoa(page)), btnMainMenu),
	)
	return h.show(c, renderResults(results), markup)
}

func renderResults(results []domain.QuizResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Rounds on this day (%d):\n", len(results))
	for _, r := range results {
		name, ok := modeNames[r.Mode]
		if !ok {
			name = string(r.Mode)
		}
		fmt.Fprintf(&b, "\n%s  %s: %d/%d", r.FinishedAt.Format("15:04"), name, r.Correct, r.Total)
	}
	return b.String()
}

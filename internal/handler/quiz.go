package handler

import (
	"fmt"
	"strconv"

	"flashword/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgNoWords = "There are no words to study yet. Add some first."

// handleQuiz starts a multiple-choice round
func (h *Handler) handleQuiz(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	questions := h.quizService.MultipleChoice(h.quiz.Questions, h.quiz.Options)
	if len(questions) == 0 {
		return h.notify(c, msgNoWords)
	}

	s := newMultipleChoiceSession(questions)
	h.startSession(userID, s)

	h.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("mode", string(s.mode)),
		zap.Int("questions", len(questions)),
	)
	return h.show(c, renderQuestion(s), questionMarkup(s))
}

// handleAnswer grades the option pressed by the user
func (h *Handler) handleAnswer(c tele.Context) error {
	id, option, ok := parseSessionPayload(payload(c))
	if !ok {
		return c.Respond()
	}

	var (
		text     string
		markup   *tele.ReplyMarkup
		accepted bool
	)
	found := h.withSession(c.Sender().ID, id, func(s *session) {
		correct, ok := s.answer(option)
		if !ok {
			return
		}
		accepted = true
		text = renderAnswer(s, correct)
		markup = nextQuestionMarkup(s)
	})
	if !found {
		return h.notify(c, msgStale)
	}
	if !accepted {
		return c.Respond()
	}
	return h.show(c, text, markup)
}

// handleNextQuestion shows the next question or finishes the round
func (h *Handler) handleNextQuestion(c tele.Context) error {
	userID := c.Sender().ID
	id, _, ok := parseSessionPayload(payload(c))
	if !ok {
		return c.Respond()
	}

	var (
		text     string
		markup   *tele.ReplyMarkup
		finished bool
		correct  int
		total    int
	)
	found := h.withSession(userID, id, func(s *session) {
		if !s.answered {
			// already advanced by an earlier press
			return
		}
		if s.advance() {
			text = renderQuestion(s)
			markup = questionMarkup(s)
			return
		}
		finished = true
		correct, total = s.correct, len(s.questions)
	})
	if !found {
		return h.notify(c, msgStale)
	}
	if finished {
		h.endSession(userID, id)
		return h.finishRound(c, domain.ModeMultipleChoice, correct, total)
	}
	if text == "" {
		return c.Respond()
	}
	return h.show(c, text, markup)
}

// handleMatching starts a matching round
func (h *Handler) handleMatching(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	items := h.quizService.Matching(h.quiz.MatchingPairs)
	if len(items) == 0 {
		return h.notify(c, msgNoWords)
	}

	s := newMatchingSession(items)
	h.startSession(userID, s)

	h.logger.Info("Matching started",
		zap.Int64("user_id", userID),
		zap.Int("pairs", s.pairs()),
	)
	return h.show(c, renderMatching(s), matchingMarkup(s))
}

// handleMatchPick handles a tile press in a matching round
func (h *Handler) handleMatchPick(c tele.Context) error {
	userID := c.Sender().ID
	id, index, ok := parseSessionPayload(payload(c))
	if !ok {
		return c.Respond()
	}

	var (
		text     string
		markup   *tele.ReplyMarkup
		result   pickResult
		finished bool
		score    int
		total    int
	)
	found := h.withSession(userID, id, func(s *session) {
		result = s.pick(index)
		if s.matchingDone() {
			finished = true
			score, total = s.matchingScore(), s.pairs()
			return
		}
		text = renderMatching(s)
		markup = matchingMarkup(s)
	})
	if !found {
		return h.notify(c, msgStale)
	}
	if finished {
		h.endSession(userID, id)
		return h.finishRound(c, domain.ModeMatching, score, total)
	}

	switch result {
	case pickIgnored:
		return h.showToast(c, text, markup, "")
	case pickMissed:
		return h.showToast(c, text, markup, "❌ Not a pair")
	case pickMatched:
		return h.showToast(c, text, markup, "✅ Match!")
	default:
		return h.show(c, text, markup)
	}
}

// handleAllFlashcards starts flashcards over every word
func (h *Handler) handleAllFlashcards(c tele.Context) error {
	return h.startFlashcards(c, 0)
}

// handleModuleFlashcards starts flashcards over one module
func (h *Handler) handleModuleFlashcards(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	return h.startFlashcards(c, ids[0])
}

func (h *Handler) startFlashcards(c tele.Context, moduleID int) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	cards, err := h.quizService.Flashcards(moduleID)
	if err != nil {
		return h.notify(c, "This module no longer exists.")
	}
	if len(cards) == 0 {
		return h.notify(c, msgNoWords)
	}

	s := newFlashcardSession(cards)
	h.startSession(userID, s)

	h.logger.Info("Flashcards started",
		zap.Int64("user_id", userID),
		zap.Int("module_id", moduleID),
		zap.Int("cards", len(cards)),
	)
	return h.show(c, renderCard(s), cardMarkup(s))
}

// handleFlip toggles the translation of the current card
func (h *Handler) handleFlip(c tele.Context) error {
	id, _, ok := parseSessionPayload(payload(c))
	if !ok {
		return c.Respond()
	}

	var (
		text   string
		markup *tele.ReplyMarkup
	)
	found := h.withSession(c.Sender().ID, id, func(s *session) {
		if s.current >= len(s.cards) {
			return
		}
		s.revealed = !s.revealed
		text = renderCard(s)
		markup = cardMarkup(s)
	})
	if !found {
		return h.notify(c, msgStale)
	}
	if text == "" {
		return c.Respond()
	}
	return h.show(c, text, markup)
}

// handleNextCard shows the next card or finishes the deck
func (h *Handler) handleNextCard(c tele.Context) error {
	userID := c.Sender().ID
	id, _, ok := parseSessionPayload(payload(c))
	if !ok {
		return c.Respond()
	}

	var (
		text     string
		markup   *tele.ReplyMarkup
		finished bool
		total    int
	)
	found := h.withSession(userID, id, func(s *session) {
		if s.nextCard() {
			text = renderCard(s)
			markup = cardMarkup(s)
			return
		}
		finished = true
		total = len(s.cards)
	})
	if !found {
		return h.notify(c, msgStale)
	}
	if finished {
		h.endSession(userID, id)
		// every card of a finished deck counts as reviewed
		return h.finishRound(c, domain.ModeFlashcard, total, total)
	}
	return h.show(c, text, markup)
}

// finishRound records the score and shows the summary
func (h *Handler) finishRound(c tele.Context, mode domain.QuizMode, correct, total int) error {
	userID := c.Sender().ID
	if err := h.quizService.RecordResult(userID, mode, correct, total); err != nil {
		h.logger.Error("Failed to record quiz result",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}
	return h.show(c, renderSummary(mode, correct, total), mainMenuMarkup())
}

func renderSummary(mode domain.QuizMode, correct, total int) string {
	switch mode {
	case domain.ModeFlashcard:
		return fmt.Sprintf("🎉 Deck finished! Cards reviewed: %d", total)
	case domain.ModeMatching:
		return fmt.Sprintf("🎉 All pairs matched! Clean matches: %d/%d", correct, total)
	default:
		return fmt.Sprintf("🎉 Quiz finished! Score: %d/%d (%d%%)", correct, total, correct*100/total)
	}
}

func questionMarkup(s *session) *tele.ReplyMarkup {
	q := s.questions[s.current]

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(q.Options)+1)
	for i, opt := range q.Options {
		rows = append(rows, markup.Row(markup.Data(opt, uqAnswer, s.id, strconv.Itoa(i))))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

func nextQuestionMarkup(s *session) *tele.ReplyMarkup {
	label := "➡️ Next"
	if s.current+1 >= len(s.questions) {
		label = "🏁 Finish"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(label, uqNextQuestion, s.id)),
		markup.Row(btnMainMenu),
	)
	return markup
}

func matchingMarkup(s *session) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	btns := make([]tele.Btn, len(s.items))
	for i, it := range s.items {
		label := it.Text
		switch {
		case it.Matched:
			label = "✅ " + label
		case i == s.selected:
			label = "👉 " + label
		}
		btns[i] = markup.Data(label, uqMatch, s.id, strconv.Itoa(i))
	}

	rows := make([]tele.Row, 0, len(btns)/2+2)
	for i := 0; i < len(btns); i += 2 {
		end := min(i+2, len(btns))
		rows = append(rows, markup.Row(btns[i:end]...))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

func cardMarkup(s *session) *tele.ReplyMarkup {
	flip := "🔄 Show translation"
	if s.revealed {
		flip = "🔄 Hide translation"
	}
	next := "➡️ Next"
	if s.current+1 >= len(s.cards) {
		next = "🏁 Finish"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(flip, uqFlip, s.id)),
		markup.Row(markup.Data(next, uqNextCard, s.id)),
		markup.Row(btnMainMenu),
	)
	return markup
}

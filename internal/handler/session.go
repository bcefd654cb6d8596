package handler

import (
	"fmt"
	"strings"

	"flashword/internal/domain"
	"flashword/internal/service"

	"github.com/google/uuid"
)

// session is one running learning round of a user.
// Buttons carry the session id so presses on old messages can be told apart.
type session struct {
	id   string
	mode domain.QuizMode

	// multiple choice
	questions []domain.Question
	current   int
	correct   int
	answered  bool

	// matching
	items    []domain.MatchItem
	selected int
	misses   int

	// flashcards
	cards    []domain.Word
	revealed bool
}

func newSession(mode domain.QuizMode) *session {
	return &session{id: uuid.NewString(), mode: mode, selected: -1}
}

func newMultipleChoiceSession(questions []domain.Question) *session {
	s := newSession(domain.ModeMultipleChoice)
	s.questions = questions
	return s
}

func newMatchingSession(items []domain.MatchItem) *session {
	s := newSession(domain.ModeMatching)
	s.items = items
	return s
}

func newFlashcardSession(cards []domain.Word) *session {
	s := newSession(domain.ModeFlashcard)
	s.cards = cards
	return s
}

// answer grades the option chosen for the current question.
// ok is false when the question was already answered or index is out of range.
func (s *session) answer(option int) (correct, ok bool) {
	if s.current >= len(s.questions) || s.answered {
		return false, false
	}
	q := s.questions[s.current]
	if option < 0 || option >= len(q.Options) {
		return false, false
	}

	s.answered = true
	if option == q.CorrectIndex {
		s.correct++
		return true, true
	}
	return false, true
}

// advance moves to the next question and reports whether one is left
func (s *session) advance() bool {
	if s.current < len(s.questions) {
		s.current++
	}
	s.answered = false
	return s.current < len(s.questions)
}

type pickResult int

const (
	pickIgnored pickResult = iota
	pickSelected
	pickMatched
	pickMissed
)

// pick handles a tile press in a matching round
func (s *session) pick(index int) pickResult {
	if index < 0 || index >= len(s.items) || s.items[index].Matched {
		return pickIgnored
	}

	if s.selected < 0 {
		s.selected = index
		return pickSelected
	}
	if s.selected == index {
		s.selected = -1
		return pickIgnored
	}

	first := s.items[s.selected]
	s.selected = -1
	if service.IsMatch(first, s.items[index]) {
		for i := range s.items {
			if s.items[i].WordID == first.WordID {
				s.items[i].Matched = true
			}
		}
		return pickMatched
	}

	s.misses++
	return pickMissed
}

func (s *session) pairs() int {
	return len(s.items) / 2
}

func (s *session) matchedPairs() int {
	n := 0
	for _, it := range s.items {
		if it.Matched {
			n++
		}
	}
	return n / 2
}

func (s *session) matchingDone() bool {
	return len(s.items) > 0 && s.matchedPairs() == s.pairs()
}

// matchingScore counts pairs found without any miss as the score
func (s *session) matchingScore() int {
	score := s.pairs() - s.misses
	if score < 0 {
		return 0
	}
	return score
}

// nextCard moves to the next flashcard and reports whether one is left
func (s *session) nextCard() bool {
	if s.current < len(s.cards) {
		s.current++
	}
	s.revealed = false
	return s.current < len(s.cards)
}

func renderQuestion(s *session) string {
	q := s.questions[s.current]
	return fmt.Sprintf("❓ Question %d/%d\n\nWhat does «%s» mean?", s.current+1, len(s.questions), q.Word.Word)
}

func renderAnswer(s *session, correct bool) string {
	q := s.questions[s.current]
	var b strings.Builder
	if correct {
		b.WriteString("✅ Correct!\n\n")
	} else {
		b.WriteString("❌ Incorrect.\n\n")
	}
	fmt.Fprintf(&b, "%s — %s", q.Word.Word, q.Answer())
	if q.Word.Example != "" {
		fmt.Fprintf(&b, "\n\n💬 %s", q.Word.Example)
	}
	fmt.Fprintf(&b, "\n\nScore: %d/%d", s.correct, s.current+1)
	return b.String()
}

func renderMatching(s *session) string {
	text := fmt.Sprintf("🔀 Match the pairs (%d/%d)", s.matchedPairs(), s.pairs())
	if s.selected >= 0 {
		text += fmt.Sprintf("\n\nSelected: %s", s.items[s.selected].Text)
	}
	return text
}

func renderCard(s *session) string {
	card := s.cards[s.current]
	text := fmt.Sprintf("🃏 Card %d/%d\n\n📝 %s", s.current+1, len(s.cards), card.Word)
	if s.revealed {
		text += fmt.Sprintf("\n🔄 %s", card.Translation)
		if card.Example != "" {
			text += fmt.Sprintf("\n\n💬 %s", card.Example)
		}
	}
	return text
}

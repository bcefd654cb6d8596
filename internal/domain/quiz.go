package domain

import "time"

// QuizMode identifies a learning mode
type QuizMode string

const (
	ModeFlashcard      QuizMode = "flashcard"
	ModeMultipleChoice QuizMode = "multiple_choice"
	ModeMatching       QuizMode = "matching"
)

// Valid reports whether the mode is known
func (m QuizMode) Valid() bool {
	switch m {
	case ModeFlashcard, ModeMultipleChoice, ModeMatching:
		return true
	}
	return false
}

// QuizResult is a finished quiz attempt
type QuizResult struct {
	ID         int
	UserID     int64
	Mode       QuizMode
	Correct    int
	Total      int
	FinishedAt time.Time
}

// Question is a multiple-choice question about one word
type Question struct {
	Word         Word
	Options      []string
	CorrectIndex int
}

// Answer returns the correct option text
func (q Question) Answer() string {
	return q.Options[q.CorrectIndex]
}

// MatchKind tells which side of a pair a match item shows
type MatchKind string

const (
	MatchWord        MatchKind = "word"
	MatchTranslation MatchKind = "translation"
)

// MatchItem is one tile of a matching round
type MatchItem struct {
	ID      int
	Text    string
	Kind    MatchKind
	WordID  int
	Matched bool
}

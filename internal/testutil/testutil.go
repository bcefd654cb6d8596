package testutil

import (
	"fmt"
	"math/rand/v2"
	"time"

	"flashword/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand returns a deterministic random source
func NewTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// NewTestWord creates a test word
func NewTestWord(id int, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		Word:        word,
		Translation: translation,
	}
}

// NewTestWords creates n words with ids 1..n and distinct translations
func NewTestWords(n int) []domain.Word {
	words := make([]domain.Word, n)
	for i := range words {
		words[i] = domain.Word{
			ID:          i + 1,
			Word:        fmt.Sprintf("word%d", i+1),
			Translation: fmt.Sprintf("translation%d", i+1),
		}
	}
	return words
}

// NewTestModule creates a module holding the given words
func NewTestModule(id int, name string, words ...domain.Word) *domain.Module {
	return &domain.Module{ID: id, Name: name, Words: words}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, attempts, correct, total int) domain.Day {
	return domain.Day{
		Date:     date,
		Attempts: attempts,
		Correct:  correct,
		Total:    total,
	}
}

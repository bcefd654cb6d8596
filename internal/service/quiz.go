package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"flashword/internal/domain"
	"flashword/internal/repository"

	"go.uber.org/zap"
)

// QuizService builds quiz rounds from the vocabulary and records their results
type QuizService struct {
	vocab   repository.VocabularyRepository
	results repository.ResultRepository
	logger  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService creates a new quiz service. A nil rng is seeded from the runtime.
func NewQuizService(
	vocab repository.VocabularyRepository,
	results repository.ResultRepository,
	rng *rand.Rand,
	logger *zap.Logger,
) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuizService{
		vocab:   vocab,
		results: results,
		logger:  logger,
		rng:     rng,
	}
}

func (s *QuizService) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// MultipleChoice builds up to count questions, each with the correct translation
// and up to options-1 distractors. A non-positive count asks about every word.
func (s *QuizService) MultipleChoice(count, options int) []domain.Question {
	if options < 2 {
		options = 2
	}
	if count <= 0 {
		count = math.MaxInt
	}

	targets := s.vocab.GetRandomWords(count)
	questions := make([]domain.Question, 0, len(targets))

	for _, target := range targets {
		opts := []string{target.Translation}
		seen := map[string]bool{target.Translation: true}
		for _, w := range s.vocab.GetRandomWordsExcluding(options-1, target.ID) {
			// two words can share a translation; keep options unambiguous
			if seen[w.Translation] {
				continue
			}
			seen[w.Translation] = true
			opts = append(opts, w.Translation)
		}

		s.shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})

		q := domain.Question{Word: target, Options: opts}
		for i, o := range opts {
			if o == target.Translation {
				q.CorrectIndex = i
				break
			}
		}
		questions = append(questions, q)
	}

	return questions
}

// Matching returns the shuffled tiles of a matching round of up to pairs words
func (s *QuizService) Matching(pairs int) []domain.MatchItem {
	words := s.vocab.GetRandomWords(pairs)

	items := make([]domain.MatchItem, 0, 2*len(words))
	for i, w := range words {
		items = append(items, domain.MatchItem{
			ID:     i,
			Text:   w.Word,
			Kind:   domain.MatchWord,
			WordID: w.ID,
		})
	}
	for i, w := range words {
		items = append(items, domain.MatchItem{
			ID:     i + len(words),
			Text:   w.Translation,
			Kind:   domain.MatchTranslation,
			WordID: w.ID,
		})
	}

	s.shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}

// IsMatch reports whether two tiles are the two halves of the same word
func IsMatch(a, b domain.MatchItem) bool {
	return a.ID != b.ID && a.WordID == b.WordID && a.Kind != b.Kind
}

// Flashcards returns the words of a module in random order.
// moduleID 0 means every word in the store.
func (s *QuizService) Flashcards(moduleID int) ([]domain.Word, error) {
	if moduleID == 0 {
		return s.vocab.GetRandomWords(math.MaxInt), nil
	}
	if s.vocab.GetModuleByID(moduleID) == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleNotFound)
	}
	return s.vocab.GetRandomWordsFromModule(moduleID, math.MaxInt), nil
}

// RecordResult stores the score of a finished round
func (s *QuizService) RecordResult(userID int64, mode domain.QuizMode, correct, total int) error {
	if !mode.Valid() || total <= 0 || correct < 0 || correct > total {
		return fmt.Errorf("%s %d/%d: %w", mode, correct, total, ErrInvalidResult)
	}

	err := s.results.SaveResult(domain.QuizResult{
		UserID:  userID,
		Mode:    mode,
		Correct: correct,
		Total:   total,
	})
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}

	s.logger.Info("Quiz result recorded",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
		zap.Int("correct", correct),
		zap.Int("total", total),
	)
	return nil
}

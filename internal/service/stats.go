package service

import (
	"fmt"
	"time"

	"flashword/internal/domain"
	"flashword/internal/repository"

	"go.uber.org/zap"
)

const (
	historyPageSize = 7
	retentionDays   = 60
)

// StatsService handles quiz history and cleanup
type StatsService struct {
	resultRepo repository.ResultRepository
	location   *time.Location
	logger     *zap.Logger
}

// NewStatsService creates a new stats service.
// location is the zone results are grouped by day in; nil means UTC.
func NewStatsService(resultRepo repository.ResultRepository, location *time.Location, logger *zap.Logger) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		resultRepo: resultRepo,
		location:   location,
		logger:     logger,
	}
}

// Now returns the current time in the grouping zone
func (s *StatsService) Now() time.Time {
	return time.Now().In(s.location)
}

// GetHistory returns one page of per-day quiz aggregates and the page count
func (s *StatsService) GetHistory(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * historyPageSize
	days, err := s.resultRepo.GetDaysWithResults(userID, historyPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.resultRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + historyPageSize - 1) / historyPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetResultsByDate returns the attempts of one day given as YYYYMMDD
func (s *StatsService) GetResultsByDate(userID int64, dateStr string) ([]domain.QuizResult, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.resultRepo.GetResultsByDate(userID, date)
}

// CleanupOldData removes quiz results older than the retention window
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old quiz results", zap.Int("retention_days", retentionDays))

	err := s.resultRepo.CleanOldResults(retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old quiz results", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}

package postgres

import (
	"fmt"
	"testing"
	"time"

	"flashword/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewResultRepo_DefaultsToUTC(t *testing.T) {
	repo := NewResultRepo(nil, "")
	assert.Equal(t, "UTC", repo.timezone)
}

func TestResultRepo_SaveResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	result := domain.QuizResult{UserID: 123, Mode: domain.ModeMatching, Correct: 5, Total: 6}

	mock.ExpectExec("INSERT INTO quiz_results").
		WithArgs(int64(123), "matching", 5, 6).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveResult(result)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_SaveResult_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	mock.ExpectExec("INSERT INTO quiz_results").
		WithArgs(int64(1), "flashcard", 0, 3).
		WillReturnError(fmt.Errorf("insert failed"))

	err = repo.SaveResult(domain.QuizResult{UserID: 1, Mode: domain.ModeFlashcard, Total: 3})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetDaysWithResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "Asia/Ho_Chi_Minh")

	userID := int64(123)

	rows := sqlmock.NewRows([]string{"day", "count", "sum", "sum"}).
		AddRow(time.Now(), 2, 15, 20).
		AddRow(time.Now().AddDate(0, 0, -1), 1, 3, 4)

	mock.ExpectQuery("SELECT DATE\\(finished_at AT TIME ZONE \\$2\\) AS day").
		WithArgs(userID, "Asia/Ho_Chi_Minh", 7, 0).
		WillReturnRows(rows)

	days, err := repo.GetDaysWithResults(userID, 7, 0)

	assert.NoError(t, err)
	assert.Len(t, days, 2)
	assert.Equal(t, 2, days[0].Attempts)
	assert.Equal(t, 15, days[0].Correct)
	assert.Equal(t, 20, days[0].Total)
	assert.Equal(t, 1, days[1].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetDaysWithResults_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	mock.ExpectQuery("SELECT DATE\\(finished_at").
		WithArgs(int64(123), "UTC", 7, 7).
		WillReturnError(fmt.Errorf("query error"))

	days, err := repo.GetDaysWithResults(123, 7, 7)

	assert.Error(t, err)
	assert.Nil(t, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetDaysWithResults_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	// wrong column type to cause scan error
	rows := sqlmock.NewRows([]string{"day", "count", "sum", "sum"}).
		AddRow("invalid", 1, 1, 1)

	mock.ExpectQuery("SELECT DATE\\(finished_at").
		WithArgs(int64(123), "UTC", 7, 0).
		WillReturnRows(rows)

	days, err := repo.GetDaysWithResults(123, 7, 0)

	assert.Error(t, err)
	assert.Nil(t, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetTotalDaysCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	mock.ExpectQuery("SELECT COUNT\\(DISTINCT DATE\\(finished_at AT TIME ZONE \\$2\\)\\)").
		WithArgs(int64(123), "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))

	count, err := repo.GetTotalDaysCount(123)

	assert.NoError(t, err)
	assert.Equal(t, 14, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetResultsByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	userID := int64(123)
	date := time.Date(2024, 12, 12, 15, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "mode", "correct", "total", "finished_at"}).
		AddRow(2, userID, "matching", 6, 6, date).
		AddRow(1, userID, "multiple_choice", 7, 10, date.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, mode, correct, total, finished_at FROM quiz_results WHERE user_id = \\$1").
		WithArgs(userID, "UTC", "2024-12-12").
		WillReturnRows(rows)

	results, err := repo.GetResultsByDate(userID, date)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, domain.ModeMatching, results[0].Mode)
	assert.Equal(t, 6, results[0].Correct)
	assert.Equal(t, domain.ModeMultipleChoice, results[1].Mode)
	assert.Equal(t, 10, results[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_GetResultsByDate_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")
	date := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, user_id, mode").
		WithArgs(int64(123), "UTC", "2024-12-12").
		WillReturnError(fmt.Errorf("query error"))

	results, err := repo.GetResultsByDate(123, date)

	assert.Error(t, err)
	assert.Nil(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepo_CleanOldResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewResultRepo(db, "UTC")

	mock.ExpectExec("DELETE FROM quiz_results WHERE finished_at").
		WithArgs(60).
		WillReturnResult(sqlmock.NewResult(0, 10))

	err = repo.CleanOldResults(60)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

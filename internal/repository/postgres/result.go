package postgres

import (
	"database/sql"
	"time"

	"flashword/internal/domain"
)

// ResultRepo implements repository.ResultRepository
type ResultRepo struct {
	db       *sql.DB
	timezone string
}

// NewResultRepo creates a new quiz result repository.
// Days are bucketed in the given IANA timezone.
func NewResultRepo(db *sql.DB, timezone string) *ResultRepo {
	if timezone == "" {
		timezone = "UTC"
	}
	return &ResultRepo{db: db, timezone: timezone}
}

// SaveResult stores a finished quiz attempt
func (r *ResultRepo) SaveResult(result domain.QuizResult) error {
	query := `
		INSERT INTO quiz_results (user_id, mode, correct, total)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, result.UserID, string(result.Mode), result.Correct, result.Total)
	return err
}

// GetDaysWithResults returns per-day aggregates, newest first
func (r *ResultRepo) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(finished_at AT TIME ZONE $2) AS day, COUNT(*), SUM(correct), SUM(total)
		FROM quiz_results
		WHERE user_id = $1
		GROUP BY DATE(finished_at AT TIME ZONE $2)
		ORDER BY day DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(query, userID, r.timezone, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.Attempts, &d.Correct, &d.Total); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns the number of days with at least one result
func (r *ResultRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(finished_at AT TIME ZONE $2))
		FROM quiz_results
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID, r.timezone).Scan(&count)
	return count, err
}

// GetResultsByDate returns the attempts finished on one day
func (r *ResultRepo) GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error) {
	query := `
		SELECT id, user_id, mode, correct, total, finished_at
		FROM quiz_results
		WHERE user_id = $1
			AND DATE(finished_at AT TIME ZONE $2) = $3
		ORDER BY finished_at DESC
	`

	rows, err := r.db.Query(query, userID, r.timezone, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.QuizResult
	for rows.Next() {
		var res domain.QuizResult
		var mode string
		if err := rows.Scan(&res.ID, &res.UserID, &mode, &res.Correct, &res.Total, &res.FinishedAt); err != nil {
			return nil, err
		}
		res.Mode = domain.QuizMode(mode)
		results = append(results, res)
	}

	return results, rows.Err()
}

// CleanOldResults deletes results older than the given number of days
func (r *ResultRepo) CleanOldResults(days int) error {
	query := `
		DELETE FROM quiz_results
		WHERE finished_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}

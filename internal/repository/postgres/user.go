package postgres

import (
	"database/sql"
	"errors"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user passed the password gate
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized_at IS NOT NULL FROM bot_users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser stamps the authorization time, creating the user if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO bot_users (user_id, authorized_at)
		VALUES ($1, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET authorized_at = COALESCE(bot_users.authorized_at, NOW())
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates an unauthorized user row if missing
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO bot_users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

package storage

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"expensetracker/internal/models"
)

// ErrUsernameTaken is returned when creating a user with a username that
// already exists.
var ErrUsernameTaken = errors.New("username already taken")

const userColumns = `id, username, password_hash, email, full_name, bio,
	profile_picture, created_at, last_login`

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u         models.User
		email     sql.NullString
		fullName  sql.NullString
		bio       sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash,
		&email, &fullName, &bio,
		&u.ProfilePicture, &u.CreatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}
	u.Email = email.String
	u.FullName = fullName.String
	u.Bio = bio.String
	u.LastLogin = lastLogin.Time
	return &u, nil
}

// CreateUser creates a new user with the given username, password hash and
// profile picture filename. An empty picture gets the default asset.
func (db *DB) CreateUser(username, passwordHash, profilePicture string) (*models.User, error) {
	if profilePicture == "" {
		profilePicture = models.DefaultProfilePicture
	}

	result, err := db.conn.Exec(
		"INSERT INTO users (username, password_hash, profile_picture) VALUES (?, ?, ?)",
		username, passwordHash, profilePicture,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetUserByID(id)
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(id int64) (*models.User, error) {
	return scanUser(db.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	))
}

// GetUserByUsername retrieves a user by username.
func (db *DB) GetUserByUsername(username string) (*models.User, error) {
	return scanUser(db.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE username = ?", username,
	))
}

// UsernameExists reports whether a user with the given username exists.
func (db *DB) UsernameExists(username string) (bool, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username = ?", username,
	).Scan(&n)
	return n > 0, err
}

// UpdateLastLogin stamps the user's last successful login time.
func (db *DB) UpdateLastLogin(userID int64, at time.Time) error {
	_, err := db.conn.Exec(
		"UPDATE users SET last_login = ? WHERE id = ?", at, userID,
	)
	return err
}

// UpdateProfile persists the user's mutable profile fields (email, full
// name, bio, profile picture).
func (db *DB) UpdateProfile(u *models.User) error {
	_, err := db.conn.Exec(
		`UPDATE users
		 SET email = NULLIF(?, ''), full_name = NULLIF(?, ''), bio = NULLIF(?, ''),
		     profile_picture = ?
		 WHERE id = ?`,
		u.Email, u.FullName, u.Bio, u.ProfilePicture, u.ID,
	)
	return err
}

// DeleteUser removes a user. Owned expenses and sessions are removed by
// the foreign key cascade.
func (db *DB) DeleteUser(userID int64) error {
	_, err := db.conn.Exec("DELETE FROM users WHERE id = ?", userID)
	return err
}

// UserCount returns the number of users in the database.
func (db *DB) UserCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

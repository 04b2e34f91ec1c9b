package storage

import (
	"database/sql"
	"time"

	"expensetracker/internal/models"
)

// CreateExpense inserts a new expense owned by the given user. A zero
// createdAt is stamped with the current server time.
func (db *DB) CreateExpense(userID int64, amount float64, category, description string, createdAt time.Time) error {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := db.conn.Exec(
		"INSERT INTO expenses (amount, category, description, created_at, user_id) VALUES (?, ?, ?, ?, ?)",
		amount, category, description, createdAt, userID,
	)
	return err
}

// GetExpense retrieves a single expense by ID, scoped to its owner.
func (db *DB) GetExpense(id, userID int64) (*models.Expense, error) {
	row := db.conn.QueryRow(
		"SELECT id, amount, category, description, created_at, user_id FROM expenses WHERE id = ? AND user_id = ?",
		id, userID,
	)
	return scanExpense(row)
}

// ListExpenses retrieves all expenses owned by the given user, newest first.
func (db *DB) ListExpenses(userID int64) ([]models.Expense, error) {
	rows, err := db.conn.Query(
		"SELECT id, amount, category, description, created_at, user_id FROM expenses WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			e    models.Expense
			desc sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &desc, &e.CreatedAt, &e.UserID); err != nil {
			return nil, err
		}
		e.Description = desc.String
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// TotalExpenses returns the sum of all expense amounts for the given user.
func (db *DB) TotalExpenses(userID int64) (float64, error) {
	var total float64
	err := db.conn.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ?",
		userID,
	).Scan(&total)
	return total, err
}

// CategoryTotals returns per-category expense sums for the given user,
// ordered by category name ascending.
func (db *DB) CategoryTotals(userID int64) ([]models.CategoryTotal, error) {
	rows, err := db.conn.Query(
		"SELECT category, SUM(amount) FROM expenses WHERE user_id = ? GROUP BY category ORDER BY category ASC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}

	return totals, rows.Err()
}

func scanExpense(row *sql.Row) (*models.Expense, error) {
	var (
		e    models.Expense
		desc sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Amount, &e.Category, &desc, &e.CreatedAt, &e.UserID); err != nil {
		return nil, err
	}
	e.Description = desc.String
	return &e, nil
}

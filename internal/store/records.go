package store

import (
	"database/sql"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// Habit is a stored habit definition.
type Habit struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// UpsertHabit inserts a habit or updates its name if it already exists.
func (db *DB) UpsertHabit(id, name string) error {
	_, err := db.conn.Exec(
		`INSERT INTO habits (id, name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		id, name, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetHabit returns a habit by ID, or nil if it does not exist.
func (db *DB) GetHabit(id string) (*Habit, error) {
	row := db.conn.QueryRow("SELECT id, name, created_at FROM habits WHERE id = ?", id)

	var h Habit
	var createdAt string
	err := row.Scan(&h.ID, &h.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &h, nil
}

// ListHabits returns all habits ordered by name.
func (db *DB) ListHabits() ([]Habit, error) {
	rows, err := db.conn.Query("SELECT id, name, created_at FROM habits ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var habits []Habit
	for rows.Next() {
		var h Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// InsertCompletion stores one completion record. The dual completion
// representation is stored as-is: a nil IsCompleted stays NULL so the
// precedence rule still applies on the way out.
func (db *DB) InsertCompletion(rec habit.CompletionRecord) error {
	var isCompleted any
	if rec.IsCompleted != nil {
		isCompleted = *rec.IsCompleted
	}
	var progress any
	if rec.Progress != nil {
		progress = *rec.Progress
	}
	var completedAt any
	if rec.CompletedAt != "" {
		completedAt = rec.CompletedAt
	}
	var status any
	if rec.Status != "" {
		status = rec.Status
	}

	_, err := db.conn.Exec(
		`INSERT INTO completions (habit_id, date_key, completed_at, is_completed, status, progress)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.HabitID, rec.DateKey, completedAt, isCompleted, status, progress,
	)
	return err
}

// GetCompletions returns all completion records for a habit, ordered
// by date key.
func (db *DB) GetCompletions(habitID string) ([]habit.CompletionRecord, error) {
	return db.queryCompletions(
		`SELECT habit_id, date_key, completed_at, is_completed, status, progress
		 FROM completions WHERE habit_id = ? ORDER BY date_key`,
		habitID,
	)
}

// GetCompletionsBetween returns a habit's completion records whose date
// key falls within [startKey, endKey] inclusive.
func (db *DB) GetCompletionsBetween(habitID, startKey, endKey string) ([]habit.CompletionRecord, error) {
	return db.queryCompletions(
		`SELECT habit_id, date_key, completed_at, is_completed, status, progress
		 FROM completions WHERE habit_id = ? AND date_key >= ? AND date_key <= ?
		 ORDER BY date_key`,
		habitID, startKey, endKey,
	)
}

func (db *DB) queryCompletions(query string, args ...any) ([]habit.CompletionRecord, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []habit.CompletionRecord
	for rows.Next() {
		var rec habit.CompletionRecord
		var completedAt, status sql.NullString
		var isCompleted sql.NullBool
		var progress sql.NullFloat64
		if err := rows.Scan(&rec.HabitID, &rec.DateKey, &completedAt, &isCompleted, &status, &progress); err != nil {
			return nil, err
		}
		rec.CompletedAt = completedAt.String
		rec.Status = status.String
		if isCompleted.Valid {
			v := isCompleted.Bool
			rec.IsCompleted = &v
		}
		if progress.Valid {
			v := progress.Float64
			rec.Progress = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a recorded scramble in the database.
type Scramble struct {
	ScrambleID   string
	CreatedAt    time.Time
	Tokens       []string
	Seed         *uint64
	StateAfter   string
	SolvedAt     *time.Time
	SolutionText *string
}

// MoveCount returns the number of scramble tokens.
func (s *Scramble) MoveCount() int {
	return len(s.Tokens)
}

// Text returns the scramble as a space-separated sequence.
func (s *Scramble) Text() string {
	return strings.Join(s.Tokens, " ")
}

// Solved reports whether a solution has been recorded.
func (s *Scramble) Solved() bool {
	return s.SolvedAt != nil
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID. seed may be nil for
// scrambles that did not come from a seeded generator.
func (r *ScrambleRepository) Create(tokens []string, seed *uint64, stateAfter string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var seedVal *int64
	if seed != nil {
		v := int64(*seed) // stored bit-for-bit; SQLite integers are signed
		seedVal = &v
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, scramble_text, move_count, seed, state_after)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), strings.Join(tokens, " "), len(tokens), seedVal, stateAfter)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// MarkSolved records the solution applied to a scramble.
func (r *ScrambleRepository) MarkSolved(scrambleID string, solution []string) error {
	solvedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE scrambles SET solved_at = ?, solution_text = ?
		WHERE scramble_id = ?
	`, solvedAt.Format(timeLayout), strings.Join(solution, " "), scrambleID)

	if err != nil {
		return fmt.Errorf("failed to mark scramble solved: %w", err)
	}
	return requireRow(result, scrambleID)
}

const scrambleColumns = `scramble_id, created_at, scramble_text, seed, state_after, solved_at, solution_text`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAt, text string
	var seed sql.NullInt64
	var solvedAt, solution sql.NullString

	if err := row.Scan(&s.ScrambleID, &createdAt, &text, &seed, &s.StateAfter, &solvedAt, &solution); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t
	s.Tokens = strings.Fields(text)

	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}
	if solvedAt.Valid {
		t, err := time.Parse(timeLayout, solvedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solved_at: %w", err)
		}
		s.SolvedAt = &t
	}
	if solution.Valid {
		s.SolutionText = &solution.String
	}

	return &s, nil
}

// Get retrieves a scramble by ID. It returns ErrNotFound if there is none.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`SELECT `+scrambleColumns+` FROM scrambles WHERE scramble_id = ?`, scrambleID)

	s, err := scanScramble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scramble %s: %w", scrambleID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent scramble. It returns ErrNotFound on an
// empty database.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT ` + scrambleColumns + ` FROM scrambles
		ORDER BY created_at DESC, rowid DESC LIMIT 1
	`)

	s, err := scanScramble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}
	return s, nil
}

// List retrieves scrambles, newest first. limit <= 0 returns all of them.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	query := `SELECT ` + scrambleColumns + ` FROM scrambles ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// Delete deletes a scramble and its moves.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	result, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return requireRow(result, scrambleID)
}

func requireRow(result sql.Result, scrambleID string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scramble %s: %w", scrambleID, ErrNotFound)
	}
	return nil
}

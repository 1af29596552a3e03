package storage

import (
	"database/sql"
	"fmt"
)

// MoveSource says why a move was applied to a recorded scramble.
type MoveSource string

const (
	SourceScramble MoveSource = "scramble"
	SourceManual   MoveSource = "manual"
	SourceSolve    MoveSource = "solve"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID     int64
	ScrambleID string
	MoveIndex  int
	Notation   string
	Source     MoveSource
}

// MoveRepository provides the move log attached to each scramble.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append adds tokens to the end of a scramble's move log in a single
// transaction and returns the index of the first one.
func (r *MoveRepository) Append(scrambleID string, tokens []string, source MoveSource) (int, error) {
	var start int
	err := r.db.Transaction(func(tx *sql.Tx) error {
		if err := tx.QueryRow(`
			SELECT COALESCE(MAX(move_index) + 1, 0) FROM moves WHERE scramble_id = ?
		`, scrambleID).Scan(&start); err != nil {
			return fmt.Errorf("failed to get next move index: %w", err)
		}

		for i, tok := range tokens {
			_, err := tx.Exec(`
				INSERT INTO moves (scramble_id, move_index, notation, source)
				VALUES (?, ?, ?, ?)
			`, scrambleID, start+i, tok, string(source))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", start+i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return start, nil
}

// GetByScramble retrieves all moves for a scramble in order.
func (r *MoveRepository) GetByScramble(scrambleID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, scramble_id, move_index, notation, source
		FROM moves
		WHERE scramble_id = ?
		ORDER BY move_index
	`, scrambleID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var source string
		if err := rows.Scan(&m.MoveID, &m.ScrambleID, &m.MoveIndex, &m.Notation, &source); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Source = MoveSource(source)
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves logged for a scramble.
func (r *MoveRepository) Count(scrambleID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE scramble_id = ?", scrambleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

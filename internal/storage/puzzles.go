package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

// PuzzleRecord is a stored puzzle result.
type PuzzleRecord struct {
	ID int64
	core.PuzzleResult
	CreatedAt time.Time
}

// LevelProgress is the best result on one campaign level.
type LevelProgress struct {
	Level        int
	BestScore    int
	BestDuration time.Duration
	CompletedAt  time.Time
}

// SavePuzzleResult records a finished puzzle. A completed campaign level
// (Level > 0) also updates the campaign progress in the same transaction.
func (s *Store) SavePuzzleResult(r core.PuzzleResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO puzzle_results
		 (puzzle_id, game_id, category, preset, grid_size, level, words_found, words_total, hints_used, score, duration_ms, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PuzzleID,
		r.GameID,
		r.Category,
		r.Preset,
		r.GridSize,
		r.Level,
		r.WordsFound,
		r.WordsTotal,
		r.HintsUsed,
		r.Score,
		r.Duration.Milliseconds(),
		r.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if r.Completed && r.Level > 0 {
		if err := markLevel(tx, r.GameID, r.Level, r.Score, r.Duration); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit puzzle result: %w", err)
	}
	return id, nil
}

// RecentPuzzleResults returns the latest results, newest first.
// An empty gameID returns results of every game.
func (s *Store) RecentPuzzleResults(gameID string, limit int) ([]PuzzleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, game_id, category, preset, grid_size, level,
		        words_found, words_total, hints_used, score, duration_ms, completed, created_at
		 FROM puzzle_results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle results: %w", err)
	}
	defer rows.Close()

	var records []PuzzleRecord
	for rows.Next() {
		var rec PuzzleRecord
		var durationMs int64
		var createdAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.PuzzleID,
			&rec.GameID,
			&rec.Category,
			&rec.Preset,
			&rec.GridSize,
			&rec.Level,
			&rec.WordsFound,
			&rec.WordsTotal,
			&rec.HintsUsed,
			&rec.Score,
			&durationMs,
			&rec.Completed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// markLevel records a cleared campaign level, keeping the best score and
// the fastest time seen so far.
func markLevel(tx *sql.Tx, gameID string, level, score int, d time.Duration) error {
	_, err := tx.Exec(
		`INSERT INTO campaign_progress (game_id, level, best_score, best_duration_ms)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(game_id, level) DO UPDATE SET
		     best_score = MAX(best_score, excluded.best_score),
		     best_duration_ms = MIN(best_duration_ms, excluded.best_duration_ms),
		     completed_at = CURRENT_TIMESTAMP`,
		gameID, level, score, d.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark level %d complete: %w", level, err)
	}
	return nil
}

// CampaignProgress returns the cleared levels of a campaign in level order.
func (s *Store) CampaignProgress(gameID string) ([]LevelProgress, error) {
	rows, err := s.db.Query(
		`SELECT level, best_score, best_duration_ms, completed_at
		 FROM campaign_progress
		 WHERE game_id = ?
		 ORDER BY level`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query campaign progress: %w", err)
	}
	defer rows.Close()

	var progress []LevelProgress
	for rows.Next() {
		var lp LevelProgress
		var durationMs int64
		var completedAt any
		if err := rows.Scan(&lp.Level, &lp.BestScore, &durationMs, &completedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lp.BestDuration = time.Duration(durationMs) * time.Millisecond
		lp.CompletedAt = parseTime(completedAt)
		progress = append(progress, lp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return progress, nil
}

// UnlockedLevel returns the highest playable campaign level: one past the
// highest cleared level, starting at 1.
func (s *Store) UnlockedLevel(gameID string) (int, error) {
	var highest sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM campaign_progress WHERE game_id = ?",
		gameID,
	).Scan(&highest)
	if err != nil {
		return 1, fmt.Errorf("storage: cannot query unlocked level: %w", err)
	}
	if !highest.Valid {
		return 1, nil
	}
	return int(highest.Int64) + 1, nil
}

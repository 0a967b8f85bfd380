package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/pieces/internal/db"
)

func recordPlay(db *sql.DB, pieceID string, at time.Time) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO piece_history (piece_id, last_played_at, play_count)
			VALUES (?, ?, 1)
			ON CONFLICT(piece_id) DO UPDATE SET
				last_played_at = excluded.last_played_at,
				play_count = play_count + 1
		`, pieceID, at.Unix())
		return err
	})
}

func lastPlayed(db *sql.DB) (map[string]time.Time, error) {
	rows, err := db.Query(`SELECT piece_id, last_played_at FROM piece_history`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at int64
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		result[id] = time.Unix(at, 0)
	}
	return result, rows.Err()
}

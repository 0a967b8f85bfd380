package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/pieces/internal/db"
)

type NavigationState struct {
	Criterion       string // active filter, empty for all pieces
	SelectedPieceID string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT criterion, selected_piece_id
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var selectedPieceID sql.NullString

	err := row.Scan(&state.Criterion, &selectedPieceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedPieceID = dbutil.NullStringValue(selectedPieceID)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, criterion, selected_piece_id)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			criterion = excluded.criterion,
			selected_piece_id = excluded.selected_piece_id
	`, state.Criterion, dbutil.StringToNull(state.SelectedPieceID))

	return err
}

package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/stepdeck/internal/database"
)

// SessionRepo records presentation runs.
type SessionRepo struct{ db *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

// Start opens a session for deckID and returns its id.
func (r *SessionRepo) Start(ctx context.Context, deckID string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, deck_id, started_at) VALUES(?, ?, ?)
	`, id, deckID, database.Now())
	if err != nil {
		return "", err
	}
	return id, nil
}

// Finish closes a session with the number of distinct slides shown.
func (r *SessionRepo) Finish(ctx context.Context, id string, slidesSeen int) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE sessions SET ended_at = ?, slides_seen = ? WHERE id = ?
	`, database.Now(), slidesSeen, id)
	return err
}

// ListByDeck returns sessions for deckID, newest first.
func (r *SessionRepo) ListByDeck(ctx context.Context, deckID string) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, deck_id, started_at, ended_at, slides_seen
	FROM sessions WHERE deck_id = ? ORDER BY started_at DESC, rowid DESC
	`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		var ended sql.NullTime
		if err := rows.Scan(&s.ID, &s.DeckID, &s.StartedAt, &ended, &s.SlidesSeen); err != nil {
			return nil, err
		}
		if ended.Valid {
			t := ended.Time
			s.EndedAt = &t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

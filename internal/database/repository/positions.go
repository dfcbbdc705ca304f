package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNoPosition reports that a deck has never been presented.
var ErrNoPosition = errors.New("no saved position")

// DeckID derives a stable id from the absolute deck path.
func DeckID(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("deck:"+path)).String()
}

// PositionRepo stores where each deck was left.
type PositionRepo struct {
	db *sql.DB
}

func NewPositionRepo(db *sql.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

func (r *PositionRepo) Save(ctx context.Context, p Position) error {
	if p.DeckID == "" {
		p.DeckID = DeckID(p.Path)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO positions(deck_id, path, slide, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(deck_id) DO UPDATE SET
	 path=excluded.path,
	 slide=excluded.slide,
	 updated_at=CURRENT_TIMESTAMP;
	`, p.DeckID, p.Path, p.Slide)
	return err
}

func (r *PositionRepo) Get(ctx context.Context, deckID string) (Position, error) {
	var p Position
	err := r.db.QueryRowContext(ctx, `
	SELECT deck_id, path, slide, updated_at FROM positions WHERE deck_id = ?
	`, deckID).Scan(&p.DeckID, &p.Path, &p.Slide, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, ErrNoPosition
	}
	return p, err
}

func (r *PositionRepo) Delete(ctx context.Context, deckID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE deck_id = ?`, deckID)
	return err
}

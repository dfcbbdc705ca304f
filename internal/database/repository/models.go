package repository

import "time"

// Position is the last slide shown for a deck.
type Position struct {
	DeckID    string
	Path      string
	Slide     int
	UpdatedAt time.Time
}

// Session is one presentation run of a deck.
type Session struct {
	ID         string
	DeckID     string
	StartedAt  time.Time
	EndedAt    *time.Time
	SlidesSeen int
}

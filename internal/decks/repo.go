package decks

import "context"

// Repo stores finished decks for later metadata reads and download.
type Repo interface {
	Create(ctx context.Context, deck Deck) error
	GetByID(ctx context.Context, id string) (Deck, error)
}

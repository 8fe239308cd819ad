// Package cards stores the photo cards and their likes.
package cards

import (
	"context"

	"github.com/dmitrijs2005/around/internal/server/models"
)

// Repository lists cards newest first. Unknown ids yield
// common.ErrorNotFound. Liking twice or unliking a card that was not liked
// is not an error.
type Repository interface {
	List(ctx context.Context) ([]models.Card, error)
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	Get(ctx context.Context, id string) (*models.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*models.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*models.Card, error)
}

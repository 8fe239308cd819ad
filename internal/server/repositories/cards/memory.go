package cards

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/models"
)

// MemoryRepository keeps cards in process memory, newest first.
type MemoryRepository struct {
	mu    sync.RWMutex
	cards []models.Card
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: func() time.Time { return time.Now().UTC() }}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Card, len(r.cards))
	for i, c := range r.cards {
		out[i] = clone(c)
	}
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, card *models.Card) (*models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card.CreatedAt = r.now()
	card.Likes = []string{}
	r.cards = slices.Insert(r.cards, 0, clone(*card))
	return card, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	c := clone(r.cards[i])
	return &c, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.cards = slices.Delete(r.cards, i, i+1)
	return nil
}

func (r *MemoryRepository) AddLike(_ context.Context, cardID, userID string) (*models.Card, error) {
	return r.update(cardID, func(c *models.Card) {
		if !slices.Contains(c.Likes, userID) {
			c.Likes = append(c.Likes, userID)
		}
	})
}

func (r *MemoryRepository) RemoveLike(_ context.Context, cardID, userID string) (*models.Card, error) {
	return r.update(cardID, func(c *models.Card) {
		c.Likes = slices.DeleteFunc(c.Likes, func(id string) bool { return id == userID })
	})
}

func (r *MemoryRepository) update(id string, fn func(*models.Card)) (*models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	fn(&r.cards[i])
	c := clone(r.cards[i])
	return &c, nil
}

func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.cards, func(c models.Card) bool { return c.ID == id })
}

func clone(c models.Card) models.Card {
	c.Likes = slices.Clone(c.Likes)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return c
}

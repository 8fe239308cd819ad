package services

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/models"
	"github.com/dmitrijs2005/around/internal/server/repositories/cards"
)

type CardInput struct {
	Name string `validate:"required,min=2,max=30"`
	Link string `validate:"required,url"`
}

type CardService struct {
	repo  cards.Repository
	newID func() (string, error)
}

func NewCardService(repo cards.Repository) *CardService {
	return &CardService{repo: repo, newID: func() (string, error) { return gonanoid.New() }}
}

// List returns all cards, newest first, as seen by viewerID.
func (s *CardService) List(ctx context.Context, viewerID string) ([]models.CardView, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CardView, len(list))
	for i := range list {
		out[i] = list[i].View(viewerID)
	}
	return out, nil
}

func (s *CardService) Create(ctx context.Context, ownerID string, in CardInput) (models.CardView, error) {
	if err := check(in); err != nil {
		return models.CardView{}, err
	}

	id, err := s.newID()
	if err != nil {
		return models.CardView{}, fmt.Errorf("generate card id: %w", err)
	}

	c, err := s.repo.Create(ctx, &models.Card{ID: id, Name: in.Name, Link: in.Link, OwnerID: ownerID})
	if err != nil {
		return models.CardView{}, err
	}
	return c.View(ownerID), nil
}

// SetLike adds or removes viewerID's like. Both are idempotent.
func (s *CardService) SetLike(ctx context.Context, viewerID, cardID string, liked bool) (models.CardView, error) {
	var (
		c   *models.Card
		err error
	)
	if liked {
		c, err = s.repo.AddLike(ctx, cardID, viewerID)
	} else {
		c, err = s.repo.RemoveLike(ctx, cardID, viewerID)
	}
	if err != nil {
		return models.CardView{}, err
	}
	return c.View(viewerID), nil
}

// Delete removes a card owned by viewerID; other users' cards are
// common.ErrorForbidden.
func (s *CardService) Delete(ctx context.Context, viewerID, cardID string) error {
	c, err := s.repo.Get(ctx, cardID)
	if err != nil {
		return err
	}
	if c.OwnerID != viewerID {
		return common.ErrorForbidden
	}
	return s.repo.Delete(ctx, cardID)
}

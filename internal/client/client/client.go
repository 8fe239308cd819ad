package client

import (
	"context"

	"github.com/dmitrijs2005/around/internal/client/models"
)

// Auth is the contract of the authorization backend.
type Auth interface {
	Register(ctx context.Context, email, password string) (models.AuthUser, error)
	Authorize(ctx context.Context, email, password string) (string, error)
	CheckToken(ctx context.Context, token string) (models.AuthUser, error)
}

// Content is the contract of the content backend.
type Content interface {
	SetToken(token string)
	Token() string

	GetProfile(ctx context.Context) (models.Profile, error)
	GetCards(ctx context.Context) ([]models.Card, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error)
	UpdateAvatar(ctx context.Context, upd models.AvatarUpdate) (models.Profile, error)
	AddCard(ctx context.Context, card models.NewCard) (models.Card, error)
	SetCardLike(ctx context.Context, cardID string, liked bool) (models.LikeState, error)
	DeleteCard(ctx context.Context, cardID string) error
}

var (
	_ Auth    = (*AuthClient)(nil)
	_ Content = (*ContentClient)(nil)
)

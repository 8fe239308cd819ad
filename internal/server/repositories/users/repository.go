// Package users stores the accounts of the development backend.
package users

import (
	"context"

	"github.com/dmitrijs2005/around/internal/server/models"
)

// Repository returns common.ErrorNotFound for unknown users and
// common.ErrorAlreadyExists for a taken email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*models.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*models.User, error)
}

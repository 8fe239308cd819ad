package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/auth"
	"github.com/dmitrijs2005/around/internal/server/models"
	"github.com/dmitrijs2005/around/internal/server/repositories/users"
)

type SignUpInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type ProfileInput struct {
	Name  string `validate:"required,min=2,max=40"`
	About string `validate:"required,min=2,max=200"`
}

type AvatarInput struct {
	Avatar string `validate:"required,url"`
}

type UserService struct {
	repo   users.Repository
	tokens *auth.Tokens
	newID  func() string
}

func NewUserService(repo users.Repository, tokens *auth.Tokens) *UserService {
	return &UserService{repo: repo, tokens: tokens, newID: uuid.NewString}
}

// SignUp creates an account with the default profile.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, &models.User{
		ID:           s.newID(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         models.DefaultName,
		About:        models.DefaultAbout,
		Avatar:       models.DefaultAvatar,
	})
}

// SignIn returns a token for valid credentials. Unknown email and wrong
// password are both common.ErrorInvalidCredentials.
func (s *UserService) SignIn(ctx context.Context, in SignUpInput) (string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return "", err
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", err
	}

	ok, err := auth.CheckPassword(u.PasswordHash, in.Password)
	if err != nil {
		return "", fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	return s.tokens.Issue(u.ID)
}

// Authenticate resolves a bearer token to its user. A valid token of a
// user that no longer exists is common.ErrInvalidToken.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, err := s.tokens.UserID(token)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInvalidToken
	}
	return u, err
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, in ProfileInput) (*models.User, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateProfile(ctx, id, in.Name, in.About)
}

func (s *UserService) UpdateAvatar(ctx context.Context, id string, in AvatarInput) (*models.User, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateAvatar(ctx, id, in.Avatar)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package metadata

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/around/internal/dbx"
)

// Token is a persisted session credential.
type Token struct {
	Value string
	Email string
}

// TokenStore persists the session token across client restarts.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Load returns ok=false when no token is stored or the stored token is empty.
func (s *TokenStore) Load(ctx context.Context) (Token, bool, error) {
	repo := NewSQLiteRepository(s.db)

	v, ok, err := repo.Get(ctx, KeyToken)
	if err != nil || !ok || len(v) == 0 {
		return Token{}, false, err
	}

	email, _, err := repo.Get(ctx, KeyEmail)
	if err != nil {
		return Token{}, false, err
	}

	return Token{Value: string(v), Email: string(email)}, true, nil
}

// Save replaces the stored token and email atomically.
func (s *TokenStore) Save(ctx context.Context, t Token) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(t.Value)); err != nil {
			return err
		}
		if t.Email == "" {
			return repo.Delete(ctx, KeyEmail)
		}
		return repo.Set(ctx, KeyEmail, []byte(t.Email))
	})
}

// Remove deletes the stored token. Removing an absent token is not an error.
func (s *TokenStore) Remove(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Delete(ctx, KeyToken, KeyEmail)
	})
}

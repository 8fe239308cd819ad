package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/dbx"
	"github.com/dmitrijs2005/around/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// likes are aggregated in like order; ids never contain commas
const selectCards = `SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
       COALESCE(string_agg(l.user_id, ',' ORDER BY l.created_at), '')
  FROM cards c
  LEFT JOIN card_likes l ON l.card_id = c.id`

func (r *PostgresRepository) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.db.QueryContext(ctx, selectCards+`
 GROUP BY c.id
 ORDER BY c.created_at DESC, c.id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	query :=
		`INSERT INTO cards (id, name, link, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query, card.ID, card.Name, card.Link, card.OwnerID).Scan(&card.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	card.Likes = []string{}
	return card, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx, selectCards+`
 WHERE c.id = $1
 GROUP BY c.id`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	return c, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) AddLike(ctx context.Context, cardID, userID string) (*models.Card, error) {
	if _, err := r.Get(ctx, cardID); err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO card_likes (card_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		cardID, userID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.Get(ctx, cardID)
}

func (r *PostgresRepository) RemoveLike(ctx context.Context, cardID, userID string) (*models.Card, error) {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`,
		cardID, userID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.Get(ctx, cardID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner) (*models.Card, error) {
	c := &models.Card{}
	var likes string
	if err := s.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt, &likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Likes = []string{}
	if likes != "" {
		c.Likes = strings.Split(likes, ",")
	}
	return c, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/repositories/cards"
)

func TestCardService_CreateListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewCardService(cards.NewMemoryRepository())

	a, err := s.Create(ctx, "u1", CardInput{Name: "Yosemite", Link: "https://img.test/1.jpg"})
	require.NoError(t, err)
	assert.Len(t, a.ID, 21)
	assert.Equal(t, []string{}, a.Likes)
	assert.False(t, a.IsLiked)

	b, err := s.Create(ctx, "u2", CardInput{Name: "Zion", Link: "https://img.test/2.jpg"})
	require.NoError(t, err)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestCardService_Create_Invalid(t *testing.T) {
	s := NewCardService(cards.NewMemoryRepository())

	_, err := s.Create(context.Background(), "u1", CardInput{Name: "X", Link: "y"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestCardService_Create_IDFailure(t *testing.T) {
	s := NewCardService(cards.NewMemoryRepository())
	s.newID = func() (string, error) { return "", errors.New("entropy") }

	_, err := s.Create(context.Background(), "u1", CardInput{Name: "Zion", Link: "https://img.test/2.jpg"})
	require.ErrorContains(t, err, "entropy")
}

func TestCardService_Likes(t *testing.T) {
	ctx := context.Background()
	s := NewCardService(cards.NewMemoryRepository())
	c, err := s.Create(ctx, "u1", CardInput{Name: "Zion", Link: "https://img.test/2.jpg"})
	require.NoError(t, err)

	v, err := s.SetLike(ctx, "u2", c.ID, true)
	require.NoError(t, err)
	assert.True(t, v.IsLiked)
	assert.Equal(t, []string{"u2"}, v.Likes)

	v, err = s.SetLike(ctx, "u2", c.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, v.Likes)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, list[0].IsLiked, "like state is per viewer")

	v, err = s.SetLike(ctx, "u2", c.ID, false)
	require.NoError(t, err)
	assert.False(t, v.IsLiked)
	assert.Empty(t, v.Likes)

	_, err = s.SetLike(ctx, "u2", "missing", true)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCardService_Delete_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	s := NewCardService(cards.NewMemoryRepository())
	c, err := s.Create(ctx, "u1", CardInput{Name: "Zion", Link: "https://img.test/2.jpg"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Delete(ctx, "u2", c.ID), common.ErrorForbidden)
	require.NoError(t, s.Delete(ctx, "u1", c.ID))
	require.ErrorIs(t, s.Delete(ctx, "u1", c.ID), common.ErrorNotFound)
}

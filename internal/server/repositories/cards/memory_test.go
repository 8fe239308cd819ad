package cards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/models"
)

func ids(cards []models.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestMemoryRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	for _, id := range []string{"1", "2", "3"} {
		_, err := r.Create(ctx, &models.Card{ID: id, OwnerID: "u"})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, ids(list))

	require.NoError(t, r.Delete(ctx, "2"))
	require.ErrorIs(t, r.Delete(ctx, "2"), common.ErrorNotFound)

	list, err = r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(list))
}

func TestMemoryRepository_Likes(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Create(ctx, &models.Card{ID: "c", OwnerID: "u"})
	require.NoError(t, err)

	c, err := r.AddLike(ctx, "c", "a")
	require.NoError(t, err)
	c, err = r.AddLike(ctx, "c", "a")
	require.NoError(t, err)
	c, err = r.AddLike(ctx, "c", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Likes)

	c.Likes[0] = "mutated"
	got, err := r.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Likes)

	c, err = r.RemoveLike(ctx, "c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, c.Likes)
	c, err = r.RemoveLike(ctx, "c", "zzz")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, c.Likes)

	_, err = r.AddLike(ctx, "missing", "a")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

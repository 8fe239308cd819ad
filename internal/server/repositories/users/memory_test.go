package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/models"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u, err := r.Create(ctx, &models.User{ID: "u-1", Email: "a@b.c", Name: "N"})
	require.NoError(t, err)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = r.Create(ctx, &models.User{ID: "u-2", Email: "a@b.c"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	got.Name = "mutated"
	again, err := r.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "N", again.Name, "returned users are copies")

	upd, err := r.UpdateProfile(ctx, "u-1", "New", "Bio")
	require.NoError(t, err)
	assert.Equal(t, "New", upd.Name)

	upd, err = r.UpdateAvatar(ctx, "u-1", "https://a/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://a/1.jpg", upd.Avatar)
	assert.Equal(t, "Bio", upd.About)

	_, err = r.GetByEmail(ctx, "x@y.z")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.UpdateAvatar(ctx, "ghost", "x")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

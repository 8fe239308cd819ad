package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/common"
)

func TestTokens_IssueAndParse(t *testing.T) {
	t.Parallel()

	tk := NewTokens("super-secret", time.Hour)
	tok, err := tk.Issue("user-123")
	require.NoError(t, err)

	got, err := tk.UserID(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestTokens_Expired(t *testing.T) {
	t.Parallel()

	tk := NewTokens("secret", time.Minute)
	issued := time.Now()
	tk.now = func() time.Time { return issued }
	tok, err := tk.Issue("u1")
	require.NoError(t, err)

	tk.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tk.UserID(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	assert.Contains(t, err.Error(), "expired")
}

func TestTokens_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokens("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewTokens("wrong-secret", time.Hour).UserID(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokens_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokens("k", time.Hour).UserID("not.a.jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("hunter2"), hash)

	ok, err := CheckPassword(hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "hunter3")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword([]byte("garbage"), "x")
	require.Error(t, err)
}

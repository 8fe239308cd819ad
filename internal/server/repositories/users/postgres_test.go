package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var userRow = []string{"id", "email", "password_hash", "name", "about", "avatar", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash,\s*name,\s*about,\s*avatar\).*RETURNING\s+created_at$`).
		WithArgs("u-1", "a@b.c", []byte("hash"), "Jacques", "Explorer", "https://a/1.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	u := &models.User{ID: "u-1", Email: "a@b.c", PasswordHash: []byte("hash"), Name: "Jacques", About: "Explorer", Avatar: "https://a/1.jpg"}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "a@b.c"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows(userRow).AddRow("u-1", "a@b.c", []byte("h"), "N", "A", "V", now))

	got, err := repo.GetByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u-1", Email: "a@b.c", PasswordHash: []byte("h"), Name: "N", About: "A", Avatar: "V", CreatedAt: now}, got)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$2,\s*about\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`).
		WithArgs("u-1", "New", "Bio").
		WillReturnRows(sqlmock.NewRows(userRow).AddRow("u-1", "a@b.c", []byte("h"), "New", "Bio", "V", now))

	got, err := repo.UpdateProfile(context.Background(), "u-1", "New", "Bio")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "Bio", got.About)
}

func TestUpdateAvatar_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET\s+avatar\s*=\s*\$2`).
		WithArgs("ghost", "https://a/2.jpg").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateAvatar(context.Background(), "ghost", "https://a/2.jpg")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

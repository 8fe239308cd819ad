package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

type fakeContentBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeContentBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.EscapedPath(), Auth: r.Header.Get("Authorization"), Body: string(b)})
	f.mu.Unlock()
	f.respond(w, r)
}

func (f *fakeContentBackend) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newContentFixture(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*ContentClient, *fakeContentBackend) {
	t.Helper()
	backend := &fakeContentBackend{respond: respond}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewContentClient(srv.URL+"//", srv.Client()), backend
}

func TestContentClient_BearerHeaderFollowsToken(t *testing.T) {
	c, backend := newContentFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	_, err := c.GetCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, backend.last().Auth, "no token, no Authorization header")

	c.SetToken("abc123")
	assert.Equal(t, "abc123", c.Token())
	_, err = c.GetCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", backend.last().Auth)
	assert.Equal(t, "/cards", backend.last().Path)

	c.SetToken("")
	_, err = c.GetCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, backend.last().Auth)
}

func TestContentClient_GetCards_PreservesOrder(t *testing.T) {
	c, _ := newContentFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"3","name":"c"},{"_id":"1","name":"a"},{"_id":"2","name":"b"}]`))
	})

	cards, err := c.GetCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{cards[0].ID, cards[1].ID, cards[2].ID})
}

func TestContentClient_Mutations(t *testing.T) {
	c, backend := newContentFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users/me" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"_id":"u1","name":"Jacques","about":"Explorer","avatar":"https://img/a.jpg"}`))
		case r.URL.Path == "/users/me" && r.Method == http.MethodPatch:
			_, _ = w.Write([]byte(`{"_id":"u1","name":"Jacques C.","about":"Sailor","avatar":"https://img/a.jpg"}`))
		case r.URL.Path == "/users/me/avatar":
			_, _ = w.Write([]byte(`{"_id":"u1","name":"Jacques","about":"Explorer","avatar":"https://img/b.jpg"}`))
		case r.URL.Path == "/cards" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"_id":"c9","name":"Lake","link":"https://img/l.jpg","owner":"u1"}`))
		case r.URL.Path == "/cards/c9/likes":
			_, _ = w.Write([]byte(`{"_id":"c9","likes":["u1"],"isLiked":true}`))
		case r.URL.Path == "/cards/c9" && r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"deleted"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c.SetToken("tok")
	ctx := context.Background()

	p, err := c.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jacques", p.Name)

	p, err = c.UpdateProfile(ctx, models.ProfileUpdate{Name: "Jacques C.", About: "Sailor"})
	require.NoError(t, err)
	assert.Equal(t, "Sailor", p.About)
	assert.Equal(t, http.MethodPatch, backend.last().Method)
	assert.JSONEq(t, `{"name":"Jacques C.","about":"Sailor"}`, backend.last().Body)

	p, err = c.UpdateAvatar(ctx, models.AvatarUpdate{AvatarURL: "https://img/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "https://img/b.jpg", p.AvatarURL)
	assert.JSONEq(t, `{"avatar":"https://img/b.jpg"}`, backend.last().Body)

	card, err := c.AddCard(ctx, models.NewCard{Title: "Lake", ImageURL: "https://img/l.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "c9", card.ID)
	assert.Nil(t, card.LikedBy, "likes omitted by the server stay absent until resolved")
	assert.JSONEq(t, `{"name":"Lake","link":"https://img/l.jpg"}`, backend.last().Body)

	ls, err := c.SetCardLike(ctx, "c9", true)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, backend.last().Method)
	require.NotNil(t, ls.IsLiked)
	assert.True(t, *ls.IsLiked)

	_, err = c.SetCardLike(ctx, "c9", false)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, backend.last().Method)
	assert.Equal(t, "/cards/c9/likes", backend.last().Path)

	require.NoError(t, c.DeleteCard(ctx, "c9"))
	assert.Equal(t, recordedRequest{Method: http.MethodDelete, Path: "/cards/c9", Auth: "Bearer tok"}, backend.last())
}

func TestContentClient_EscapesCardID(t *testing.T) {
	c, backend := newContentFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteCard(context.Background(), "a/b"))
	assert.Equal(t, "/cards/a%2Fb", backend.last().Path)
}

func TestContentClient_ErrorPropagatesUnmodified(t *testing.T) {
	c, _ := newContentFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not the owner"})
	})

	err := c.DeleteCard(context.Background(), "c1")
	require.Error(t, err)

	var re *ResponseError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusForbidden, re.StatusCode)
	assert.Equal(t, "not the owner", re.Message)
	assert.Contains(t, re.URL, "/cards/c1")
}

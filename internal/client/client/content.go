package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/client/models"
)

// ContentClient talks to the content backend (profile, cards, likes). The
// bearer token is set after construction, once login or startup validation
// has produced one, and is attached to every request while set.
type ContentClient struct {
	r requester

	mu     sync.RWMutex
	token  string
	header http.Header
}

func NewContentClient(baseURL string, hc *http.Client) *ContentClient {
	h := http.Header{}
	h.Set("Accept", "application/json")
	return &ContentClient{r: newRequester(baseURL, hc), header: h}
}

// SetToken replaces the bearer token; an empty token removes the header.
func (c *ContentClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *ContentClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *ContentClient) baseHeaders() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h := c.header.Clone()
	if c.token != "" {
		h.Set(common.AuthorizationHeader, common.BearerValue(c.token))
	}
	return h
}

func (c *ContentClient) request(ctx context.Context, method, path string, extra http.Header, body any, out any) error {
	return c.r.do(ctx, method, path, mergeHeaders(c.baseHeaders(), extra), body, strictJSON, out)
}

func (c *ContentClient) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := c.request(ctx, http.MethodGet, "/users/me", nil, nil, &p)
	return p, err
}

// GetCards returns the cards in server order.
func (c *ContentClient) GetCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := c.request(ctx, http.MethodGet, "/cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *ContentClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error) {
	var p models.Profile
	err := c.request(ctx, http.MethodPatch, "/users/me", nil, upd, &p)
	return p, err
}

func (c *ContentClient) UpdateAvatar(ctx context.Context, upd models.AvatarUpdate) (models.Profile, error) {
	var p models.Profile
	err := c.request(ctx, http.MethodPatch, "/users/me/avatar", nil, upd, &p)
	return p, err
}

func (c *ContentClient) AddCard(ctx context.Context, card models.NewCard) (models.Card, error) {
	var created models.Card
	err := c.request(ctx, http.MethodPost, "/cards", nil, card, &created)
	return created, err
}

// SetCardLike adds (PUT) or removes (DELETE) the current user's like.
func (c *ContentClient) SetCardLike(ctx context.Context, cardID string, liked bool) (models.LikeState, error) {
	method := http.MethodDelete
	if liked {
		method = http.MethodPut
	}

	var ls models.LikeState
	err := c.request(ctx, method, "/cards/"+url.PathEscape(cardID)+"/likes", nil, nil, &ls)
	return ls, err
}

func (c *ContentClient) DeleteCard(ctx context.Context, cardID string) error {
	return c.request(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID), nil, nil, nil)
}

package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/around/internal/common"
	"github.com/dmitrijs2005/around/internal/client/models"
)

// AuthClient talks to the registration/authorization backend. Its error
// bodies are not always JSON, so responses are decoded leniently.
type AuthClient struct {
	r requester
}

func NewAuthClient(baseURL string, hc *http.Client) *AuthClient {
	return &AuthClient{r: newRequester(baseURL, hc)}
}

type authEnvelope struct {
	Data models.AuthUser `json:"data"`
}

// Register creates an account: POST /signup.
func (c *AuthClient) Register(ctx context.Context, email, password string) (models.AuthUser, error) {
	var resp authEnvelope
	body := models.Credentials{Email: email, Password: password}
	if err := c.r.do(ctx, http.MethodPost, "/signup", nil, body, lenientJSON, &resp); err != nil {
		return models.AuthUser{}, err
	}
	return resp.Data, nil
}

// Authorize exchanges credentials for a token: POST /signin. A 401 response
// satisfies IsUnauthorized.
func (c *AuthClient) Authorize(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := models.Credentials{Email: email, Password: password}
	if err := c.r.do(ctx, http.MethodPost, "/signin", nil, body, lenientJSON, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}

// CheckToken validates token and returns its owner: GET /users/me.
func (c *AuthClient) CheckToken(ctx context.Context, token string) (models.AuthUser, error) {
	header := http.Header{}
	header.Set(common.AuthorizationHeader, common.BearerValue(token))

	var resp authEnvelope
	if err := c.r.do(ctx, http.MethodGet, "/users/me", header, nil, lenientJSON, &resp); err != nil {
		return models.AuthUser{}, err
	}
	return resp.Data, nil
}

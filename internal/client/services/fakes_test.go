package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/repositories/metadata"
)

type fakeAuth struct {
	mu sync.Mutex

	RegisterRet  models.AuthUser
	RegisterErr  error
	TokenRet     string
	AuthorizeErr error
	CheckRet     models.AuthUser
	CheckErr     error

	Calls          int
	LastCheckToken string
	LastEmail      string
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (models.AuthUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastEmail = email
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuth) Authorize(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastEmail = email
	return f.TokenRet, f.AuthorizeErr
}

func (f *fakeAuth) CheckToken(ctx context.Context, token string) (models.AuthUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastCheckToken = token
	return f.CheckRet, f.CheckErr
}

type fakeContent struct {
	mu    sync.Mutex
	token string

	Profile    models.Profile
	ProfileErr error
	Cards      []models.Card
	CardsErr   error

	UpdateRet  models.Profile
	UpdateErr  error
	AvatarRet  models.Profile
	AvatarErr  error
	LastAvatar string
	AddRet     models.Card
	AddErr     error
	AddCalls   int
	LikeRet    models.LikeState
	LikeErr    error
	LikeHook   func(cardID string, liked bool)
	LastLiked  *bool
	DeleteErr  error
	DeletedIDs []string
}

func (f *fakeContent) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeContent) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeContent) GetProfile(ctx context.Context) (models.Profile, error) {
	return f.Profile, f.ProfileErr
}

func (f *fakeContent) GetCards(ctx context.Context) ([]models.Card, error) {
	return f.Cards, f.CardsErr
}

func (f *fakeContent) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error) {
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeContent) UpdateAvatar(ctx context.Context, upd models.AvatarUpdate) (models.Profile, error) {
	f.LastAvatar = upd.AvatarURL
	return f.AvatarRet, f.AvatarErr
}

func (f *fakeContent) AddCard(ctx context.Context, card models.NewCard) (models.Card, error) {
	f.AddCalls++
	return f.AddRet, f.AddErr
}

func (f *fakeContent) SetCardLike(ctx context.Context, cardID string, liked bool) (models.LikeState, error) {
	f.LastLiked = &liked
	if f.LikeHook != nil {
		f.LikeHook(cardID, liked)
	}
	return f.LikeRet, f.LikeErr
}

func (f *fakeContent) DeleteCard(ctx context.Context, cardID string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.DeletedIDs = append(f.DeletedIDs, cardID)
	return nil
}

type memTokens struct {
	tok     metadata.Token
	ok      bool
	LoadErr error
	SaveErr error
	Removed int
}

func (m *memTokens) Load(ctx context.Context) (metadata.Token, bool, error) {
	return m.tok, m.ok, m.LoadErr
}

func (m *memTokens) Save(ctx context.Context, t metadata.Token) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tok, m.ok = t, true
	return nil
}

func (m *memTokens) Remove(ctx context.Context) error {
	m.Removed++
	m.tok, m.ok = metadata.Token{}, false
	return nil
}

type recorder struct {
	Notes []models.Notification
	Views []models.View
}

func (r *recorder) Notify(n models.Notification) { r.Notes = append(r.Notes, n) }
func (r *recorder) Navigate(v models.View)       { r.Views = append(r.Views, v) }

type fakeUploader struct {
	URL  string
	Err  error
	Path string
}

func (f *fakeUploader) Upload(ctx context.Context, path string) (string, error) {
	f.Path = path
	return f.URL, f.Err
}

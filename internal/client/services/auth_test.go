package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/around/internal/client/client"
	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/around/internal/client/session"
	"github.com/dmitrijs2005/around/internal/client/state"
	"github.com/dmitrijs2005/around/internal/client/validation"
	"github.com/dmitrijs2005/around/internal/logging"
)

type authFixture struct {
	svc     *AuthService
	auth    *fakeAuth
	content *fakeContent
	tokens  *memTokens
	state   *state.Store
	ui      *recorder
}

func newAuthFixture(lang string) *authFixture {
	f := &authFixture{
		auth:    &fakeAuth{},
		content: &fakeContent{},
		tokens:  &memTokens{},
		state:   state.New(),
		ui:      &recorder{},
	}
	loader := NewContentService(f.content, f.state, logging.NewNop(), WithMinLatency(0))
	f.svc = NewAuthService(AuthDeps{
		Auth:       f.auth,
		Content:    f.content,
		Tokens:     f.tokens,
		Session:    session.NewHolder(),
		State:      f.state,
		Loader:     loader,
		Translator: i18n.New(lang),
		Notifier:   f.ui,
		Navigator:  f.ui,
		Logger:     logging.NewNop(),
	})
	return f
}

func TestStart_NoStoredToken(t *testing.T) {
	f := newAuthFixture("en")

	require.NoError(t, f.svc.Start(context.Background()))

	assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
	assert.Zero(t, f.auth.Calls, "no request without a stored token")
	assert.Empty(t, f.ui.Views)
}

func TestStart_ValidToken(t *testing.T) {
	f := newAuthFixture("en")
	f.tokens.tok, f.tokens.ok = metadata.Token{Value: "abc123"}, true
	f.auth.CheckRet = models.AuthUser{ID: "me", Email: "a@b.c"}
	f.content.Profile = models.Profile{ID: "me", Name: "Jacques"}
	f.content.Cards = []models.Card{{ID: "1"}}

	require.NoError(t, f.svc.Start(context.Background()))

	s := f.svc.Session()
	assert.Equal(t, session.LoggedIn, s.Status())
	assert.Equal(t, "a@b.c", s.Email())
	assert.Equal(t, "abc123", f.auth.LastCheckToken)
	assert.Equal(t, "abc123", f.content.Token())
	assert.Equal(t, []models.View{models.ViewMain}, f.ui.Views)

	_, ok := f.state.Profile()
	assert.True(t, ok, "initial data loaded")
	assert.Len(t, f.state.Cards(), 1)
}

func TestStart_RejectedToken(t *testing.T) {
	f := newAuthFixture("en")
	f.tokens.tok, f.tokens.ok = metadata.Token{Value: "expired"}, true
	f.auth.CheckErr = &client.ResponseError{StatusCode: 401}

	require.NoError(t, f.svc.Start(context.Background()))

	assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
	assert.False(t, f.tokens.ok, "stored token removed")
	assert.Equal(t, 1, f.tokens.Removed)
	assert.Empty(t, f.content.Token())
	assert.Empty(t, f.ui.Views)
}

func TestStart_AnyFailureLogsOut(t *testing.T) {
	f := newAuthFixture("en")
	f.tokens.tok, f.tokens.ok = metadata.Token{Value: "t"}, true
	f.auth.CheckErr = client.ErrUnavailable

	require.NoError(t, f.svc.Start(context.Background()))
	assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
	assert.False(t, f.tokens.ok)
}

func TestStart_StoreError(t *testing.T) {
	f := newAuthFixture("en")
	f.tokens.LoadErr = errors.New("disk")

	require.ErrorContains(t, f.svc.Start(context.Background()), "disk")
	assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture("en")
	f.auth.TokenRet = "abc123"

	err := f.svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)

	s := f.svc.Session()
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "a@b.c", s.Email())
	assert.Equal(t, "abc123", s.Token())
	assert.Equal(t, metadata.Token{Value: "abc123", Email: "a@b.c"}, f.tokens.tok)
	assert.Equal(t, "abc123", f.content.Token())
	assert.Equal(t, []models.View{models.ViewMain}, f.ui.Views)
	assert.Empty(t, f.ui.Notes)
}

func TestLogin_BadCredentials(t *testing.T) {
	for _, tt := range []struct {
		lang, want string
	}{
		{lang: "en", want: "Incorrect email or password."},
		{lang: "es", want: "Correo o contraseña incorrectos."},
	} {
		t.Run(tt.lang, func(t *testing.T) {
			f := newAuthFixture(tt.lang)
			f.auth.AuthorizeErr = &client.ResponseError{StatusCode: 401}

			err := f.svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "wrong"})
			require.Error(t, err)

			assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
			assert.False(t, f.tokens.ok)
			assert.Empty(t, f.ui.Views, "no redirect")
			assert.Equal(t, []models.Notification{{Success: false, Message: tt.want}}, f.ui.Notes)
		})
	}
}

func TestLogin_OtherFailure(t *testing.T) {
	f := newAuthFixture("en")
	f.auth.AuthorizeErr = &client.ResponseError{StatusCode: 500}

	require.Error(t, f.svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}))
	require.Len(t, f.ui.Notes, 1)
	assert.Equal(t, i18n.New("en").T(i18n.SignInFailed), f.ui.Notes[0].Message)
}

func TestLogin_InvalidEmail(t *testing.T) {
	f := newAuthFixture("en")

	err := f.svc.Login(context.Background(), models.Credentials{Email: "nope", Password: "x"})
	require.True(t, validation.IsValidation(err))
	assert.Zero(t, f.auth.Calls)
}

func TestLogin_PersistFailureStillLogsIn(t *testing.T) {
	f := newAuthFixture("en")
	f.auth.TokenRet = "abc123"
	f.tokens.SaveErr = errors.New("read-only")

	require.NoError(t, f.svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}))
	assert.True(t, f.svc.Session().LoggedIn())
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture("en")
	f.auth.RegisterRet = models.AuthUser{ID: "u1", Email: "a@b.c"}

	err := f.svc.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)

	assert.Equal(t, []models.Notification{{Success: true, Message: "Success! You are now registered."}}, f.ui.Notes)
	assert.Equal(t, []models.View{models.ViewLogin}, f.ui.Views)
	assert.Equal(t, session.Unknown, f.svc.Session().Status(), "session untouched")
}

func TestRegister_Failure(t *testing.T) {
	f := newAuthFixture("es")
	f.auth.RegisterErr = &client.ResponseError{StatusCode: 409}

	require.Error(t, f.svc.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "pw", Confirm: "pw"}))

	assert.Equal(t, []models.Notification{{Success: false, Message: "Uy, algo salió mal. Por favor, inténtalo de nuevo."}}, f.ui.Notes)
	assert.Empty(t, f.ui.Views)
}

func TestRegister_MismatchMakesNoRequest(t *testing.T) {
	f := newAuthFixture("en")

	err := f.svc.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "pw", Confirm: "other"})

	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Field("confirmPassword"))
	assert.Zero(t, f.auth.Calls)
	assert.Empty(t, f.ui.Notes)
}

func TestSignOut(t *testing.T) {
	f := newAuthFixture("en")
	f.auth.TokenRet = "abc123"
	f.content.Profile = models.Profile{ID: "me"}
	f.content.Cards = []models.Card{{ID: "1"}}
	require.NoError(t, f.svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}))
	require.NotEmpty(t, f.state.Cards())

	require.NoError(t, f.svc.SignOut(context.Background()))

	assert.Equal(t, session.LoggedOut, f.svc.Session().Status())
	assert.False(t, f.tokens.ok)
	assert.Empty(t, f.content.Token())
	assert.Empty(t, f.state.Cards())
	_, ok := f.state.Profile()
	assert.False(t, ok)
	assert.Equal(t, []models.View{models.ViewMain, models.ViewLogin}, f.ui.Views)
}

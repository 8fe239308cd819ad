package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/around/internal/client/client"
	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/around/internal/client/session"
	"github.com/dmitrijs2005/around/internal/client/state"
	"github.com/dmitrijs2005/around/internal/client/validation"
	"github.com/dmitrijs2005/around/internal/logging"
)

// AuthDeps wires an AuthService.
type AuthDeps struct {
	Auth       client.Auth
	Content    client.Content
	Tokens     TokenStore
	Session    *session.Holder
	State      *state.Store
	Loader     InitialLoader
	Translator *i18n.Translator
	Notifier   Notifier
	Navigator  Navigator
	Logger     logging.Logger
}

// AuthService drives the session state machine.
//
//   - Start resolves Unknown into LoggedIn or LoggedOut from the stored token.
//   - Login and Register talk to the auth backend and notify the user.
//   - SignOut forgets the token and every piece of user state.
type AuthService struct {
	auth      client.Auth
	content   client.Content
	tokens    TokenStore
	session   *session.Holder
	state     *state.Store
	loader    InitialLoader
	tr        *i18n.Translator
	notifier  Notifier
	nav       Navigator
	log       logging.Logger
	validator *validation.Validator
}

func NewAuthService(d AuthDeps) *AuthService {
	tr := d.Translator
	if tr == nil {
		tr = i18n.New("")
	}
	return &AuthService{
		auth:      d.Auth,
		content:   d.Content,
		tokens:    d.Tokens,
		session:   d.Session,
		state:     d.State,
		loader:    d.Loader,
		tr:        tr,
		notifier:  d.Notifier,
		nav:       d.Navigator,
		log:       d.Logger,
		validator: validation.New(),
	}
}

// Session returns the current session.
func (a *AuthService) Session() session.Session {
	return a.session.Current()
}

// Start checks a stored token once at process start. Without a stored token
// the session becomes LoggedOut and nothing is sent to the backend. A token
// the backend rejects is removed.
func (a *AuthService) Start(ctx context.Context) error {
	tok, ok, err := a.tokens.Load(ctx)
	if err != nil {
		a.session.LogOut()
		return fmt.Errorf("load stored token: %w", err)
	}
	if !ok {
		a.session.LogOut()
		a.log.Debug(ctx, "no stored session")
		return nil
	}

	a.content.SetToken(tok.Value)

	user, err := a.auth.CheckToken(ctx, tok.Value)
	if err != nil {
		a.log.Warn(ctx, "stored token rejected", "error", err)
		a.forget(ctx)
		return nil
	}

	email := user.Email
	if email == "" {
		email = tok.Email
	}
	if _, err := a.session.LogIn(tok.Value, email); err != nil {
		return err
	}
	a.log.Info(ctx, "session restored", "email", email)
	a.enter(ctx)
	return nil
}

// Login exchanges credentials for a token. On 401 the user is told the
// credentials are wrong; any other failure gets the generic sign-in message.
func (a *AuthService) Login(ctx context.Context, creds models.Credentials) error {
	if err := a.validator.Validate(creds); err != nil {
		return err
	}

	token, err := a.auth.Authorize(ctx, creds.Email, creds.Password)
	if err != nil {
		a.log.Error(ctx, "login failed", "email", creds.Email, "error", err)
		msg := i18n.SignInFailed
		if client.IsUnauthorized(err) {
			msg = i18n.BadCredentials
		}
		a.notify(false, msg)
		if !a.session.Current().LoggedIn() {
			a.session.LogOut()
		}
		return err
	}

	if err := a.tokens.Save(ctx, metadata.Token{Value: token, Email: creds.Email}); err != nil {
		a.log.Warn(ctx, "token not persisted", "error", err)
	}
	a.content.SetToken(token)
	if _, err := a.session.LogIn(token, creds.Email); err != nil {
		return err
	}

	a.log.Info(ctx, "logged in", "email", creds.Email)
	a.enter(ctx)
	return nil
}

// Register creates an account. Validation runs before anything is sent,
// including the password confirmation check. The session is not touched.
func (a *AuthService) Register(ctx context.Context, form models.Registration) error {
	if err := a.validator.Validate(form); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, form.Email, form.Password)
	if err != nil {
		a.log.Error(ctx, "registration failed", "email", form.Email, "error", err)
		a.notify(false, i18n.GenericFailure)
		return err
	}

	a.log.Info(ctx, "registered", "email", user.Email, "user_id", user.ID)
	a.notify(true, i18n.Registered)
	a.navigate(models.ViewLogin)
	return nil
}

// SignOut always ends in LoggedOut with empty state, even if the stored
// token could not be removed; that error is returned.
func (a *AuthService) SignOut(ctx context.Context) error {
	err := a.forget(ctx)
	a.navigate(models.ViewLogin)
	return err
}

func (a *AuthService) forget(ctx context.Context) error {
	var errs []error
	if err := a.tokens.Remove(ctx); err != nil {
		a.log.Error(ctx, "stored token not removed", "error", err)
		errs = append(errs, err)
	}
	a.content.SetToken("")
	a.session.LogOut()
	a.state.Clear()
	return errors.Join(errs...)
}

func (a *AuthService) enter(ctx context.Context) {
	a.navigate(models.ViewMain)
	if a.loader == nil {
		return
	}
	if err := a.loader.LoadInitialData(ctx); err != nil {
		a.log.Warn(ctx, "initial data incomplete", "error", err)
	}
}

func (a *AuthService) notify(success bool, key string) {
	if a.notifier != nil {
		a.notifier.Notify(models.Notification{Success: success, Message: a.tr.T(key)})
	}
}

func (a *AuthService) navigate(v models.View) {
	if a.nav != nil {
		a.nav.Navigate(v)
	}
}

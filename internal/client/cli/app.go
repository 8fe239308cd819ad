package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/around/internal/client/avatar"
	"github.com/dmitrijs2005/around/internal/client/client"
	"github.com/dmitrijs2005/around/internal/client/config"
	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/around/internal/client/services"
	"github.com/dmitrijs2005/around/internal/client/session"
	"github.com/dmitrijs2005/around/internal/client/state"
	"github.com/dmitrijs2005/around/internal/client/validation"
	"github.com/dmitrijs2005/around/internal/logging"
)

type authService interface {
	Start(ctx context.Context) error
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, form models.Registration) error
	SignOut(ctx context.Context) error
	Session() session.Session
}

type contentService interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error)
	UpdateAvatar(ctx context.Context, upd models.AvatarUpdate) (models.Profile, error)
	UpdateAvatarFromFile(ctx context.Context, path string) (models.Profile, error)
	AddCard(ctx context.Context, nc models.NewCard) (models.Card, error)
	ToggleLike(ctx context.Context, cardID string) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
}

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

type App struct {
	auth      authService
	content   contentService
	store     *state.Store
	tr        *i18n.Translator
	validator *validation.Validator
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	db        *sql.DB

	mu   sync.Mutex
	view models.View
}

// NewApp opens the session database and wires clients, services and the
// state store from cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init session database: %w", err)
	}

	hc := &http.Client{Timeout: cfg.RequestTimeout}
	authClient := client.NewAuthClient(cfg.AuthURL, hc)
	contentClient := client.NewContentClient(cfg.APIURL, hc)

	opts := []services.ContentOption{services.WithMinLatency(cfg.MinLatency)}
	if cfg.Avatar.Enabled() {
		up, err := avatar.New(ctx, cfg.Avatar)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		opts = append(opts, services.WithUploader(up))
	}

	a := &App{
		store:     state.New(),
		tr:        i18n.New(cfg.Language),
		validator: validation.New(),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		db:        db,
	}

	content := services.NewContentService(contentClient, a.store, log.With("component", "content"), opts...)
	a.content = content
	a.auth = services.NewAuthService(services.AuthDeps{
		Auth:       authClient,
		Content:    contentClient,
		Tokens:     metadata.NewTokenStore(db),
		Session:    session.NewHolder(),
		State:      a.store,
		Loader:     content,
		Translator: a.tr,
		Notifier:   a,
		Navigator:  a,
		Logger:     log.With("component", "auth"),
	})
	return a, nil
}

// Run resolves the stored session and then serves commands until the user
// leaves or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.printf("Around the US (type 'help' for commands)\n")

	if err := a.auth.Start(ctx); err != nil {
		a.log.Warn(ctx, "session not restored", "error", err)
	}
	if !a.isLoggedIn() {
		a.Navigate(models.ViewLogin)
	} else {
		a.printf("%s\n", a.tr.T(i18n.Welcome, a.auth.Session().Email()))
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session().LoggedIn()
}

func (a *App) currentView() models.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// status is the prompt decoration: view, email and any pending operation.
func (a *App) status() string {
	s := string(a.currentView())
	if sess := a.auth.Session(); sess.LoggedIn() && sess.Email() != "" {
		s += " " + sess.Email()
	}
	if label := pendingLabel(a.store.Pending(), a.tr); label != "" {
		s += " " + label
	}
	if s == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

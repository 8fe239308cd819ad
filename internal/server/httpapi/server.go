// Package httpapi exposes the development backend over HTTP: the auth API
// under /auth and the content API under /api.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/around/internal/server/models"
	"github.com/dmitrijs2005/around/internal/server/services"
)

// UserService is the account surface the handlers need.
type UserService interface {
	SignUp(ctx context.Context, in services.SignUpInput) (*models.User, error)
	SignIn(ctx context.Context, in services.SignUpInput) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, in services.ProfileInput) (*models.User, error)
	UpdateAvatar(ctx context.Context, id string, in services.AvatarInput) (*models.User, error)
}

// CardService is the card surface the handlers need.
type CardService interface {
	List(ctx context.Context, viewerID string) ([]models.CardView, error)
	Create(ctx context.Context, ownerID string, in services.CardInput) (models.CardView, error)
	SetLike(ctx context.Context, viewerID, cardID string, liked bool) (models.CardView, error)
	Delete(ctx context.Context, viewerID, cardID string) error
}

var (
	_ UserService = (*services.UserService)(nil)
	_ CardService = (*services.CardService)(nil)
)

type Server struct {
	users  UserService
	cards  CardService
	log    *zerolog.Logger
	router *chi.Mux
}

func NewServer(users UserService, cards CardService, log *zerolog.Logger, allowedOrigins []string) *Server {
	s := &Server{users: users, cards: cards, log: log, router: chi.NewRouter()}
	s.setupMiddleware(allowedOrigins)
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(accessLog(s.log))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignUp)
		r.Post("/signin", s.handleSignIn)
		r.With(s.requireAuth).Get("/users/me", s.handleIdentity)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/users/me", s.handleGetProfile)
		r.Patch("/users/me", s.handleUpdateProfile)
		r.Patch("/users/me/avatar", s.handleUpdateAvatar)

		r.Get("/cards", s.handleListCards)
		r.Post("/cards", s.handleCreateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)
		r.Put("/cards/{id}/likes", s.handleLike)
		r.Delete("/cards/{id}/likes", s.handleUnlike)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

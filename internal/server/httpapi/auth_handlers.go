package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/around/internal/server/services"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c credentialsRequest) input() services.SignUpInput {
	return services.SignUpInput{Email: c.Email, Password: c.Password}
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	u, err := s.users.SignUp(r.Context(), req.input())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, dataEnvelope{Data: u.Identity()})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	token, err := s.users.SignIn(r.Context(), req.input())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleIdentity(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Get(r.Context(), userID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dataEnvelope{Data: u.Identity()})
}

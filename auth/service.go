// Package auth orchestrates the session lifecycle: login, sign-up and logout
// against the backend auth endpoints, mutating the session store as the
// single Anonymous/Authenticated state machine.
package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/session"
)

const baseRoute = "/api/v1/parking/auth"

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpParams is the sign-up request payload. Callers run the Validator
// before submitting; the backend enforces its own rules regardless.
type SignUpParams struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the shape shared by the login and sign-up endpoints. Role
// is deliberately absent: it is only available on user listings.
type authResponse struct {
	User struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Username string `json:"username"`
	} `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Service drives the Anonymous <-> Authenticated transitions.
type Service struct {
	client *apiclient.Client
	store  session.Store
}

// NewService creates the auth lifecycle controller.
func NewService(client *apiclient.Client, store session.Store) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] client is required")
	}
	if store == nil {
		return nil, errors.New("[NewService] store is required")
	}
	return &Service{client: client, store: store}, nil
}

// Login authenticates against the backend. On success the store transitions
// to Authenticated with the returned token and identity; on failure it is
// left untouched.
func (s *Service) Login(ctx context.Context, username, password string) (session.Session, error) {
	return s.authenticate(ctx, "/login", Credentials{Username: username, Password: password})
}

// SignUp creates an account and signs it in, with the same transition shape
// as Login.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (session.Session, error) {
	return s.authenticate(ctx, "/signUp", params)
}

func (s *Service) authenticate(ctx context.Context, route string, payload any) (session.Session, error) {
	var resp authResponse
	if err := s.client.Post(ctx, baseRoute+route, payload, &resp); err != nil {
		return session.Session{}, errors.Wrap(err, "[authenticate] auth endpoint")
	}

	sess := session.Session{
		User: session.Identity{
			Name:     resp.User.Name,
			Username: resp.User.Username,
			Email:    resp.User.Email,
		},
		Token: resp.Token,
	}

	if err := s.store.Set(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "[authenticate] store.Set")
	}

	log.Info().Str("username", sess.User.Username).Msg("session established")
	return sess, nil
}

// Logout tells the backend best-effort, then clears the store. A failed
// server call is swallowed: signing out locally must always succeed.
func (s *Service) Logout(ctx context.Context) error {
	if _, ok := s.store.Token(); ok {
		if err := s.client.Post(ctx, baseRoute+"/logout", nil, nil); err != nil {
			log.Warn().Err(err).Msg("logout request failed, clearing local session anyway")
		}
	}
	return errors.Wrap(s.store.Clear(), "[Logout] store.Clear")
}

// IsAuthenticated reports the store's current state.
func (s *Service) IsAuthenticated() bool {
	_, ok := s.store.Current()
	return ok
}

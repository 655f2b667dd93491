package services

import (
	"errors"
	"time"

	"campus-client/api"
	"campus-client/api/campus"
	"campus-client/dao/session"
	"campus-client/db"
	"campus-client/models"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// ErrSessionExpired means the stored token is no longer usable and the user
// must log in again.
var ErrSessionExpired = errors.New("session expired, please log in again")

// AuthService owns the login state: credentials exchange, the persisted
// bearer token, and the client-side expiry check on startup.
type AuthService struct {
	api      campus.CampusAPI
	sessions *session.SessionDAO
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(campusApi campus.CampusAPI, sessions *session.SessionDAO, validate *validator.Validate, logger zerolog.Logger) *AuthService {
	return &AuthService{
		api:      campusApi,
		sessions: sessions,
		validate: validate,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login exchanges credentials for a token and persists it.
func (s *AuthService) Login(req models.LoginRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	resp, err := s.api.Login(req)
	if err != nil {
		return "", err
	}
	if err := s.sessions.SetAuth(resp.Token, resp.Username); err != nil {
		return "", err
	}
	s.api.SetToken(resp.Token)
	s.logger.Info().Str("username", resp.Username).Msg("logged in")
	return resp.Username, nil
}

// Register creates an account; a successful registration logs the user in.
func (s *AuthService) Register(req models.RegisterRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	resp, err := s.api.Register(req)
	if err != nil {
		return "", err
	}
	if err := s.sessions.SetAuth(resp.Token, resp.Username); err != nil {
		return "", err
	}
	s.api.SetToken(resp.Token)
	return resp.Username, nil
}

// Restore loads a previously stored token on startup. An expired or
// unreadable token is cleared and reported as ErrSessionExpired; a missing
// token is not an error, the user just is not logged in.
func (s *AuthService) Restore() error {
	token, err := s.sessions.AuthToken()
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if TokenExpired(token) {
		s.logger.Info().Msg("stored token expired, clearing auth")
		s.Logout()
		return ErrSessionExpired
	}
	s.api.SetToken(token)
	return nil
}

// Logout drops the persisted auth state and the in-memory token.
func (s *AuthService) Logout() {
	if err := s.sessions.ClearAuth(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear stored auth")
	}
	s.api.ClearToken()
}

// Username returns the stored display name and whether one exists.
func (s *AuthService) Username() (string, bool) {
	name, err := s.sessions.Username()
	if err != nil {
		return "", false
	}
	return name, true
}

// LoggedIn reports whether a usable token is stored.
func (s *AuthService) LoggedIn() bool {
	token, err := s.sessions.AuthToken()
	return err == nil && !TokenExpired(token)
}

// CheckIn records a QR check-in at a space.
func (s *AuthService) CheckIn(spaceID int) error {
	return s.HandleAPIError(s.api.CheckIn(spaceID))
}

// HandleAPIError clears the stored auth on a 401/403 so the next page load
// prompts a re-login, then hands the error back unchanged.
func (s *AuthService) HandleAPIError(err error) error {
	if api.IsAuthError(err) {
		s.logger.Info().Msg("auth rejected by API, clearing stored token")
		s.Logout()
	}
	return err
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job, the client only decides
// whether presenting the token is pointless.
func TokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

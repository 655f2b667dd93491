package handlers

import (
	"net/http"

	"campus-client/models"
	services "campus-client/service"

	"github.com/rs/zerolog"
)

// AuthHandler serves login, registration, logout, the session probe, and
// the QR check-in endpoint.
type AuthHandler struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	username, err := h.authService.Login(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	username, err := h.authService.Register(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": username})
}

// Logout handles POST /v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session handles GET /v1/auth/session: whether a usable token is stored
// and, if so, whose.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"loggedIn": h.authService.LoggedIn()}
	if name, ok := h.authService.Username(); ok {
		resp["username"] = name
	}
	writeJSON(w, http.StatusOK, resp)
}

// CheckIn handles POST /v1/check-in?spaceId=.
func (h *AuthHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	spaceID, err := parseArgInt(r.URL.Query(), SPACE_ID_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+SPACE_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if err := h.authService.CheckIn(spaceID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "checked in"})
}

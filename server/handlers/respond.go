package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campus-client/api"
	"campus-client/dao/session"
	services "campus-client/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps service errors onto HTTP statuses and a uniform
// {"error": ...} body. Remote API errors keep their original status so a
// 401 from the campus server surfaces as a 401 here.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	var validationErrs validator.ValidationErrors

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
	case errors.As(err, &validationErrs),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrOutOfHours):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrSessionExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, session.ErrNoDraft):
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}

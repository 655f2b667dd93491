package handlers

import (
	"net/http"

	services "campus-client/service"

	"github.com/rs/zerolog"
)

// SpaceHandler serves the space master list and the exact-range search.
type SpaceHandler struct {
	spaceService *services.SpaceService
	logger       zerolog.Logger
}

func NewSpaceHandler(spaceService *services.SpaceService, logger zerolog.Logger) *SpaceHandler {
	return &SpaceHandler{
		spaceService: spaceService,
		logger:       logger.With().Str("component", "space_handler").Logger(),
	}
}

// ListSpaces handles GET /v1/spaces.
func (h *SpaceHandler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.spaceService.Spaces()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load space master list")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spaces)
}

// Focus handles POST /v1/spaces/{id}/focus?page=. It stages the space and
// remembers which select screen was open.
func (h *SpaceHandler) Focus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.spaceService.Focus(id, r.URL.Query().Get(PAGE_QUERY_ARG)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "staged"})
}

// TakeFocus handles GET /v1/spaces/focus, the one-shot read side of the
// focus hand-off. The remembered screen rides along since it decides where
// the prefill lands.
func (h *SpaceHandler) TakeFocus(w http.ResponseWriter, r *http.Request) {
	space, ok := h.spaceService.TakeFocus()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no space staged"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"space": space,
		"page":  h.spaceService.LastSelectPage(),
	})
}

// FindAvailable handles GET /v1/spaces/available?date=&start=&end=.
func (h *SpaceHandler) FindAvailable(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	date := vals.Get(DATE_QUERY_ARG)
	start := vals.Get(START_QUERY_ARG)
	end := vals.Get(END_QUERY_ARG)
	if date == "" || start == "" || end == "" {
		http.Error(w, "Missing date/start/end arguments", http.StatusBadRequest)
		return
	}

	spaces, err := h.spaceService.FindAvailable(date, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spaces)
}

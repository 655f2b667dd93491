package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	services "campus-client/service"
	"campus-client/util"

	"github.com/rs/zerolog"
)

const (
	SPACE_ID_QUERY_ARG = "spaceId"
	YEAR_QUERY_ARG     = "year"
	MONTH_QUERY_ARG    = "month"
	DATE_QUERY_ARG     = "date"
	START_QUERY_ARG    = "start"
	END_QUERY_ARG      = "end"
	PAGE_QUERY_ARG     = "page"
)

// AvailabilityHandler serves the calendar screens: the month aggregate view,
// the day slot detail, and the rendered heat-map page.
type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
	logger              zerolog.Logger
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService, logger zerolog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		logger:              logger.With().Str("component", "availability_handler").Logger(),
	}
}

// GetMonth handles GET /v1/availability/month?spaceId=&year=&month=.
func (h *AvailabilityHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	spaceID, year, month, ok := h.parseMonthArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	view, err := h.availabilityService.MonthView(spaceID, year, month)
	if err != nil {
		h.logger.Error().Err(err).Int("spaceId", spaceID).Msg("month view failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetDay handles GET /v1/availability/day?spaceId=&date=.
func (h *AvailabilityHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	spaceID, err := parseArgInt(vals, SPACE_ID_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+SPACE_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	date := vals.Get(DATE_QUERY_ARG)
	if date == "" {
		http.Error(w, "Missing argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	view, err := h.availabilityService.DayView(spaceID, date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("day view failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetCalendarPage handles GET /v1/availability/calendar?spaceId=&year=&month=
// and renders the month heat-map as a standalone HTML page.
func (h *AvailabilityHandler) GetCalendarPage(w http.ResponseWriter, r *http.Request) {
	spaceID, year, month, ok := h.parseMonthArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	data, err := h.availabilityService.GetMonth(spaceID, year, month)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderMonthHeatmap(w, spaceID, year, month, data); err != nil {
		h.logger.Error().Err(err).Msg("failed to render calendar page")
	}
}

// CheckRange handles GET /v1/availability/check?spaceId=&date=&start=&end=.
// It runs the same overlap check that gates booking submission.
func (h *AvailabilityHandler) CheckRange(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	spaceID, err := parseArgInt(vals, SPACE_ID_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+SPACE_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	date := vals.Get(DATE_QUERY_ARG)
	start := vals.Get(START_QUERY_ARG)
	end := vals.Get(END_QUERY_ARG)
	if date == "" || start == "" || end == "" {
		http.Error(w, "Missing date/start/end arguments", http.StatusBadRequest)
		return
	}

	check, err := h.availabilityService.ValidateRange(spaceID, date, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *AvailabilityHandler) parseMonthArgs(vals url.Values, w http.ResponseWriter) (spaceID, year, month int, ok bool) {
	var err error

	spaceID, err = parseArgInt(vals, SPACE_ID_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+SPACE_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	year, err = parseArgInt(vals, YEAR_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+YEAR_QUERY_ARG, http.StatusBadRequest)
		return
	}
	month, err = parseArgInt(vals, MONTH_QUERY_ARG)
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "Invalid argument "+MONTH_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgInt(vals url.Values, name string) (int, error) {
	return strconv.Atoi(vals.Get(name))
}

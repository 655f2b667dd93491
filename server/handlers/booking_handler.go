package handlers

import (
	"net/http"
	"strconv"

	"campus-client/models"
	services "campus-client/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// BookingHandler drives the reservation flow over HTTP: draft hand-off,
// confirmation, history, and the lifecycle actions.
type BookingHandler struct {
	bookingService *services.BookingService
	logger         zerolog.Logger
}

func NewBookingHandler(bookingService *services.BookingService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger.With().Str("component", "booking_handler").Logger(),
	}
}

// StartDraft handles POST /v1/bookings/draft. The body is the selected
// space/date/range; a clear overlap check saves the hand-off record for the
// confirmation step, a conflict comes back as 409 with the offending slot.
func (h *BookingHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.BookingDraft
	if !decodeBody(w, r, &draft) {
		return
	}

	check, err := h.bookingService.StartDraft(draft)
	if err != nil {
		writeError(w, err)
		return
	}
	if !check.OK {
		writeJSON(w, http.StatusConflict, check)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// GetDraft handles GET /v1/bookings/draft, a non-destructive peek.
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.bookingService.PendingDraft()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no booking in progress"})
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// ConfirmDraft handles POST /v1/bookings/confirm. Consumes the pending
// draft; repeating the request therefore cannot double-book.
func (h *BookingHandler) ConfirmDraft(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Purpose string `json:"purpose"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	booking, err := h.bookingService.ConfirmDraft(body.Purpose)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// MyBookings handles GET /v1/bookings.
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.MyBookings()
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Update handles PATCH /v1/bookings/{id}.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req models.BookingUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.bookingService.Update(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Cancel handles POST /v1/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.bookingService.Cancel(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// Complete handles POST /v1/bookings/{id}/complete.
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.bookingService.Complete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

// Rebook handles POST /v1/bookings/{id}/rebook: it stages the booking's
// space and times so the next reservation screen load prefills from them.
func (h *BookingHandler) Rebook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.bookingService.Rebook(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "staged"})
}

// TakeRebooking handles GET /v1/bookings/rebooking, the one-shot read side
// of the rebook hand-off.
func (h *BookingHandler) TakeRebooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.bookingService.TakeRebooking()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no rebooking staged"})
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

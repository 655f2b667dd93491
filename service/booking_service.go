package services

import (
	"campus-client/api/campus"
	"campus-client/availability"
	"campus-client/dao/session"
	"campus-client/models"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// BookingService drives the reservation flow: the validate-then-hand-off
// draft step, the confirmation that consumes the draft, and the booking
// history operations.
type BookingService struct {
	api          campus.CampusAPI
	sessions     *session.SessionDAO
	availability *AvailabilityService
	auth         *AuthService
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewBookingService constructs the booking service.
func NewBookingService(
	campusApi campus.CampusAPI,
	sessions *session.SessionDAO,
	availabilityService *AvailabilityService,
	authService *AuthService,
	validate *validator.Validate,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		api:          campusApi,
		sessions:     sessions,
		availability: availabilityService,
		auth:         authService,
		validate:     validate,
		logger:       logger.With().Str("component", "booking_service").Logger(),
	}
}

// StartDraft validates the requested range against the day's slot map and,
// when clear, writes the one-shot hand-off record for the confirmation
// screen. A conflicting range is reported without touching the store.
func (s *BookingService) StartDraft(draft models.BookingDraft) (availability.RangeCheck, error) {
	check, err := s.availability.ValidateRange(draft.RoomID, draft.Date, draft.StartTime, draft.EndTime)
	if err != nil {
		return availability.RangeCheck{}, err
	}
	if !check.OK {
		s.logger.Info().
			Str("date", draft.Date).
			Str("conflict", check.ConflictSlot).
			Msg("draft rejected by overlap check")
		return check, nil
	}
	if err := s.sessions.SaveBookingDraft(draft); err != nil {
		return availability.RangeCheck{}, err
	}
	return check, nil
}

// ConfirmDraft consumes the pending draft and submits the booking. Without
// a draft the flow is not in progress and session.ErrNoDraft comes back.
func (s *BookingService) ConfirmDraft(purpose string) (*models.Booking, error) {
	draft, err := s.sessions.TakeBookingDraft()
	if err != nil {
		return nil, err
	}

	req := models.BookingRequest{
		RoomID:    draft.RoomID,
		Date:      draft.Date,
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
		Purpose:   purpose,
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	booking, err := s.api.CreateBooking(req)
	if err != nil {
		return nil, s.auth.HandleAPIError(err)
	}
	s.logger.Info().Int("bookingId", booking.ID).Msg("booking created")
	return booking, nil
}

// PendingDraft is a non-destructive peek used to decide whether to resume
// the booking flow; it re-saves what it takes.
func (s *BookingService) PendingDraft() (*models.BookingDraft, bool) {
	draft, err := s.sessions.TakeBookingDraft()
	if err != nil {
		return nil, false
	}
	if err := s.sessions.SaveBookingDraft(*draft); err != nil {
		s.logger.Warn().Err(err).Msg("failed to restore peeked draft")
	}
	return draft, true
}

// MyBookings lists the caller's booking history.
func (s *BookingService) MyBookings() ([]models.Booking, error) {
	bookings, err := s.api.MyBookings()
	if err != nil {
		return nil, s.auth.HandleAPIError(err)
	}
	return bookings, nil
}

// Update patches an existing booking.
func (s *BookingService) Update(id int, req models.BookingUpdateRequest) (*models.Booking, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	booking, err := s.api.UpdateBooking(id, req)
	if err != nil {
		return nil, s.auth.HandleAPIError(err)
	}
	return booking, nil
}

// Cancel cancels a booking.
func (s *BookingService) Cancel(id int) error {
	return s.auth.HandleAPIError(s.api.CancelBooking(id))
}

// Complete marks a booking as completed.
func (s *BookingService) Complete(id int) error {
	return s.auth.HandleAPIError(s.api.CompleteBooking(id))
}

// Rebook hands an existing booking to the reservation screen so its space
// and times prefill the next selection.
func (s *BookingService) Rebook(id int) error {
	bookings, err := s.MyBookings()
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.ID == id {
			return s.sessions.SaveRebooking(b)
		}
	}
	return session.ErrNoDraft
}

// TakeRebooking consumes the rebooking hand-off, if present.
func (s *BookingService) TakeRebooking() (*models.Booking, bool) {
	booking, err := s.sessions.TakeRebooking()
	if err != nil {
		return nil, false
	}
	return booking, true
}

package services

import (
	"campus-client/models"
)

// stubCampusAPI is a function-field stub of the remote API for service
// tests. Unset operations fail loudly.
type stubCampusAPI struct {
	token string

	listSpacesFn    func() ([]models.Space, error)
	monthlyFn       func(roomID, year, month int) (models.MonthAvailability, error)
	dailyFn         func(roomID int, date string) (models.DaySlots, error)
	findAvailableFn func(date, start, end string) ([]models.Space, error)

	createBookingFn   func(req models.BookingRequest) (*models.Booking, error)
	updateBookingFn   func(id int, req models.BookingUpdateRequest) (*models.Booking, error)
	cancelBookingFn   func(id int) error
	completeBookingFn func(id int) error
	myBookingsFn      func() ([]models.Booking, error)

	createComplaintFn func(req models.ComplaintRequest) (*models.Complaint, error)
	myComplaintsFn    func() ([]models.Complaint, error)
	cancelComplaintFn func(id int) error

	loginFn    func(req models.LoginRequest) (*models.AuthResponse, error)
	registerFn func(req models.RegisterRequest) (*models.AuthResponse, error)
	checkInFn  func(spaceID int) error
}

func (s *stubCampusAPI) SetToken(token string) { s.token = token }
func (s *stubCampusAPI) ClearToken()           { s.token = "" }

func (s *stubCampusAPI) ListSpaces() ([]models.Space, error) {
	return s.listSpacesFn()
}

func (s *stubCampusAPI) GetMonthlyAvailability(roomID, year, month int) (models.MonthAvailability, error) {
	return s.monthlyFn(roomID, year, month)
}

func (s *stubCampusAPI) GetDailyAvailability(roomID int, date string) (models.DaySlots, error) {
	return s.dailyFn(roomID, date)
}

func (s *stubCampusAPI) FindAvailableSpaces(date, start, end string) ([]models.Space, error) {
	return s.findAvailableFn(date, start, end)
}

func (s *stubCampusAPI) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	return s.createBookingFn(req)
}

func (s *stubCampusAPI) UpdateBooking(id int, req models.BookingUpdateRequest) (*models.Booking, error) {
	return s.updateBookingFn(id, req)
}

func (s *stubCampusAPI) CancelBooking(id int) error   { return s.cancelBookingFn(id) }
func (s *stubCampusAPI) CompleteBooking(id int) error { return s.completeBookingFn(id) }

func (s *stubCampusAPI) MyBookings() ([]models.Booking, error) {
	return s.myBookingsFn()
}

func (s *stubCampusAPI) CreateComplaint(req models.ComplaintRequest) (*models.Complaint, error) {
	return s.createComplaintFn(req)
}

func (s *stubCampusAPI) MyComplaints() ([]models.Complaint, error) {
	return s.myComplaintsFn()
}

func (s *stubCampusAPI) CancelComplaint(id int) error { return s.cancelComplaintFn(id) }

func (s *stubCampusAPI) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	return s.loginFn(req)
}

func (s *stubCampusAPI) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	return s.registerFn(req)
}

func (s *stubCampusAPI) CheckIn(spaceID int) error { return s.checkInFn(spaceID) }

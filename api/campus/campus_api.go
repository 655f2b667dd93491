package campus

import "campus-client/models"

// CampusAPI defines the interface for the remote facility-reservation API.
type CampusAPI interface {
	SetToken(token string)
	ClearToken()

	ListSpaces() ([]models.Space, error)
	GetMonthlyAvailability(roomID, year, month int) (models.MonthAvailability, error)
	GetDailyAvailability(roomID int, date string) (models.DaySlots, error)
	FindAvailableSpaces(date, start, end string) ([]models.Space, error)

	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	UpdateBooking(id int, req models.BookingUpdateRequest) (*models.Booking, error)
	CancelBooking(id int) error
	CompleteBooking(id int) error
	MyBookings() ([]models.Booking, error)

	CreateComplaint(req models.ComplaintRequest) (*models.Complaint, error)
	MyComplaints() ([]models.Complaint, error)
	CancelComplaint(id int) error

	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	CheckIn(spaceID int) error
}

package campus

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"campus-client/api"
	"campus-client/models"
	"campus-client/util"

	"github.com/golang-jwt/jwt/v5"
)

const SPACES_RESPONSE_PATH = "./resources/spaces.json"
const MONTHLY_AVAILABILITY_PATH = "./resources/monthly_availability.json"
const DAILY_AVAILABILITY_PATH = "./resources/daily_availability.json"

const mockSigningKey = "campus-client-mock"

// CampusApiClientMock serves fixture data from disk and keeps bookings and
// complaints in memory, so the gateway can run without the real API.
type CampusApiClientMock struct {
	mu         sync.Mutex
	token      string
	bookings   []models.Booking
	complaints []models.Complaint
	nextID     int
}

// NewCampusApiClientMock creates a new instance of CampusApiClientMock.
func NewCampusApiClientMock() *CampusApiClientMock {
	return &CampusApiClientMock{nextID: 1}
}

func (m *CampusApiClientMock) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *CampusApiClientMock) ClearToken() {
	m.SetToken("")
}

func (m *CampusApiClientMock) ListSpaces() ([]models.Space, error) {
	return util.ReadSpacesFromJSON(SPACES_RESPONSE_PATH)
}

// GetMonthlyAvailability replays the fixture month with its date keys moved
// onto the requested year and month.
func (m *CampusApiClientMock) GetMonthlyAvailability(roomID, year, month int) (models.MonthAvailability, error) {
	fixture, err := util.ReadMonthAvailabilityFromJSON(MONTHLY_AVAILABILITY_PATH)
	if err != nil {
		return nil, err
	}
	out := make(models.MonthAvailability, len(fixture))
	for dateKey, agg := range fixture {
		if len(dateKey) != 10 {
			continue
		}
		out[fmt.Sprintf("%04d-%02d-%s", year, month, dateKey[8:])] = agg
	}
	return out, nil
}

func (m *CampusApiClientMock) GetDailyAvailability(roomID int, date string) (models.DaySlots, error) {
	return util.ReadDaySlotsFromJSON(DAILY_AVAILABILITY_PATH)
}

func (m *CampusApiClientMock) FindAvailableSpaces(date, start, end string) ([]models.Space, error) {
	spaces, err := util.ReadSpacesFromJSON(SPACES_RESPONSE_PATH)
	if err != nil {
		return nil, err
	}
	// Every other space is "free" in the requested range.
	var out []models.Space
	for i, s := range spaces {
		if i%2 == 0 {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *CampusApiClientMock) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	if err := m.requireAuth(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking := models.Booking{
		ID:        m.nextID,
		RoomID:    req.RoomID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.BookingStatusActive,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	m.nextID++
	m.bookings = append(m.bookings, booking)
	return &booking, nil
}

func (m *CampusApiClientMock) UpdateBooking(id int, req models.BookingUpdateRequest) (*models.Booking, error) {
	if err := m.requireAuth(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID != id {
			continue
		}
		if req.Date != "" {
			m.bookings[i].Date = req.Date
		}
		if req.StartTime != "" {
			m.bookings[i].StartTime = req.StartTime
		}
		if req.EndTime != "" {
			m.bookings[i].EndTime = req.EndTime
		}
		return &m.bookings[i], nil
	}
	return nil, &api.APIError{StatusCode: http.StatusNotFound, Message: "booking not found"}
}

func (m *CampusApiClientMock) CancelBooking(id int) error {
	return m.setBookingStatus(id, models.BookingStatusCancelled)
}

func (m *CampusApiClientMock) CompleteBooking(id int) error {
	return m.setBookingStatus(id, models.BookingStatusCompleted)
}

func (m *CampusApiClientMock) MyBookings() ([]models.Booking, error) {
	if err := m.requireAuth(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *CampusApiClientMock) CreateComplaint(req models.ComplaintRequest) (*models.Complaint, error) {
	if err := m.requireAuth(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	complaint := models.Complaint{
		ID:        m.nextID,
		SpaceID:   req.SpaceID,
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		Status:    models.ComplaintStatusOpen,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	m.nextID++
	m.complaints = append(m.complaints, complaint)
	return &complaint, nil
}

func (m *CampusApiClientMock) MyComplaints() ([]models.Complaint, error) {
	if err := m.requireAuth(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Complaint, len(m.complaints))
	copy(out, m.complaints)
	return out, nil
}

func (m *CampusApiClientMock) CancelComplaint(id int) error {
	if err := m.requireAuth(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.complaints {
		if m.complaints[i].ID == id {
			m.complaints[i].Status = models.ComplaintStatusCancelled
			return nil
		}
	}
	return &api.APIError{StatusCode: http.StatusNotFound, Message: "complaint not found"}
}

// Login accepts any credentials and mints a short-lived HS256 token so the
// client-side expiry check behaves like it would against the real API.
func (m *CampusApiClientMock) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	token, err := mintMockToken(req.Username)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, Username: req.Username}, nil
}

func (m *CampusApiClientMock) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	token, err := mintMockToken(req.Username)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, Username: req.Username}, nil
}

func (m *CampusApiClientMock) CheckIn(spaceID int) error {
	return m.requireAuth()
}

func (m *CampusApiClientMock) setBookingStatus(id int, status models.BookingStatus) error {
	if err := m.requireAuth(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return &api.APIError{StatusCode: http.StatusNotFound, Message: "booking not found"}
}

func (m *CampusApiClientMock) requireAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return &api.APIError{StatusCode: http.StatusUnauthorized, Message: "missing bearer token"}
	}
	return nil
}

func mintMockToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(mockSigningKey))
}

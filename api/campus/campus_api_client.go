package campus

import (
	"fmt"
	"net/url"
	"strconv"

	"campus-client/api"
	"campus-client/models"
)

// CampusApiClient embeds the common HTTPClient.
type CampusApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewCampusApiClient creates a new instance of CampusApiClient.
func NewCampusApiClient(httpClient *api.HTTPClient) *CampusApiClient {
	return &CampusApiClient{
		HTTPClient: httpClient,
	}
}

// ListSpaces retrieves the master list of bookable spaces.
func (c *CampusApiClient) ListSpaces() ([]models.Space, error) {
	var response []models.Space
	err := c.Request("GET", "/api/masters/spaces", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetMonthlyAvailability retrieves aggregate day statuses for one space and
// calendar month.
func (c *CampusApiClient) GetMonthlyAvailability(roomID, year, month int) (models.MonthAvailability, error) {
	query := url.Values{}
	query.Set("roomId", strconv.Itoa(roomID))
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var response models.MonthAvailability
	err := c.Request("GET", "/api/availability/monthly", query, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetDailyAvailability retrieves the per-slot map for one space and date.
func (c *CampusApiClient) GetDailyAvailability(roomID int, date string) (models.DaySlots, error) {
	query := url.Values{}
	query.Set("roomId", strconv.Itoa(roomID))
	query.Set("date", date)

	var response models.DaySlots
	err := c.Request("GET", "/api/availability/daily", query, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// FindAvailableSpaces retrieves spaces free in the exact requested range.
func (c *CampusApiClient) FindAvailableSpaces(date, start, end string) ([]models.Space, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("start", start)
	query.Set("end", end)

	var response []models.Space
	err := c.Request("GET", "/api/spaces/available", query, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// CreateBooking submits a new reservation.
func (c *CampusApiClient) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	var response models.Booking
	err := c.Request("POST", "/api/bookings", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateBooking patches an existing reservation.
func (c *CampusApiClient) UpdateBooking(id int, req models.BookingUpdateRequest) (*models.Booking, error) {
	var response models.Booking
	err := c.Request("PATCH", fmt.Sprintf("/api/bookings/%d", id), nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CancelBooking cancels a reservation.
func (c *CampusApiClient) CancelBooking(id int) error {
	return c.Request("PATCH", fmt.Sprintf("/api/bookings/%d/cancel", id), nil, nil, nil)
}

// CompleteBooking marks a reservation as completed.
func (c *CampusApiClient) CompleteBooking(id int) error {
	return c.Request("PATCH", fmt.Sprintf("/api/bookings/%d/complete", id), nil, nil, nil)
}

// MyBookings retrieves the caller's booking history.
func (c *CampusApiClient) MyBookings() ([]models.Booking, error) {
	var response []models.Booking
	err := c.Request("GET", "/api/bookings/my", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// CreateComplaint files a facility complaint.
func (c *CampusApiClient) CreateComplaint(req models.ComplaintRequest) (*models.Complaint, error) {
	var response models.Complaint
	err := c.Request("POST", "/api/complaints", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// MyComplaints retrieves the caller's complaints.
func (c *CampusApiClient) MyComplaints() ([]models.Complaint, error) {
	var response []models.Complaint
	err := c.Request("GET", "/api/complaints/my", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// CancelComplaint withdraws a complaint.
func (c *CampusApiClient) CancelComplaint(id int) error {
	return c.Request("PATCH", fmt.Sprintf("/api/complaints/%d/cancel", id), nil, nil, nil)
}

// Login exchanges credentials for a bearer token.
func (c *CampusApiClient) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	var response models.AuthResponse
	err := c.Request("POST", "/api/login", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Register creates an account and returns a bearer token.
func (c *CampusApiClient) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	var response models.AuthResponse
	err := c.Request("POST", "/api/register", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CheckIn records a QR check-in at a space.
func (c *CampusApiClient) CheckIn(spaceID int) error {
	query := url.Values{}
	query.Set("space_id", strconv.Itoa(spaceID))
	return c.Request("POST", "/api/check-in", query, nil, nil)
}

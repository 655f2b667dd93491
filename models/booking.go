package models

import "fmt"

// BookingStatus follows the lifecycle the reservation API exposes.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is one reservation as returned by the bookings endpoints.
type Booking struct {
	ID           int           `json:"id"`
	RoomID       int           `json:"roomId"`
	RoomName     string        `json:"roomName"`
	RoomLocation string        `json:"roomLocation"`
	Date         string        `json:"date"`      // YYYY-MM-DD
	StartTime    string        `json:"startTime"` // HH:MM
	EndTime      string        `json:"endTime"`   // HH:MM
	Status       BookingStatus `json:"status"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}

func (b *Booking) ToString() string {
	return fmt.Sprintf("Booking(id=%d, room=%s, date=%s, %s-%s, status=%s)",
		b.ID, b.RoomName, b.Date, b.StartTime, b.EndTime, b.Status)
}

// BookingRequest is the payload submitted to create a reservation.
type BookingRequest struct {
	RoomID    int    `json:"roomId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Purpose   string `json:"purpose,omitempty"`
}

// BookingUpdateRequest carries the editable fields for PATCH /bookings/{id}.
type BookingUpdateRequest struct {
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Purpose   string `json:"purpose,omitempty"`
}

// BookingDraft is the one-shot hand-off record written when the user commits
// a date+time selection and consumed by the confirmation screen.
type BookingDraft struct {
	RoomID       int    `json:"roomId"`
	RoomName     string `json:"roomName"`
	RoomLocation string `json:"roomLocation"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

package models

import "fmt"

// Space is a bookable campus room or area, as served by the master endpoint.
type Space struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	Capacity    int    `json:"capacity"`
}

func (s *Space) ToString() string {
	return fmt.Sprintf("Space(id=%d, name=%s, location=%s, capacity=%d)",
		s.ID, s.Name, s.Location, s.Capacity)
}

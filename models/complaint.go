package models

// ComplaintStatus mirrors the complaint lifecycle on the server.
type ComplaintStatus string

const (
	ComplaintStatusOpen      ComplaintStatus = "open"
	ComplaintStatusResolved  ComplaintStatus = "resolved"
	ComplaintStatusCancelled ComplaintStatus = "cancelled"
)

// Complaint is one facility complaint as returned by the complaints endpoints.
type Complaint struct {
	ID        int             `json:"id"`
	SpaceID   int             `json:"spaceId,omitempty"`
	SpaceName string          `json:"spaceName,omitempty"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Status    ComplaintStatus `json:"status"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// ComplaintRequest is the payload for filing a complaint.
type ComplaintRequest struct {
	SpaceID  int    `json:"spaceId,omitempty"`
	Category string `json:"category" validate:"required"`
	Title    string `json:"title" validate:"required,max=120"`
	Content  string `json:"content" validate:"required"`
}

package handlers

import (
	"net/http"

	"campus-client/models"
	services "campus-client/service"

	"github.com/rs/zerolog"
)

// ComplaintHandler serves the facility-complaint flow.
type ComplaintHandler struct {
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

func NewComplaintHandler(complaintService *services.ComplaintService, logger zerolog.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger.With().Str("component", "complaint_handler").Logger(),
	}
}

// Submit handles POST /v1/complaints.
func (h *ComplaintHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ComplaintRequest
	if !decodeBody(w, r, &req) {
		return
	}

	complaint, err := h.complaintService.Submit(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

// My handles GET /v1/complaints.
func (h *ComplaintHandler) My(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaintService.My()
	if err != nil {
		writeError(w, err)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	writeJSON(w, http.StatusOK, complaints)
}

// Cancel handles POST /v1/complaints/{id}/cancel.
func (h *ComplaintHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.complaintService.Cancel(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

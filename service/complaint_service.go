package services

import (
	"campus-client/api/campus"
	"campus-client/models"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ComplaintService handles the facility-complaint flow.
type ComplaintService struct {
	api      campus.CampusAPI
	auth     *AuthService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewComplaintService constructs the complaint service.
func NewComplaintService(campusApi campus.CampusAPI, authService *AuthService, validate *validator.Validate, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		api:      campusApi,
		auth:     authService,
		validate: validate,
		logger:   logger.With().Str("component", "complaint_service").Logger(),
	}
}

// Submit validates and files a complaint.
func (s *ComplaintService) Submit(req models.ComplaintRequest) (*models.Complaint, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	complaint, err := s.api.CreateComplaint(req)
	if err != nil {
		return nil, s.auth.HandleAPIError(err)
	}
	s.logger.Info().Int("complaintId", complaint.ID).Msg("complaint filed")
	return complaint, nil
}

// My lists the caller's complaints.
func (s *ComplaintService) My() ([]models.Complaint, error) {
	complaints, err := s.api.MyComplaints()
	if err != nil {
		return nil, s.auth.HandleAPIError(err)
	}
	return complaints, nil
}

// Cancel withdraws a complaint.
func (s *ComplaintService) Cancel(id int) error {
	return s.auth.HandleAPIError(s.api.CancelComplaint(id))
}

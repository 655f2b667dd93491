package services

import (
	"fmt"
	"sync"

	"campus-client/api/campus"
	"campus-client/dao/session"
	"campus-client/models"

	"github.com/rs/zerolog"
)

// SpaceService serves the space master list, fetched once per session and
// held immutable afterwards, and the focus hand-off that lets the select
// screen reopen on the space a user last looked at.
type SpaceService struct {
	api      campus.CampusAPI
	sessions *session.SessionDAO
	logger   zerolog.Logger

	mu     sync.Mutex
	spaces []models.Space
}

// NewSpaceService constructs the space service.
func NewSpaceService(campusApi campus.CampusAPI, sessions *session.SessionDAO, logger zerolog.Logger) *SpaceService {
	return &SpaceService{
		api:      campusApi,
		sessions: sessions,
		logger:   logger.With().Str("component", "space_service").Logger(),
	}
}

// Spaces returns the master list, fetching on first use only.
func (s *SpaceService) Spaces() ([]models.Space, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spaces != nil {
		return s.spaces, nil
	}
	spaces, err := s.api.ListSpaces()
	if err != nil {
		return nil, err
	}
	s.spaces = spaces
	s.logger.Info().Int("count", len(spaces)).Msg("loaded space master list")
	return spaces, nil
}

// SpaceByID looks a space up in the master list.
func (s *SpaceService) SpaceByID(id int) (*models.Space, bool) {
	spaces, err := s.Spaces()
	if err != nil {
		return nil, false
	}
	for i := range spaces {
		if spaces[i].ID == id {
			return &spaces[i], true
		}
	}
	return nil, false
}

// FindAvailable asks the API for spaces free in the exact range.
func (s *SpaceService) FindAvailable(date, start, end string) ([]models.Space, error) {
	return s.api.FindAvailableSpaces(date, start, end)
}

// Focus stages a space for the select screen and remembers which screen the
// user was on, so the next load reopens there with the space prefilled.
func (s *SpaceService) Focus(id int, page string) error {
	space, ok := s.SpaceByID(id)
	if !ok {
		return fmt.Errorf("unknown space %d", id)
	}
	if err := s.sessions.SavePrefill(*space); err != nil {
		return err
	}
	if page != "" {
		return s.sessions.SetLastSelectPage(page)
	}
	return nil
}

// TakeFocus consumes the staged space, if one exists.
func (s *SpaceService) TakeFocus() (*models.Space, bool) {
	space, err := s.sessions.TakePrefill()
	if err != nil {
		return nil, false
	}
	return space, true
}

// LastSelectPage returns the remembered select screen, or "" when unset.
func (s *SpaceService) LastSelectPage() string {
	return s.sessions.LastSelectPage()
}

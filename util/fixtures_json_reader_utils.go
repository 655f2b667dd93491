package util

import (
	"encoding/json"
	"fmt"
	"os"

	"campus-client/models"
)

// ReadSpacesFromJSON loads the space master list from JSON on disk.
func ReadSpacesFromJSON(filePath string) ([]models.Space, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var spaces []models.Space
	if err := json.Unmarshal(data, &spaces); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spaces: %w", err)
	}
	return spaces, nil
}

// ReadMonthAvailabilityFromJSON loads a MonthAvailability from JSON on disk.
func ReadMonthAvailabilityFromJSON(filePath string) (models.MonthAvailability, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var month models.MonthAvailability
	if err := json.Unmarshal(data, &month); err != nil {
		return nil, fmt.Errorf("failed to unmarshal MonthAvailability: %w", err)
	}
	return month, nil
}

// ReadDaySlotsFromJSON loads a per-slot day map from JSON on disk.
func ReadDaySlotsFromJSON(filePath string) (models.DaySlots, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var slots models.DaySlots
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DaySlots: %w", err)
	}
	return slots, nil
}

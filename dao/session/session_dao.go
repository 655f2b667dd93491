package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"campus-client/db"
	"campus-client/models"
)

// Persisted client keys. Each holds one JSON-serialized ephemeral record;
// the one-shot keys are consumed-and-deleted on read.
const (
	AUTH_TOKEN_KEY        = "authToken"
	USERNAME_KEY          = "username"
	TEMP_BOOKING_DATA_KEY = "tempBookingData"
	LAST_SELECT_PAGE_KEY  = "lastReservationSelectPage"
	PREFILL_PLACE_KEY     = "prefillPlaceFocus"
	REBOOKING_DATA_KEY    = "rebookingData"
)

// ErrNoDraft is returned when a one-shot hand-off key is absent: the flow
// is not in progress, or an earlier screen already consumed it.
var ErrNoDraft = errors.New("no pending draft")

// SessionDAO gives typed access to the persisted client-side state on top
// of the raw LocalStore.
type SessionDAO struct {
	store db.LocalStore
}

// NewSessionDAO initializes a SessionDAO with the local store.
func NewSessionDAO(store db.LocalStore) *SessionDAO {
	return &SessionDAO{store: store}
}

// SetAuth persists the bearer token and username after login or register.
func (dao *SessionDAO) SetAuth(token, username string) error {
	if err := dao.store.Set(AUTH_TOKEN_KEY, token); err != nil {
		return fmt.Errorf("failed to store auth token: %w", err)
	}
	if err := dao.store.Set(USERNAME_KEY, username); err != nil {
		return fmt.Errorf("failed to store username: %w", err)
	}
	return nil
}

// AuthToken returns the stored bearer token, or db.ErrKeyNotFound.
func (dao *SessionDAO) AuthToken() (string, error) {
	return dao.store.Get(AUTH_TOKEN_KEY)
}

// Username returns the stored display name, or db.ErrKeyNotFound.
func (dao *SessionDAO) Username() (string, error) {
	return dao.store.Get(USERNAME_KEY)
}

// ClearAuth drops both auth keys. Used on logout and on 401/403.
func (dao *SessionDAO) ClearAuth() error {
	if err := dao.store.Del(AUTH_TOKEN_KEY); err != nil {
		return err
	}
	return dao.store.Del(USERNAME_KEY)
}

// SaveBookingDraft stores the pending draft. At most one draft exists at a
// time; writing replaces any previous one.
func (dao *SessionDAO) SaveBookingDraft(draft models.BookingDraft) error {
	return dao.putJSON(TEMP_BOOKING_DATA_KEY, draft)
}

// TakeBookingDraft consumes the pending draft. The key is deleted even when
// the payload fails to decode, so a corrupt record cannot wedge the flow.
func (dao *SessionDAO) TakeBookingDraft() (*models.BookingDraft, error) {
	var draft models.BookingDraft
	if err := dao.takeJSON(TEMP_BOOKING_DATA_KEY, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// SaveRebooking hands an existing booking to the reservation screen for
// re-booking.
func (dao *SessionDAO) SaveRebooking(booking models.Booking) error {
	return dao.putJSON(REBOOKING_DATA_KEY, booking)
}

// TakeRebooking consumes the rebooking hand-off record.
func (dao *SessionDAO) TakeRebooking() (*models.Booking, error) {
	var booking models.Booking
	if err := dao.takeJSON(REBOOKING_DATA_KEY, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// SavePrefill stores the space a user focused so the select screen can
// reopen on it.
func (dao *SessionDAO) SavePrefill(space models.Space) error {
	return dao.putJSON(PREFILL_PLACE_KEY, space)
}

// TakePrefill consumes the prefill hand-off record.
func (dao *SessionDAO) TakePrefill() (*models.Space, error) {
	var space models.Space
	if err := dao.takeJSON(PREFILL_PLACE_KEY, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// SetLastSelectPage remembers which reservation select screen was open.
// Unlike the hand-off keys this one is read non-destructively.
func (dao *SessionDAO) SetLastSelectPage(page string) error {
	return dao.store.Set(LAST_SELECT_PAGE_KEY, page)
}

// LastSelectPage returns the remembered screen, or "" when unset.
func (dao *SessionDAO) LastSelectPage() string {
	page, err := dao.store.Get(LAST_SELECT_PAGE_KEY)
	if err != nil {
		return ""
	}
	return page
}

func (dao *SessionDAO) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return dao.store.Set(key, string(data))
}

func (dao *SessionDAO) takeJSON(key string, v interface{}) error {
	raw, err := dao.store.Take(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return ErrNoDraft
		}
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

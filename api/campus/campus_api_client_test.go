package campus

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-client/api"
	"campus-client/models"
)

func TestGetMonthlyAvailability(t *testing.T) {
	wantResp := models.MonthAvailability{
		"2025-06-12": {Status: models.DayStatusPartial, Percentage: 0.5},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/api/availability/monthly" {
			t.Errorf("expected path /api/availability/monthly; got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("roomId") != "5" || q.Get("year") != "2025" || q.Get("month") != "6" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	got, err := client.GetMonthlyAvailability(5, 2025, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got["2025-06-12"].Status != models.DayStatusPartial {
		t.Errorf("day status = %q; want partial", got["2025-06-12"].Status)
	}
	if got["2025-06-12"].Percentage != 0.5 {
		t.Errorf("percentage = %v; want 0.5", got["2025-06-12"].Percentage)
	}
}

func TestGetDailyAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/availability/daily" {
			t.Errorf("expected /api/availability/daily; got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("roomId") != "5" || q.Get("date") != "2025-06-12" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DaySlots{"09:00": false, "09:10": true})
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	got, err := client.GetDailyAvailability(5, "2025-06-12")
	if err != nil {
		t.Fatal(err)
	}
	if free, ok := got["09:00"]; !ok || free {
		t.Errorf("09:00 = (%v,%v); want explicit false", free, ok)
	}
}

func TestCreateBooking_SendsBearer(t *testing.T) {
	var gotAuth string
	var received models.BookingRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/bookings" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&received)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Booking{ID: 42, RoomID: received.RoomID, Status: models.BookingStatusActive})
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	client.SetToken("secret")

	got, err := client.CreateBooking(models.BookingRequest{RoomID: 5, Date: "2025-06-12", StartTime: "09:00", EndTime: "10:00"})
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q; want Bearer secret", gotAuth)
	}
	if received.RoomID != 5 || received.StartTime != "09:00" {
		t.Errorf("server received %+v", received)
	}
	if got.ID != 42 {
		t.Errorf("booking ID = %d; want 42", got.ID)
	}
}

func TestCancelBooking_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" || r.URL.Path != "/api/bookings/7/cancel" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	if err := client.CancelBooking(7); err != nil {
		t.Fatal(err)
	}
}

func TestMyBookings_AuthErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	_, err := client.MyBookings()
	if !api.IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestCheckIn_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/check-in" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("space_id") != "3" {
			t.Errorf("space_id = %q; want 3", r.URL.Query().Get("space_id"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	if err := client.CheckIn(3); err != nil {
		t.Fatal(err)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "casey" {
			t.Errorf("username = %q", req.Username)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{Token: "tok", Username: "casey"})
	}))
	defer srv.Close()

	client := NewCampusApiClient(api.NewHTTPClient(srv.URL))
	resp, err := client.Login(models.LoginRequest{Username: "casey", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token != "tok" {
		t.Errorf("token = %q", resp.Token)
	}
}

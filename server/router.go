package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler groups are interfaces so tests can register routes against stubs.
type AvailabilityRoutes interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetCalendarPage(w http.ResponseWriter, r *http.Request)
	CheckRange(w http.ResponseWriter, r *http.Request)
}

type SpaceRoutes interface {
	ListSpaces(w http.ResponseWriter, r *http.Request)
	FindAvailable(w http.ResponseWriter, r *http.Request)
	Focus(w http.ResponseWriter, r *http.Request)
	TakeFocus(w http.ResponseWriter, r *http.Request)
}

type BookingRoutes interface {
	StartDraft(w http.ResponseWriter, r *http.Request)
	GetDraft(w http.ResponseWriter, r *http.Request)
	ConfirmDraft(w http.ResponseWriter, r *http.Request)
	MyBookings(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Rebook(w http.ResponseWriter, r *http.Request)
	TakeRebooking(w http.ResponseWriter, r *http.Request)
}

type ComplaintRoutes interface {
	Submit(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type AuthRoutes interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	availabilityHandler AvailabilityRoutes
	spaceHandler        SpaceRoutes
	bookingHandler      BookingRoutes
	complaintHandler    ComplaintRoutes
	authHandler         AuthRoutes
	router              *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	availabilityHandler AvailabilityRoutes,
	spaceHandler SpaceRoutes,
	bookingHandler BookingRoutes,
	complaintHandler ComplaintRoutes,
	authHandler AuthRoutes,
	router *mux.Router) *Router {
	return &Router{
		availabilityHandler: availabilityHandler,
		spaceHandler:        spaceHandler,
		bookingHandler:      bookingHandler,
		complaintHandler:    complaintHandler,
		authHandler:         authHandler,
		router:              router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?spaceId={int}&year={int}&month={1-12}
	r.router.HandleFunc("/v1/availability/month", r.availabilityHandler.GetMonth).Methods("GET")
	// expects ?spaceId={int}&date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/availability/day", r.availabilityHandler.GetDay).Methods("GET")
	r.router.HandleFunc("/v1/availability/calendar", r.availabilityHandler.GetCalendarPage).Methods("GET")
	// expects ?spaceId={int}&date={YYYY-MM-DD}&start={HH:MM}&end={HH:MM}
	r.router.HandleFunc("/v1/availability/check", r.availabilityHandler.CheckRange).Methods("GET")

	r.router.HandleFunc("/v1/spaces", r.spaceHandler.ListSpaces).Methods("GET")
	r.router.HandleFunc("/v1/spaces/available", r.spaceHandler.FindAvailable).Methods("GET")
	r.router.HandleFunc("/v1/spaces/focus", r.spaceHandler.TakeFocus).Methods("GET")
	// expects ?page={select screen name}
	r.router.HandleFunc("/v1/spaces/{id:[0-9]+}/focus", r.spaceHandler.Focus).Methods("POST")

	r.router.HandleFunc("/v1/bookings/draft", r.bookingHandler.StartDraft).Methods("POST")
	r.router.HandleFunc("/v1/bookings/draft", r.bookingHandler.GetDraft).Methods("GET")
	r.router.HandleFunc("/v1/bookings/confirm", r.bookingHandler.ConfirmDraft).Methods("POST")
	r.router.HandleFunc("/v1/bookings/rebooking", r.bookingHandler.TakeRebooking).Methods("GET")
	r.router.HandleFunc("/v1/bookings", r.bookingHandler.MyBookings).Methods("GET")
	r.router.HandleFunc("/v1/bookings/{id:[0-9]+}", r.bookingHandler.Update).Methods("PATCH")
	r.router.HandleFunc("/v1/bookings/{id:[0-9]+}/cancel", r.bookingHandler.Cancel).Methods("POST")
	r.router.HandleFunc("/v1/bookings/{id:[0-9]+}/complete", r.bookingHandler.Complete).Methods("POST")
	r.router.HandleFunc("/v1/bookings/{id:[0-9]+}/rebook", r.bookingHandler.Rebook).Methods("POST")

	r.router.HandleFunc("/v1/complaints", r.complaintHandler.Submit).Methods("POST")
	r.router.HandleFunc("/v1/complaints", r.complaintHandler.My).Methods("GET")
	r.router.HandleFunc("/v1/complaints/{id:[0-9]+}/cancel", r.complaintHandler.Cancel).Methods("POST")

	r.router.HandleFunc("/v1/auth/login", r.authHandler.Login).Methods("POST")
	r.router.HandleFunc("/v1/auth/register", r.authHandler.Register).Methods("POST")
	r.router.HandleFunc("/v1/auth/logout", r.authHandler.Logout).Methods("POST")
	r.router.HandleFunc("/v1/auth/session", r.authHandler.Session).Methods("GET")
	// expects ?spaceId={int}
	r.router.HandleFunc("/v1/check-in", r.authHandler.CheckIn).Methods("POST")

	r.router.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "pong"}`))
	}).Methods("GET")
}

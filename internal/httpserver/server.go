package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"car-rental/internal/config"
	"car-rental/internal/middleware"
)

// Server ties the shared database handle to the route table. The handle is
// passed in at construction; handlers never reach for globals.
type Server struct {
	db     *gorm.DB
	rules  config.BookingRules
	router *mux.Router
}

func New(conn *gorm.DB, rules config.BookingRules) *Server {
	s := &Server{db: conn, rules: rules}

	r := mux.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)

	r.HandleFunc("/users", s.createUser).Methods("POST")
	r.HandleFunc("/users", s.listUsers).Methods("GET")
	r.HandleFunc("/cars", s.createCar).Methods("POST")
	r.HandleFunc("/cars", s.listCars).Methods("GET")
	r.HandleFunc("/bookings", s.createBooking).Methods("POST")
	r.HandleFunc("/users/{id}/bookings", s.listUserBookings).Methods("GET")
	r.HandleFunc("/payments", s.createPayment).Methods("POST")
	r.HandleFunc("/reviews", s.createReview).Methods("POST")

	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/docs", docsPage).Methods("GET")
	r.HandleFunc("/docs/openapi.json", openapiDoc).Methods("GET")

	s.router = r
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

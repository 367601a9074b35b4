package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"car-rental/internal/db"
)

type createBookingRequest struct {
	UserID    uint   `json:"user_id"`
	CarID     uint   `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// parseDate accepts plain calendar dates and full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// createBooking checks that the referenced user and car exist, derives the
// total price from the car's current daily rate, and persists the booking
// as pending. The two optional rules (date ordering, overlap) are off by
// default; without them a reversed date range produces a negative price,
// matching the source behavior.
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		internalError(w, r, err)
		return
	}

	var user db.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "User or Car not found")
			return
		}
		internalError(w, r, err)
		return
	}

	var car db.Car
	if err := s.db.First(&car, req.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "User or Car not found")
			return
		}
		internalError(w, r, err)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		internalError(w, r, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		internalError(w, r, err)
		return
	}

	if s.rules.ValidateDates && endDate.Before(startDate) {
		writeError(w, http.StatusBadRequest, "end_date must not precede start_date")
		return
	}

	if s.rules.CheckOverlap {
		var conflicts int64
		err := s.db.Model(&db.Booking{}).
			Where("car_id = ? AND start_date < ? AND end_date > ?", req.CarID, endDate, startDate).
			Count(&conflicts).Error
		if err != nil {
			internalError(w, r, err)
			return
		}
		if conflicts > 0 {
			writeError(w, http.StatusConflict, "Car already booked for the selected dates")
			return
		}
	}

	days := endDate.Sub(startDate).Hours() / 24

	booking := db.Booking{
		UserID:     user.ID,
		CarID:      car.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     db.BookingStatusPending,
		TotalPrice: days * car.PricePerDay,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// listUserBookings loads the user's bookings on demand rather than eagerly
// through the relation graph.
func (s *Server) listUserBookings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var user db.User
	if err := s.db.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		internalError(w, r, err)
		return
	}

	var bookings []db.Booking
	if err := s.db.Where("user_id = ?", user.ID).Find(&bookings).Error; err != nil {
		internalError(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

package httpserver

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/db"
)

type createCarRequest struct {
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
}

// createCar persists unconditionally: no year range or price positivity
// checks exist in this surface.
func (s *Server) createCar(w http.ResponseWriter, r *http.Request) {
	var req createCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		internalError(w, r, err)
		return
	}

	car := db.Car{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
	}

	if err := s.db.Create(&car).Error; err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, car)
}

func (s *Server) listCars(w http.ResponseWriter, r *http.Request) {
	var cars []db.Car
	if err := s.db.Find(&cars).Error; err != nil {
		internalError(w, r, err)
		return
	}
	if cars == nil {
		cars = []db.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

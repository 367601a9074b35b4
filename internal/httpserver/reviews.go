package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"car-rental/internal/db"
)

type createReviewRequest struct {
	UserID  uint    `json:"user_id"`
	CarID   uint    `json:"car_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// createReview stores a review with a server-assigned timestamp, pending
// approval. Rating range is not validated, and nothing verifies the user
// ever booked the car.
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
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

	review := db.Review{
		UserID:  user.ID,
		CarID:   car.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now(),
	}

	if err := s.db.Create(&review).Error; err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

package httpserver

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/db"
)

type createUserRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	LicenseNumber *string `json:"license_number"`
}

// createUser persists a new user. Email uniqueness is left to the storage
// layer: a collision comes back as an insert error and surfaces as a 500.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		internalError(w, r, err)
		return
	}

	user := db.User{
		Name:          req.Name,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
	}

	if err := s.db.Create(&user).Error; err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	var users []db.User
	if err := s.db.Find(&users).Error; err != nil {
		internalError(w, r, err)
		return
	}
	if users == nil {
		users = []db.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

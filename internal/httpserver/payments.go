package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"car-rental/internal/db"
)

type createPaymentRequest struct {
	BookingID uint    `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// createPayment records a pending payment against an existing booking.
// The amount is taken as submitted; nothing compares it to the booking's
// total price, and nothing stops a second payment for the same booking.
func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		internalError(w, r, err)
		return
	}

	var booking db.Booking
	if err := s.db.First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Booking not found")
			return
		}
		internalError(w, r, err)
		return
	}

	payment := db.Payment{
		BookingID:     booking.ID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        db.PaymentStatusPending,
		TransactionID: fmt.Sprintf("tx_%d", time.Now().UnixNano()),
	}

	if err := s.db.Create(&payment).Error; err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

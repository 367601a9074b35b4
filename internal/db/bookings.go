package db

import (
	"time"
)

// Booking statuses. Documented intent only: no handler moves a booking
// past pending, and no transition table is enforced.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking reserves one Car for one User over a date range. TotalPrice is
// computed once at creation from the car's price at that moment and is
// never recomputed.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CarID      uint      `gorm:"not null" json:"car_id"`
	Car        Car       `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	TotalPrice float64   `gorm:"type:decimal(10,2)" json:"total_price"`

	Payments []Payment `gorm:"foreignKey:BookingID" json:"-"`
}

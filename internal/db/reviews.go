package db

import (
	"time"
)

// Review is a user's rating of a car. Rating is expected in 1..5 but is
// not validated, and nothing checks the user ever booked the car.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CarID      uint      `gorm:"not null" json:"car_id"`
	Car        Car       `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Rating     int       `json:"rating"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	Date       time.Time `json:"date"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
}

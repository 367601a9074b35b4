package db

// User is a registered customer. Email is unique at the storage layer;
// a collision surfaces as an insert error, not a pre-checked validation.
type User struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	LicenseNumber *string `json:"license_number"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:UserID" json:"-"`
}

package db

type Car struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `gorm:"type:decimal(10,2)" json:"price_per_day"`

	Bookings []Booking `gorm:"foreignKey:CarID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:CarID" json:"-"`
}

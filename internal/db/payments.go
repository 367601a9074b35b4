package db

// Payment statuses and methods. Free-form strings at the storage layer;
// these constants document the expected closed set.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
)

// Payment records money against a booking. It is a record only; nothing
// here settles anything.
type Payment struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	BookingID     uint    `gorm:"not null" json:"booking_id"`
	Booking       Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Amount        float64 `gorm:"type:decimal(10,2)" json:"amount"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	TransactionID string  `gorm:"uniqueIndex" json:"transaction_id"`
}

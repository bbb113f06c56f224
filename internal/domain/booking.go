package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingRefunded  BookingStatus = "REFUNDED"
)

type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// CancellationInitiator records who triggered a cancellation. Operator and
// admin cancellations may qualify for the full-refund override.
type CancellationInitiator string

const (
	InitiatorCustomer CancellationInitiator = "CUSTOMER"
	InitiatorOperator CancellationInitiator = "OPERATOR"
	InitiatorAdmin    CancellationInitiator = "ADMIN"
)

type Booking struct {
	ID          int64         `json:"id"`
	PackageID   int64         `json:"package_id" validate:"required"`
	DepartureID int64         `json:"departure_id" validate:"required"`
	CustomerID  int64         `json:"customer_id" validate:"required"`
	PartySize   int           `json:"party_size" validate:"gte=1"`
	TotalAmount float64       `json:"total_amount" validate:"gte=0"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Payments     []Payment     `json:"payments,omitempty" gorm:"foreignKey:BookingID"`
	Cancellation *Cancellation `json:"cancellation,omitempty" gorm:"foreignKey:BookingID"`

	Customer  *User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Package   *TourPackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	Departure *Departure   `json:"departure,omitempty" gorm:"foreignKey:DepartureID"`
}

// TotalPaid is the sum of payments that actually collected money.
func (b *Booking) TotalPaid() float64 {
	var total float64
	for _, p := range b.Payments {
		if p.Status == PaymentSuccess || p.Status == PaymentConfirmed {
			total += p.Amount
		}
	}
	return total
}

type Payment struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"booking_id"`
	Amount    float64       `json:"amount" validate:"gte=0"`
	Status    PaymentStatus `json:"status"`
	Method    string        `json:"method,omitempty"`
	Reference string        `json:"reference,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type Cancellation struct {
	ID              int64                 `json:"id"`
	BookingID       int64                 `json:"booking_id"`
	Reason          string                `json:"reason" gorm:"type:text"`
	CancelledAt     time.Time             `json:"cancelled_at"`
	CancelledBy     CancellationInitiator `json:"cancelled_by"`
	RefundAmount    float64               `json:"refund_amount"`
	RefundTier      string                `json:"refund_tier,omitempty"`
	RefundProcessed bool                  `json:"refund_processed"`
	ProcessedAt     *time.Time            `json:"processed_at,omitempty"`
}

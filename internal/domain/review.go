package domain

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Review carries both a moderation status and a separate visibility flag.
// The operator-facing screens toggle is_hidden without touching the
// moderation outcome, so the two are kept as independent fields.
type Review struct {
	ID        int64        `json:"id"`
	PackageID int64        `json:"package_id"`
	UserID    int64        `json:"user_id"`
	BookingID *int64       `json:"booking_id,omitempty"`
	Rating    int          `json:"rating" validate:"gte=1,lte=5"`
	Comment   string       `json:"comment,omitempty" gorm:"type:text"`
	Status    ReviewStatus `json:"status"`
	IsFlagged bool         `json:"is_flagged"`
	IsHidden  bool         `json:"is_hidden"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

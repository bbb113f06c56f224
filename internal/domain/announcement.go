package domain

import "time"

type AnnouncementType string

const (
	AnnouncementInfo        AnnouncementType = "INFO"
	AnnouncementWarning     AnnouncementType = "WARNING"
	AnnouncementSuccess     AnnouncementType = "SUCCESS"
	AnnouncementError       AnnouncementType = "ERROR"
	AnnouncementMaintenance AnnouncementType = "MAINTENANCE"
)

type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "LOW"
	PriorityMedium AnnouncementPriority = "MEDIUM"
	PriorityHigh   AnnouncementPriority = "HIGH"
	PriorityUrgent AnnouncementPriority = "URGENT"
)

type Audience string

const (
	AudienceAll       Audience = "ALL"
	AudienceCustomers Audience = "CUSTOMERS"
	AudienceOperators Audience = "OPERATORS"
	AudienceAdmins    Audience = "ADMINS"
)

type Announcement struct {
	ID             int64                `json:"id"`
	Title          string               `json:"title" validate:"required"`
	Message        string               `json:"message" validate:"required" gorm:"type:text"`
	Type           AnnouncementType     `json:"type"`
	Priority       AnnouncementPriority `json:"priority"`
	TargetAudience []Audience           `json:"target_audience" gorm:"type:json;serializer:json"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	IsActive       bool                 `json:"is_active"`
	CreatedBy      int64                `json:"created_by"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// TargetsRole reports whether the announcement should be shown to the role.
func (a *Announcement) TargetsRole(role UserRole) bool {
	for _, aud := range a.TargetAudience {
		switch aud {
		case AudienceAll:
			return true
		case AudienceCustomers:
			if role == RoleCustomer {
				return true
			}
		case AudienceOperators:
			if role == RoleTourOperator {
				return true
			}
		case AudienceAdmins:
			if role == RoleAdmin {
				return true
			}
		}
	}
	return false
}

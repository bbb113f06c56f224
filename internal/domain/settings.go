package domain

import "time"

// CancellationTier maps a days-before-start floor to a refund percentage.
// Tiers are stored sorted by DaysBeforeStart descending; a cancellation
// matches the highest floor that is still <= its actual notice.
type CancellationTier struct {
	DaysBeforeStart  int     `json:"days_before_start" validate:"gte=0"`
	RefundPercentage float64 `json:"refund_percentage" validate:"gte=0,lte=100"`
	Description      string  `json:"description"`
}

type CancellationRuleSet struct {
	Tiers                       []CancellationTier `json:"tiers"`
	ProcessingFeePercent        float64            `json:"processing_fee_percent" validate:"gte=0,lte=100"`
	EmergencyRefundPercentage   float64            `json:"emergency_refund_percentage" validate:"gte=0,lte=100"`
	OperatorCancelledFullRefund bool               `json:"operator_cancelled_full_refund"`
}

// GroupDiscountTier maps a minimum party size to a discount percentage.
type GroupDiscountTier struct {
	MinPeople          int     `json:"min_people" validate:"gte=1"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
}

type CommissionRuleSet struct {
	OperatorCommissionPercent float64 `json:"operator_commission_percent" validate:"gte=0,lte=100"`
	AdminCommissionPercent    float64 `json:"admin_commission_percent" validate:"gte=0,lte=100"`

	EarlyBirdEnabled    bool    `json:"early_bird_enabled"`
	EarlyBirdDays       int     `json:"early_bird_days" validate:"gte=0"`
	EarlyBirdPercentage float64 `json:"early_bird_percentage" validate:"gte=0,lte=100"`

	GroupDiscountEnabled bool                `json:"group_discount_enabled"`
	GroupDiscountTiers   []GroupDiscountTier `json:"group_discount_tiers"`

	PeakSeasonMultiplier float64 `json:"peak_season_multiplier" validate:"gte=1"`
	OffSeasonMultiplier  float64 `json:"off_season_multiplier" validate:"gte=0.1,lte=1"`
}

// RolePermissions is the static permission table for one role.
type RolePermissions struct {
	CanManageUsers       bool `json:"can_manage_users"`
	CanManagePackages    bool `json:"can_manage_packages"`
	CanProcessRefunds    bool `json:"can_process_refunds"`
	CanModerateReviews   bool `json:"can_moderate_reviews"`
	CanSendAnnouncements bool `json:"can_send_announcements"`
	CanManageSettings    bool `json:"can_manage_settings"`
	CanViewReports       bool `json:"can_view_reports"`
}

type PermissionSet map[UserRole]RolePermissions

// SystemSettings is the single admin-editable configuration document. The
// rule sets are serialized as JSON columns, one row per settings version.
type SystemSettings struct {
	ID                int64               `json:"id" gorm:"primaryKey"`
	CancellationRules CancellationRuleSet `json:"cancellation_rules" gorm:"type:json;serializer:json"`
	CommissionRules   CommissionRuleSet   `json:"commission_rules" gorm:"type:json;serializer:json"`
	Permissions       PermissionSet       `json:"permissions" gorm:"type:json;serializer:json"`
	UpdatedBy         int64               `json:"updated_by"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func (SystemSettings) TableName() string { return "system_settings" }

// DefaultCancellationRules is the rule set a fresh install starts with.
func DefaultCancellationRules() CancellationRuleSet {
	return CancellationRuleSet{
		Tiers: []CancellationTier{
			{DaysBeforeStart: 30, RefundPercentage: 100, Description: "Full refund (30+ days)"},
			{DaysBeforeStart: 14, RefundPercentage: 75, Description: "75% refund (14-29 days)"},
			{DaysBeforeStart: 7, RefundPercentage: 50, Description: "50% refund (7-13 days)"},
			{DaysBeforeStart: 3, RefundPercentage: 25, Description: "25% refund (3-6 days)"},
			{DaysBeforeStart: 0, RefundPercentage: 0, Description: "No refund (under 3 days)"},
		},
		ProcessingFeePercent:        5,
		EmergencyRefundPercentage:   100,
		OperatorCancelledFullRefund: true,
	}
}

func DefaultCommissionRules() CommissionRuleSet {
	return CommissionRuleSet{
		OperatorCommissionPercent: 80,
		AdminCommissionPercent:    20,
		EarlyBirdEnabled:          true,
		EarlyBirdDays:             60,
		EarlyBirdPercentage:       10,
		GroupDiscountEnabled:      true,
		GroupDiscountTiers: []GroupDiscountTier{
			{MinPeople: 5, DiscountPercentage: 5},
			{MinPeople: 10, DiscountPercentage: 10},
			{MinPeople: 15, DiscountPercentage: 15},
		},
		PeakSeasonMultiplier: 1.3,
		OffSeasonMultiplier:  0.8,
	}
}

// DefaultPermissions is the baseline role table. ADMIN.CanManageSettings is
// hard-wired on; the settings service refuses to persist it off.
func DefaultPermissions() PermissionSet {
	return PermissionSet{
		RoleAdmin: {
			CanManageUsers:       true,
			CanManagePackages:    true,
			CanProcessRefunds:    true,
			CanModerateReviews:   true,
			CanSendAnnouncements: true,
			CanManageSettings:    true,
			CanViewReports:       true,
		},
		RoleTourOperator: {
			CanManagePackages: true,
			CanViewReports:    true,
		},
		RoleCustomer: {},
	}
}

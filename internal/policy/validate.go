package policy

import (
	"errors"
	"fmt"

	"tourbook/internal/domain"
)

// ErrInvalidRuleSet wraps every configuration validation failure so callers
// can map the whole class to one response code.
var ErrInvalidRuleSet = errors.New("invalid rule set")

func invalid(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidRuleSet, field, msg)
}

// ValidateCancellationRules runs at save time. Evaluation assumes a rule set
// that passed here, in particular the presence of a 0-day catch-all floor.
func ValidateCancellationRules(rules domain.CancellationRuleSet) error {
	if len(rules.Tiers) == 0 {
		return invalid("tiers", "at least one tier is required")
	}

	hasFloor := false
	for i, t := range rules.Tiers {
		if t.DaysBeforeStart < 0 {
			return invalid(fmt.Sprintf("tiers[%d].days_before_start", i), "must be >= 0")
		}
		if t.RefundPercentage < 0 || t.RefundPercentage > 100 {
			return invalid(fmt.Sprintf("tiers[%d].refund_percentage", i), "must be between 0 and 100")
		}
		if t.DaysBeforeStart == 0 {
			hasFloor = true
		}
	}
	if !hasFloor {
		return invalid("tiers", "a 0-day catch-all tier is required")
	}

	if rules.ProcessingFeePercent < 0 || rules.ProcessingFeePercent > 100 {
		return invalid("processing_fee_percent", "must be between 0 and 100")
	}
	if rules.EmergencyRefundPercentage < 0 || rules.EmergencyRefundPercentage > 100 {
		return invalid("emergency_refund_percentage", "must be between 0 and 100")
	}
	return nil
}

func ValidateCommissionRules(rules domain.CommissionRuleSet) error {
	if rules.OperatorCommissionPercent < 0 || rules.OperatorCommissionPercent > 100 {
		return invalid("operator_commission_percent", "must be between 0 and 100")
	}
	if rules.AdminCommissionPercent < 0 || rules.AdminCommissionPercent > 100 {
		return invalid("admin_commission_percent", "must be between 0 and 100")
	}
	if rules.OperatorCommissionPercent+rules.AdminCommissionPercent > 100 {
		return invalid("commission", "operator and admin commission may not sum above 100")
	}

	if rules.EarlyBirdDays < 0 {
		return invalid("early_bird_days", "must be >= 0")
	}
	if rules.EarlyBirdPercentage < 0 || rules.EarlyBirdPercentage > 100 {
		return invalid("early_bird_percentage", "must be between 0 and 100")
	}

	for i, t := range rules.GroupDiscountTiers {
		if t.MinPeople < 1 {
			return invalid(fmt.Sprintf("group_discount_tiers[%d].min_people", i), "must be >= 1")
		}
		if t.DiscountPercentage < 0 || t.DiscountPercentage > 100 {
			return invalid(fmt.Sprintf("group_discount_tiers[%d].discount_percentage", i), "must be between 0 and 100")
		}
	}

	if rules.PeakSeasonMultiplier < 1.0 {
		return invalid("peak_season_multiplier", "must be >= 1.0")
	}
	if rules.OffSeasonMultiplier < 0.1 || rules.OffSeasonMultiplier > 1.0 {
		return invalid("off_season_multiplier", "must be between 0.1 and 1.0")
	}
	return nil
}

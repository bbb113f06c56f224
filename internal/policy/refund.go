package policy

import (
	"math"

	"tourbook/internal/domain"
)

// RefundResult is the outcome of resolving a cancellation against the rule
// set: the amounts plus the matched tier description for audit display.
type RefundResult struct {
	GrossAmount     float64 `json:"gross_amount"`
	NetAmount       float64 `json:"net_amount"`
	Percentage      float64 `json:"percentage"`
	TierDescription string  `json:"tier_description"`
}

// ResolveRefund computes the refund owed for a cancellation. It is a pure
// function: persistence of the refund record and the booking status
// transition belong to the caller.
//
// The rule set is assumed pre-validated (ValidateCancellationRules runs at
// save time). daysBeforeStart may be negative when the booking was cancelled
// after departure; that counts as zero notice.
func ResolveRefund(
	totalPaid float64,
	daysBeforeStart int,
	initiator domain.CancellationInitiator,
	emergency bool,
	rules domain.CancellationRuleSet,
) RefundResult {
	if totalPaid <= 0 {
		return RefundResult{TierDescription: "nothing paid"}
	}
	if daysBeforeStart < 0 {
		daysBeforeStart = 0
	}

	// Operator fault: full refund, fee waived.
	if initiator != domain.InitiatorCustomer && rules.OperatorCancelledFullRefund {
		return RefundResult{
			GrossAmount:     totalPaid,
			NetAmount:       totalPaid,
			Percentage:      100,
			TierDescription: "operator cancelled, full refund",
		}
	}

	percentage := 0.0
	description := "no qualifying tier"
	if tier := matchTier(rules.Tiers, daysBeforeStart); tier != nil {
		percentage = tier.RefundPercentage
		description = tier.Description
	}

	if emergency {
		percentage = rules.EmergencyRefundPercentage
		description = "emergency refund override"
	}

	gross := round2(totalPaid * percentage / 100)
	net := round2(gross * (1 - rules.ProcessingFeePercent/100))

	if net < 0 {
		net = 0
	}
	if net > totalPaid {
		net = totalPaid
	}

	return RefundResult{
		GrossAmount:     gross,
		NetAmount:       net,
		Percentage:      percentage,
		TierDescription: description,
	}
}

func matchTier(tiers []domain.CancellationTier, daysBeforeStart int) *domain.CancellationTier {
	thresholds := make([]int, len(tiers))
	for i, t := range tiers {
		thresholds[i] = t.DaysBeforeStart
	}
	i := highestQualifyingFloor(thresholds, daysBeforeStart)
	if i < 0 {
		return nil
	}
	return &tiers[i]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

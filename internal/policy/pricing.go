package policy

import "tourbook/internal/domain"

// PriceBreakdown shows how the final price was derived, one line per
// applied adjustment.
type PriceBreakdown struct {
	BasePrice          float64 `json:"base_price"`
	SeasonalMultiplier float64 `json:"seasonal_multiplier"`
	EarlyBirdApplied   bool    `json:"early_bird_applied"`
	GroupDiscount      float64 `json:"group_discount"`
	FinalPrice         float64 `json:"final_price"`
}

// ComputeFinalPrice derives the charged price from the base price. Discounts
// compound multiplicatively in a fixed order: seasonal multiplier, then
// early-bird, then group discount, each applied to the running total.
func ComputeFinalPrice(
	basePrice float64,
	season domain.Season,
	daysBeforeDeparture int,
	partySize int,
	rules domain.CommissionRuleSet,
) PriceBreakdown {
	bd := PriceBreakdown{BasePrice: basePrice, SeasonalMultiplier: 1}

	switch season {
	case domain.SeasonPeak:
		bd.SeasonalMultiplier = rules.PeakSeasonMultiplier
	case domain.SeasonOff:
		bd.SeasonalMultiplier = rules.OffSeasonMultiplier
	}

	price := basePrice * bd.SeasonalMultiplier

	if rules.EarlyBirdEnabled && daysBeforeDeparture >= rules.EarlyBirdDays {
		price *= 1 - rules.EarlyBirdPercentage/100
		bd.EarlyBirdApplied = true
	}

	if rules.GroupDiscountEnabled {
		if pct := matchGroupDiscount(rules.GroupDiscountTiers, partySize); pct > 0 {
			price *= 1 - pct/100
			bd.GroupDiscount = pct
		}
	}

	if price < 0 {
		price = 0
	}
	bd.FinalPrice = round2(price)
	return bd
}

func matchGroupDiscount(tiers []domain.GroupDiscountTier, partySize int) float64 {
	thresholds := make([]int, len(tiers))
	for i, t := range tiers {
		thresholds[i] = t.MinPeople
	}
	i := highestQualifyingFloor(thresholds, partySize)
	if i < 0 {
		return 0
	}
	return tiers[i].DiscountPercentage
}

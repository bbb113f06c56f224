package policy

import (
	"testing"

	"tourbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateCancellationRules_Valid(t *testing.T) {
	assert.NoError(t, ValidateCancellationRules(testRules()))
	assert.NoError(t, ValidateCancellationRules(domain.DefaultCancellationRules()))
}

func TestValidateCancellationRules_MissingZeroFloor(t *testing.T) {
	rules := testRules()
	rules.Tiers = rules.Tiers[:4] // drop the 0-day tier

	err := ValidateCancellationRules(rules)
	assert.ErrorIs(t, err, ErrInvalidRuleSet)
	assert.Contains(t, err.Error(), "0-day")
}

func TestValidateCancellationRules_PercentageOutOfRange(t *testing.T) {
	rules := testRules()
	rules.Tiers[1].RefundPercentage = 120
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)

	rules = testRules()
	rules.Tiers[1].RefundPercentage = -1
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)

	rules = testRules()
	rules.ProcessingFeePercent = 101
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)

	rules = testRules()
	rules.EmergencyRefundPercentage = -5
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)
}

func TestValidateCancellationRules_NegativeDayThreshold(t *testing.T) {
	rules := testRules()
	rules.Tiers[0].DaysBeforeStart = -1
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)
}

func TestValidateCancellationRules_EmptyTiers(t *testing.T) {
	rules := testRules()
	rules.Tiers = nil
	assert.ErrorIs(t, ValidateCancellationRules(rules), ErrInvalidRuleSet)
}

func TestResolveRefund_NeverFailsOnValidatedRuleSet(t *testing.T) {
	// Any rule set with a 0-day floor resolves every input to some amount.
	rules := testRules()
	assert.NoError(t, ValidateCancellationRules(rules))

	for days := -5; days <= 50; days++ {
		res := ResolveRefund(500, days, domain.InitiatorCustomer, false, rules)
		assert.NotEqual(t, "no qualifying tier", res.TierDescription)
	}
}

func TestValidateCommissionRules_Valid(t *testing.T) {
	assert.NoError(t, ValidateCommissionRules(testCommissionRules()))
	assert.NoError(t, ValidateCommissionRules(domain.DefaultCommissionRules()))
}

func TestValidateCommissionRules_SumAbove100(t *testing.T) {
	rules := testCommissionRules()
	rules.OperatorCommissionPercent = 90
	rules.AdminCommissionPercent = 20
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)
}

func TestValidateCommissionRules_SeasonMultiplierBounds(t *testing.T) {
	rules := testCommissionRules()
	rules.PeakSeasonMultiplier = 0.9
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)

	rules = testCommissionRules()
	rules.OffSeasonMultiplier = 0.05
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)

	rules = testCommissionRules()
	rules.OffSeasonMultiplier = 1.2
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)
}

func TestValidateCommissionRules_GroupTierBounds(t *testing.T) {
	rules := testCommissionRules()
	rules.GroupDiscountTiers[0].MinPeople = 0
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)

	rules = testCommissionRules()
	rules.GroupDiscountTiers[2].DiscountPercentage = 110
	assert.ErrorIs(t, ValidateCommissionRules(rules), ErrInvalidRuleSet)
}

package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceMonthlyClampsToEndOfMonth(t *testing.T) {
	testCases := []struct {
		name     string
		nextRun  time.Time
		expected time.Time
	}{
		{"jan 31 to feb 28 in a non-leap year", date(2025, time.January, 31), date(2025, time.February, 28)},
		{"jan 31 to feb 29 in a leap year", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"jan 30 to feb 28", date(2025, time.January, 30), date(2025, time.February, 28)},
		{"mar 31 to apr 30", date(2025, time.March, 31), date(2025, time.April, 30)},
		{"dec 15 rolls over the year", date(2025, time.December, 15), date(2026, time.January, 15)},
		{"dec 31 to jan 31", date(2025, time.December, 31), date(2026, time.January, 31)},
		{"plain mid-month advance", date(2025, time.June, 10), date(2025, time.July, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := &RecurringRule{Interval: IntervalMonthly, NextRun: tc.nextRun}
			rule.Advance()
			assert.Equal(t, tc.expected, rule.NextRun)
		})
	}
}

func TestAdvanceMonthlyDoesNotAnchorOriginalDay(t *testing.T) {
	// After clamping to Feb 28 the rule advances from the 28th, not the 31st.
	rule := &RecurringRule{Interval: IntervalMonthly, NextRun: date(2025, time.January, 31)}
	rule.Advance()
	rule.Advance()
	assert.Equal(t, date(2025, time.March, 28), rule.NextRun)
}

func TestAdvanceWeekly(t *testing.T) {
	rule := &RecurringRule{Interval: IntervalWeekly, NextRun: date(2025, time.December, 29)}
	rule.Advance()
	assert.Equal(t, date(2026, time.January, 5), rule.NextRun)
}

func TestIsDue(t *testing.T) {
	now := date(2025, time.June, 15)

	due := &RecurringRule{NextRun: date(2025, time.June, 15)}
	assert.True(t, due.IsDue(now))

	overdue := &RecurringRule{NextRun: date(2025, time.January, 1)}
	assert.True(t, overdue.IsDue(now))

	future := &RecurringRule{NextRun: date(2025, time.June, 16)}
	assert.False(t, future.IsDue(now))
}

func TestMaterialize(t *testing.T) {
	rule := &RecurringRule{
		ID:          7,
		Description: "rent payment",
		Amount:      decimal.NewFromInt(900),
		Category:    "housing",
		IsExpense:   true,
		Interval:    IntervalMonthly,
		NextRun:     date(2025, time.May, 1),
	}

	txn := rule.Materialize()
	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "housing", txn.Category)
	assert.Equal(t, "rent payment", txn.Description)
	assert.Equal(t, rule.NextRun, txn.Timestamp)
	assert.True(t, txn.IsExpense)
	require.NotNil(t, txn.RecurringRuleID)
	assert.Equal(t, uint(7), *txn.RecurringRuleID)
}

func TestRecurringRuleValidate(t *testing.T) {
	valid := &RecurringRule{
		Description: "gym membership",
		Amount:      decimal.NewFromInt(30),
		Interval:    IntervalWeekly,
	}
	assert.NoError(t, valid.Validate())

	badInterval := &RecurringRule{Description: "x", Amount: decimal.NewFromInt(1), Interval: "daily"}
	assert.ErrorIs(t, badInterval.Validate(), ErrInvalidInterval)

	badAmount := &RecurringRule{Description: "x", Amount: decimal.Zero, Interval: IntervalMonthly}
	assert.ErrorIs(t, badAmount.Validate(), ErrInvalidRecurringAmount)
}

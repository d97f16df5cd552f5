package models

import (
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
)

// Goal is a savings goal.
//
// SavedAmount never exceeds TargetAmount, every mutation re-checks this.
// CreatedAt is set once on creation and preserved by updates.
type Goal struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	DueDate      types.Date      `json:"dueDate"`
	CreatedAt    types.Date      `json:"createdAt"`
}

// Validate checks the user-editable fields of the goal.
func (g Goal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrTargetAmountNotPositive
	}

	if g.SavedAmount.IsNegative() {
		return ErrSavedAmountNegative
	}

	if g.SavedAmount.GreaterThan(g.TargetAmount) {
		return ErrSavedExceedsTarget
	}

	return nil
}

// Progress returns the saved amount as a percentage of the target,
// rounded to two decimal places.
func (g Goal) Progress() decimal.Decimal {
	return g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// Remaining returns the amount still missing to reach the target.
func (g Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.SavedAmount)
}

// CompareGoals orders goals for the "latest goal" selection: goals that both
// have a due date sort by due date ascending, every other pair falls back to
// creation date descending.
//
// The fallback makes the ordering non-transitive when only some goals carry
// due dates. The highlighted goal has always been selected this way, so the
// comparator is kept as is rather than silently changed.
func CompareGoals(a, b Goal) int {
	if !a.DueDate.IsZero() && !b.DueDate.IsZero() {
		return a.DueDate.Compare(b.DueDate)
	}

	return b.CreatedAt.Compare(a.CreatedAt)
}

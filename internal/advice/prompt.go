// Package advice generates savings advice from the user's financial data
// through the Gemini API.
package advice

import (
	"strings"

	"github.com/james997788/monyfun/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// topExpenseGroups is the number of expense groups included in the prompt.
const topExpenseGroups = 5

type group struct {
	description string
	total       decimal.Decimal
}

// groupByDescription sums the amounts of the given type per distinct
// description and returns the groups sorted by total descending.
// Equal totals sort by description so the prompt stays deterministic.
func groupByDescription(transactions []models.Transaction, t models.TransactionType) []group {
	totals := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}

		totals[transaction.Description] = totals[transaction.Description].Add(transaction.Amount)
	}

	groups := make([]group, 0, len(totals))
	for description, total := range totals {
		groups = append(groups, group{description: description, total: total})
	}

	slices.SortFunc(groups, func(a, b group) int {
		if c := b.total.Cmp(a.total); c != 0 {
			return c
		}
		return strings.Compare(a.description, b.description)
	})

	return groups
}

// BuildPrompt summarizes the transactions and goals into the natural
// language prompt sent to the model: overall totals, income sources,
// the top expense groups and every goal with its progress.
func BuildPrompt(transactions []models.Transaction, goals []models.Goal) string {
	var totalIncome, totalExpense decimal.Decimal
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			totalIncome = totalIncome.Add(t.Amount)
		} else {
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	var b strings.Builder
	b.WriteString("Analyze the following personal finance data and give actionable advice to help save money and reach the financial goals:\n\n")

	b.WriteString("Financial overview:\n")
	b.WriteString("- Total income: " + totalIncome.String() + "\n")
	b.WriteString("- Total expenses: " + totalExpense.String() + "\n")
	b.WriteString("- Current balance: " + totalIncome.Sub(totalExpense).String() + "\n\n")

	income := groupByDescription(transactions, models.TransactionTypeIncome)
	if len(income) > 0 {
		b.WriteString("Main income sources:\n")
		for _, g := range income {
			b.WriteString("- " + g.description + ": " + g.total.String() + "\n")
		}
		b.WriteString("\n")
	}

	expenses := groupByDescription(transactions, models.TransactionTypeExpense)
	if len(expenses) > 0 {
		if len(expenses) > topExpenseGroups {
			expenses = expenses[:topExpenseGroups]
		}

		b.WriteString("Main expense categories (top 5):\n")
		for _, g := range expenses {
			b.WriteString("- " + g.description + ": " + g.total.String() + "\n")
		}
		b.WriteString("\n")
	}

	if len(goals) > 0 {
		b.WriteString("Savings goals:\n")
		for _, g := range goals {
			b.WriteString("- Name: " + g.Name + "\n")
			b.WriteString("  - Target amount: " + g.TargetAmount.String() + "\n")
			b.WriteString("  - Saved so far: " + g.SavedAmount.String() + " (" + g.Progress().String() + "%)\n")
			b.WriteString("  - Still to save: " + g.Remaining().String() + "\n")
			if !g.DueDate.IsZero() {
				b.WriteString("  - Due date: " + g.DueDate.String() + "\n")
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Savings goals: none yet\n\n")
	}

	b.WriteString("Based on the data above, please give specific, practical recommendations to increase savings, cut unnecessary spending and reach the goals faster. If there are no goals, suggest a sensible first goal to set.")

	return b.String()
}

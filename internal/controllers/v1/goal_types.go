package v1

import (
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"New TV"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.01"`
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"0" default:"0"`
	DueDate      types.Date      `json:"dueDate" example:"2024-12-31"` // Optional
}

// model returns the store record for the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
		SavedAmount:  editable.SavedAmount,
		DueDate:      editable.DueDate,
	}
}

// GoalTopUp is the body for the top up operation.
type GoalTopUp struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.01"`
}

type GoalResponse struct {
	Data  *models.Goal `json:"data"`  // The resource
	Error *string      `json:"error"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []models.Goal `json:"data"`  // List of resources
	Error *string       `json:"error"` // The error, if any occurred
}

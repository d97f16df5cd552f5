package v1

import (
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal        `json:"amount" example:"250" minimum:"0.01"`
	Description string                 `json:"description" example:"Groceries"`
	Date        types.Date             `json:"date" example:"2024-01-02"`
}

// model returns the store record for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        editable.Type,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // The resource
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of resources
	Error *string              `json:"error"` // The error, if any occurred
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/httputil"
	"github.com/james997788/monyfun/internal/store"
)

type TransactionController struct {
	store *store.TransactionStore
}

func RegisterTransactionRoutes(r *gin.RouterGroup, s *store.TransactionStore) {
	ctrl := TransactionController{store: s}

	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.GetTransactions)
		r.POST("", ctrl.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", ctrl.GetTransaction)
		r.PATCH("/:id", ctrl.UpdateTransaction)
		r.DELETE("/:id", ctrl.DeleteTransaction)
	}
}

// GetTransactions returns all transactions in insertion order.
func (ctrl TransactionController) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, TransactionListResponse{Data: ctrl.store.All()})
}

// GetTransaction returns the transaction with the id from the URI.
func (ctrl TransactionController) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := ctrl.store.Get(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// CreateTransaction validates and appends a new transaction.
func (ctrl TransactionController) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	transaction, err := ctrl.store.Add(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// UpdateTransaction replaces all editable fields of the transaction.
func (ctrl TransactionController) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	transaction, err := ctrl.store.Update(uri.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// DeleteTransaction removes the transaction. Deleting an id that is already
// absent succeeds, the operation is idempotent.
func (ctrl TransactionController) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if err := ctrl.store.Delete(uri.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

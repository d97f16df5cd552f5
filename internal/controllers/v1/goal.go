package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/httputil"
	"github.com/james997788/monyfun/internal/store"
)

type GoalController struct {
	store *store.GoalStore
}

func RegisterGoalRoutes(r *gin.RouterGroup, s *store.GoalStore) {
	ctrl := GoalController{store: s}

	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.GetGoals)
		r.POST("", ctrl.CreateGoal)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", ctrl.GetGoal)
		r.PATCH("/:id", ctrl.UpdateGoal)
		r.DELETE("/:id", ctrl.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/topup", httputil.OptionsPost)
		r.POST("/:id/topup", ctrl.TopUpGoal)
	}
}

// GetGoals returns all goals in insertion order.
func (ctrl GoalController) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, GoalListResponse{Data: ctrl.store.All()})
}

// GetGoal returns the goal with the id from the URI.
func (ctrl GoalController) GetGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	goal, err := ctrl.store.Get(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// CreateGoal validates and appends a new goal. The store sets the creation
// date, a saved amount that is not sent defaults to zero.
func (ctrl GoalController) CreateGoal(c *gin.Context) {
	var editable GoalEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	goal, err := ctrl.store.Add(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// UpdateGoal replaces all editable fields of the goal. The creation date
// of the original record is preserved.
func (ctrl GoalController) UpdateGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	goal, err := ctrl.store.Update(uri.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// DeleteGoal removes the goal. Deleting an id that is already absent
// succeeds, the operation is idempotent.
func (ctrl GoalController) DeleteGoal(c *gin.Context) {
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

// TopUpGoal adds the amount from the body to the saved amount of the goal.
// A top up that would push the saved amount past the target is rejected
// and leaves the goal unchanged.
func (ctrl GoalController) TopUpGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var topUp GoalTopUp
	if err := httputil.BindData(c, &topUp); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	goal, err := ctrl.store.TopUp(uri.ID, topUp.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/httputil"
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/store"
	"github.com/shopspring/decimal"
)

// recentActivityLimit is the number of transactions shown on the dashboard.
const recentActivityLimit = 5

type DashboardController struct {
	transactions *store.TransactionStore
	goals        *store.GoalStore
}

func RegisterDashboardRoutes(r *gin.RouterGroup, transactions *store.TransactionStore, goals *store.GoalStore) {
	ctrl := DashboardController{transactions: transactions, goals: goals}

	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", ctrl.GetDashboard)
}

// GoalProgress is a goal together with its derived progress values.
type GoalProgress struct {
	models.Goal
	Progress  decimal.Decimal `json:"progress" example:"60"`    // Percentage saved, two decimal places
	Remaining decimal.Decimal `json:"remaining" example:"2000"` // Amount still missing
}

type Dashboard struct {
	TotalIncome    decimal.Decimal      `json:"totalIncome"`
	TotalExpense   decimal.Decimal      `json:"totalExpense"`
	Balance        decimal.Decimal      `json:"balance"`
	RecentActivity []models.Transaction `json:"recentActivity"` // Up to 5 transactions, newest first
	LatestGoal     *GoalProgress        `json:"latestGoal"`     // nil when there are no goals
}

type DashboardResponse struct {
	Data Dashboard `json:"data"`
}

// GetDashboard recomputes the aggregates from the current stores: income
// and expense totals, the balance, the most recent activity and the
// highlighted goal.
func (ctrl DashboardController) GetDashboard(c *gin.Context) {
	income, expense, balance := ctrl.transactions.Totals()

	dashboard := Dashboard{
		TotalIncome:    income,
		TotalExpense:   expense,
		Balance:        balance,
		RecentActivity: ctrl.transactions.Recent(recentActivityLimit),
	}

	if goal, ok := ctrl.goals.Latest(); ok {
		dashboard.LatestGoal = &GoalProgress{
			Goal:      goal,
			Progress:  goal.Progress(),
			Remaining: goal.Remaining(),
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: dashboard})
}

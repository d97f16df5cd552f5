package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/advice"
	"github.com/james997788/monyfun/internal/httputil"
	"github.com/james997788/monyfun/internal/store"
)

type AdviceController struct {
	service      *advice.Service
	transactions *store.TransactionStore
	goals        *store.GoalStore
}

// RegisterAdviceRoutes wires the advice endpoints. service may be nil when
// no API key is configured, requests then fail without contacting the API.
func RegisterAdviceRoutes(r *gin.RouterGroup, service *advice.Service, transactions *store.TransactionStore, goals *store.GoalStore) {
	ctrl := AdviceController{service: service, transactions: transactions, goals: goals}

	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", ctrl.GetAdvice)
	r.POST("", ctrl.GenerateAdvice)
}

type AdviceResponse struct {
	Advice *string `json:"advice"` // The generated advice text
	Error  *string `json:"error"`  // The error, if any occurred
}

// GenerateAdvice summarizes the current transactions and goals into a prompt
// and asks the model for advice. Failures are surfaced as-is, there is no
// automatic retry and the stores are never touched by this flow.
func (ctrl AdviceController) GenerateAdvice(c *gin.Context) {
	if ctrl.service == nil {
		e := advice.ErrNoAPIKey.Error()
		c.JSON(status(advice.ErrNoAPIKey), AdviceResponse{Error: &e})
		return
	}

	prompt := advice.BuildPrompt(ctrl.transactions.All(), ctrl.goals.All())

	text, err := ctrl.service.Generate(c.Request.Context(), prompt)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdviceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{Advice: &text})
}

// GetAdvice returns the most recently generated advice.
func (ctrl AdviceController) GetAdvice(c *gin.Context) {
	if ctrl.service == nil {
		e := advice.ErrNoAPIKey.Error()
		c.JSON(status(advice.ErrNoAPIKey), AdviceResponse{Error: &e})
		return
	}

	text, ok := ctrl.service.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, AdviceResponse{})
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{Advice: &text})
}

package v1_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/james997788/monyfun/internal/advice"
	v1 "github.com/james997788/monyfun/internal/controllers/v1"
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/router"
	"github.com/james997788/monyfun/internal/store"
	"github.com/james997788/monyfun/internal/types"
	"github.com/james997788/monyfun/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAdviceGenerate() {
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(1000), Description: "salary", Date: types.NewDate(2024, 1, 1)})

	var prompt string
	suite.generate = func(_ context.Context, p string) (string, error) {
		prompt = p
		return "save more, spend less", nil
	}

	r := test.Request(suite.T(), suite.engine, http.MethodPost, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Advice)
	suite.Assert().Equal("save more, spend less", *response.Advice)

	// The prompt is built from the stored data
	suite.Assert().Contains(prompt, "salary")
	suite.Assert().Contains(prompt, "Total income: 1000")
}

func (suite *TestSuiteStandard) TestAdviceGetBeforeGenerate() {
	r := test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAdviceGetReturnsLatest() {
	r := test.Request(suite.T(), suite.engine, http.MethodPost, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Advice)
	suite.Assert().Equal("stub advice", *response.Advice)
}

func (suite *TestSuiteStandard) TestAdviceUpstreamError() {
	suite.generate = func(_ context.Context, _ string) (string, error) {
		return "", fmt.Errorf("%w: connection reset", advice.ErrUpstream)
	}

	r := test.Request(suite.T(), suite.engine, http.MethodPost, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)

	// A failed generation leaves nothing to return
	r = test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAdviceWithoutAPIKey() {
	clock := func() time.Time { return suite.now }

	transactions, err := store.NewTransactionStore(suite.db, clock)
	suite.Require().Nil(err)
	goals, err := store.NewGoalStore(suite.db, clock)
	suite.Require().Nil(err)
	attendance, err := store.NewAttendanceStore(suite.db, clock)
	suite.Require().Nil(err)

	// No advice service configured
	engine, err := router.Router(router.Dependencies{
		Transactions: transactions,
		Goals:        goals,
		Attendance:   attendance,
	})
	suite.Require().Nil(err)

	r := test.Request(suite.T(), engine, http.MethodPost, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	r = test.Request(suite.T(), engine, http.MethodGet, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestAdviceOptions() {
	r := test.Request(suite.T(), suite.engine, http.MethodOptions, "/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

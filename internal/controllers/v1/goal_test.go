package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/james997788/monyfun/internal/controllers/v1"
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/types"
	"github.com/james997788/monyfun/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestGoal creates a goal via the v1 API.
func (suite *TestSuiteStandard) createTestGoal(editable v1.GoalEditable) models.Goal {
	r := test.Request(suite.T(), suite.engine, http.MethodPost, "/v1/goals", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := suite.createTestGoal(v1.GoalEditable{
		Name:         "New TV",
		TargetAmount: decimal.NewFromInt(5000),
	})

	suite.Assert().Equal(suite.now.UnixMilli(), goal.ID)
	suite.Assert().True(goal.CreatedAt.Equal(types.NewDate(2024, 1, 15)), "createdAt is %s", goal.CreatedAt)
	suite.Assert().True(goal.SavedAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"empty name", v1.GoalEditable{TargetAmount: decimal.NewFromInt(100)}},
		{"zero target", v1.GoalEditable{Name: "No target"}},
		{"saved above target", v1.GoalEditable{Name: "Too much", TargetAmount: decimal.NewFromInt(100), SavedAmount: decimal.NewFromInt(200)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodPost, "/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdatePreservesCreatedAt() {
	created := suite.createTestGoal(v1.GoalEditable{Name: "New TV", TargetAmount: decimal.NewFromInt(5000)})

	r := test.Request(suite.T(), suite.engine, http.MethodPatch, fmt.Sprintf("/v1/goals/%d", created.ID), v1.GoalEditable{
		Name:         "Bigger TV",
		TargetAmount: decimal.NewFromInt(8000),
		DueDate:      types.NewDate(2024, 12, 31),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Bigger TV", response.Data.Name)
	suite.Assert().True(response.Data.CreatedAt.Equal(created.CreatedAt), "createdAt changed to %s", response.Data.CreatedAt)
}

func (suite *TestSuiteStandard) TestGoalsUpdateNotFound() {
	r := test.Request(suite.T(), suite.engine, http.MethodPatch, "/v1/goals/42", v1.GoalEditable{Name: "Nothing", TargetAmount: decimal.NewFromInt(1)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsTopUp() {
	created := suite.createTestGoal(v1.GoalEditable{Name: "New TV", TargetAmount: decimal.NewFromInt(5000)})

	r := test.Request(suite.T(), suite.engine, http.MethodPost, fmt.Sprintf("/v1/goals/%d/topup", created.ID), v1.GoalTopUp{Amount: decimal.NewFromInt(3000)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.SavedAmount.Equal(decimal.NewFromInt(3000)), "saved is %s", response.Data.SavedAmount)
}

func (suite *TestSuiteStandard) TestGoalsTopUpExceedsTarget() {
	created := suite.createTestGoal(v1.GoalEditable{Name: "New TV", TargetAmount: decimal.NewFromInt(5000), SavedAmount: decimal.NewFromInt(3000)})

	r := test.Request(suite.T(), suite.engine, http.MethodPost, fmt.Sprintf("/v1/goals/%d/topup", created.ID), v1.GoalTopUp{Amount: decimal.NewFromInt(3000)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The saved amount is unchanged
	var response v1.GoalResponse
	r = test.Request(suite.T(), suite.engine, http.MethodGet, fmt.Sprintf("/v1/goals/%d", created.ID), "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.SavedAmount.Equal(decimal.NewFromInt(3000)), "saved is %s", response.Data.SavedAmount)
}

func (suite *TestSuiteStandard) TestGoalsTopUpInvalidAmount() {
	created := suite.createTestGoal(v1.GoalEditable{Name: "New TV", TargetAmount: decimal.NewFromInt(5000)})

	r := test.Request(suite.T(), suite.engine, http.MethodPost, fmt.Sprintf("/v1/goals/%d/topup", created.ID), v1.GoalTopUp{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	created := suite.createTestGoal(v1.GoalEditable{Name: "New TV", TargetAmount: decimal.NewFromInt(5000)})

	r := test.Request(suite.T(), suite.engine, http.MethodDelete, fmt.Sprintf("/v1/goals/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.engine, http.MethodDelete, fmt.Sprintf("/v1/goals/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	r := test.Request(suite.T(), suite.engine, http.MethodOptions, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.engine, http.MethodOptions, "/v1/goals/1/topup", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

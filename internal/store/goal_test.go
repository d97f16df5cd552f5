package store_test

import (
	"time"

	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/store"
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) goalStore() *store.GoalStore {
	s, err := store.NewGoalStore(suite.db, suite.clock)
	suite.Require().Nil(err)

	return s
}

func testGoal() models.Goal {
	return models.Goal{
		Name:         "New TV",
		TargetAmount: decimal.NewFromInt(5000),
	}
}

func (suite *TestSuiteStandard) TestGoalAdd() {
	s := suite.goalStore()

	goal, err := s.Add(testGoal())
	suite.Require().Nil(err)

	suite.Assert().Equal(suite.now.UnixMilli(), goal.ID)
	suite.Assert().True(goal.CreatedAt.Equal(types.NewDate(2024, 1, 15)), "createdAt is %s", goal.CreatedAt)
	suite.Assert().True(goal.SavedAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalAddInvalid() {
	s := suite.goalStore()

	tests := []struct {
		name     string
		change   func(g *models.Goal)
		expected error
	}{
		{"empty name", func(g *models.Goal) { g.Name = "" }, models.ErrGoalNameEmpty},
		{"zero target", func(g *models.Goal) { g.TargetAmount = decimal.Zero }, models.ErrTargetAmountNotPositive},
		{"negative saved", func(g *models.Goal) { g.SavedAmount = decimal.NewFromInt(-1) }, models.ErrSavedAmountNegative},
		{"saved above target", func(g *models.Goal) { g.SavedAmount = decimal.NewFromInt(6000) }, models.ErrSavedExceedsTarget},
	}

	for _, tt := range tests {
		goal := testGoal()
		tt.change(&goal)

		_, err := s.Add(goal)
		suite.Assert().ErrorIs(err, tt.expected, tt.name)
	}

	suite.Assert().Empty(s.All())
}

func (suite *TestSuiteStandard) TestGoalUpdatePreservesCreatedAt() {
	s := suite.goalStore()

	created, err := s.Add(testGoal())
	suite.Require().Nil(err)

	// A day passes before the update
	suite.now = suite.now.Add(24 * time.Hour)

	update := testGoal()
	update.Name = "Bigger TV"
	update.TargetAmount = decimal.NewFromInt(8000)

	updated, err := s.Update(created.ID, update)
	suite.Require().Nil(err)

	suite.Assert().Equal("Bigger TV", updated.Name)
	suite.Assert().True(updated.CreatedAt.Equal(created.CreatedAt), "createdAt changed to %s", updated.CreatedAt)
}

func (suite *TestSuiteStandard) TestGoalUpdateNeverExceedsTarget() {
	s := suite.goalStore()

	created, err := s.Add(testGoal())
	suite.Require().Nil(err)

	update := testGoal()
	update.TargetAmount = decimal.NewFromInt(1000)
	update.SavedAmount = decimal.NewFromInt(2000)

	_, err = s.Update(created.ID, update)
	suite.Assert().ErrorIs(err, models.ErrSavedExceedsTarget)

	unchanged, err := s.Get(created.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(created, unchanged)
}

func (suite *TestSuiteStandard) TestGoalUpdateNotFound() {
	s := suite.goalStore()

	_, err := s.Update(42, testGoal())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalDelete() {
	s := suite.goalStore()

	created, err := s.Add(testGoal())
	suite.Require().Nil(err)

	suite.Require().Nil(s.Delete(created.ID))
	suite.Assert().Empty(s.All())
	suite.Assert().Nil(s.Delete(created.ID))
}

func (suite *TestSuiteStandard) TestGoalTopUp() {
	s := suite.goalStore()

	created, err := s.Add(testGoal())
	suite.Require().Nil(err)

	// 3000 of 5000 saved: 60%, 2000 remaining
	goal, err := s.TopUp(created.ID, decimal.NewFromInt(3000))
	suite.Require().Nil(err)
	suite.Assert().True(goal.SavedAmount.Equal(decimal.NewFromInt(3000)), "saved is %s", goal.SavedAmount)
	suite.Assert().True(goal.Progress().Equal(decimal.NewFromInt(60)), "progress is %s", goal.Progress())
	suite.Assert().True(goal.Remaining().Equal(decimal.NewFromInt(2000)), "remaining is %s", goal.Remaining())

	// Another 3000 would exceed the target and must not change anything
	_, err = s.TopUp(created.ID, decimal.NewFromInt(3000))
	suite.Assert().ErrorIs(err, models.ErrTopUpExceedsTarget)

	unchanged, err := s.Get(created.ID)
	suite.Require().Nil(err)
	suite.Assert().True(unchanged.SavedAmount.Equal(decimal.NewFromInt(3000)), "saved is %s", unchanged.SavedAmount)
}

func (suite *TestSuiteStandard) TestGoalTopUpInvalidAmount() {
	s := suite.goalStore()

	created, err := s.Add(testGoal())
	suite.Require().Nil(err)

	_, err = s.TopUp(created.ID, decimal.Zero)
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	_, err = s.TopUp(created.ID, decimal.NewFromInt(-10))
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestGoalTopUpNotFound() {
	s := suite.goalStore()

	_, err := s.TopUp(42, decimal.NewFromInt(10))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalSnapshotReload() {
	s := suite.goalStore()

	goal := testGoal()
	goal.SavedAmount = decimal.NewFromInt(500)
	goal.DueDate = types.NewDate(2024, 12, 31)

	created, err := s.Add(goal)
	suite.Require().Nil(err)

	reloaded := suite.goalStore()

	records := reloaded.All()
	suite.Require().Len(records, 1)
	suite.Assert().Equal(created.ID, records[0].ID)
	suite.Assert().Equal(created.Name, records[0].Name)
	suite.Assert().True(records[0].SavedAmount.Equal(created.SavedAmount))
	suite.Assert().True(records[0].TargetAmount.Equal(created.TargetAmount))
	suite.Assert().True(records[0].DueDate.Equal(created.DueDate))
	suite.Assert().True(records[0].CreatedAt.Equal(created.CreatedAt))
}

func (suite *TestSuiteStandard) TestGoalLatest() {
	s := suite.goalStore()

	_, ok := s.Latest()
	suite.Assert().False(ok)

	_, err := s.Add(testGoal())
	suite.Require().Nil(err)

	withDueDate := testGoal()
	withDueDate.Name = "Vacation"
	withDueDate.DueDate = types.NewDate(2024, 6, 1)

	// Created a day later. Only one of the pair has a due date, so the
	// comparator falls back to creation date descending
	suite.now = suite.now.Add(24 * time.Hour)
	_, err = s.Add(withDueDate)
	suite.Require().Nil(err)

	latest, ok := s.Latest()
	suite.Require().True(ok)
	suite.Assert().Equal("Vacation", latest.Name)
}

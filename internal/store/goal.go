package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// GoalStore owns the savings goal records.
type GoalStore struct {
	mu        sync.Mutex
	records   []models.Goal
	lastID    int64
	persister Persister
	now       func() time.Time
}

// NewGoalStore loads the goal snapshot and returns the store.
func NewGoalStore(p Persister, now func() time.Time) (*GoalStore, error) {
	s := &GoalStore{
		persister: p,
		now:       now,
	}

	data, err := p.Load(KeyGoals)
	if err != nil {
		return nil, fmt.Errorf("loading goal snapshot: %w", err)
	}

	if data != nil {
		err = json.Unmarshal(data, &s.records)
		if err != nil {
			return nil, fmt.Errorf("decoding goal snapshot: %w", err)
		}
	}

	for _, g := range s.records {
		if g.ID > s.lastID {
			s.lastID = g.ID
		}
	}

	return s, nil
}

// persist writes the full record list. Callers must hold the mutex.
func (s *GoalStore) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return persistError(err)
	}

	err = s.persister.Save(KeyGoals, data)
	if err != nil {
		return persistError(err)
	}

	return nil
}

// Add validates and appends a new goal. The store assigns the id and sets
// CreatedAt to the current date.
func (s *GoalStore) Add(g models.Goal) (models.Goal, error) {
	if err := g.Validate(); err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	g.ID = nextID(now, s.lastID)
	g.CreatedAt = types.DateOf(now)

	s.records = append(s.records, g)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return models.Goal{}, err
	}

	s.lastID = g.ID
	return g, nil
}

// Update replaces the editable fields of the goal matching id.
// CreatedAt is preserved from the original record.
func (s *GoalStore) Update(id int64, g models.Goal) (models.Goal, error) {
	if err := g.Validate(); err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Goal) bool { return r.ID == id })
	if i < 0 {
		return models.Goal{}, fmt.Errorf("%w goal matching your query", models.ErrResourceNotFound)
	}

	previous := s.records[i]
	g.ID = id
	g.CreatedAt = previous.CreatedAt
	s.records[i] = g

	if err := s.persist(); err != nil {
		s.records[i] = previous
		return models.Goal{}, err
	}

	return g, nil
}

// Delete removes the goal matching id. Deleting an absent id is not an error.
func (s *GoalStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Goal) bool { return r.ID == id })
	if i < 0 {
		return nil
	}

	previous := s.records
	s.records = append(slices.Clone(s.records[:i]), s.records[i+1:]...)

	if err := s.persist(); err != nil {
		s.records = previous
		return err
	}

	return nil
}

// TopUp adds amount to the saved amount of the goal matching id.
// The saved amount never exceeds the target: a top up that would do so is
// rejected and the goal stays unchanged.
func (s *GoalStore) TopUp(id int64, amount decimal.Decimal) (models.Goal, error) {
	if !amount.IsPositive() {
		return models.Goal{}, models.ErrAmountNotPositive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Goal) bool { return r.ID == id })
	if i < 0 {
		return models.Goal{}, fmt.Errorf("%w goal matching your query", models.ErrResourceNotFound)
	}

	previous := s.records[i]

	saved := previous.SavedAmount.Add(amount)
	if saved.GreaterThan(previous.TargetAmount) {
		return models.Goal{}, models.ErrTopUpExceedsTarget
	}

	s.records[i].SavedAmount = saved

	if err := s.persist(); err != nil {
		s.records[i] = previous
		return models.Goal{}, err
	}

	return s.records[i], nil
}

// Get returns the goal matching id.
func (s *GoalStore) Get(id int64) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Goal) bool { return r.ID == id })
	if i < 0 {
		return models.Goal{}, fmt.Errorf("%w goal matching your query", models.ErrResourceNotFound)
	}

	return s.records[i], nil
}

// All returns a copy of all goals in insertion order.
func (s *GoalStore) All() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// Latest returns the goal the dashboard highlights: the head of the list
// ordered by models.CompareGoals. The second return value is false when
// there are no goals.
func (s *GoalStore) Latest() (models.Goal, bool) {
	sorted := s.All()
	if len(sorted) == 0 {
		return models.Goal{}, false
	}

	slices.SortStableFunc(sorted, models.CompareGoals)
	return sorted[0], true
}

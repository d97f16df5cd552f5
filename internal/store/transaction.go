package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/james997788/monyfun/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionStore owns the transaction records.
type TransactionStore struct {
	mu        sync.Mutex
	records   []models.Transaction
	lastID    int64
	persister Persister
	now       func() time.Time
}

// NewTransactionStore loads the transaction snapshot and returns the store.
func NewTransactionStore(p Persister, now func() time.Time) (*TransactionStore, error) {
	s := &TransactionStore{
		persister: p,
		now:       now,
	}

	data, err := p.Load(KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("loading transaction snapshot: %w", err)
	}

	if data != nil {
		err = json.Unmarshal(data, &s.records)
		if err != nil {
			return nil, fmt.Errorf("decoding transaction snapshot: %w", err)
		}
	}

	for _, t := range s.records {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	return s, nil
}

// persist writes the full record list. Callers must hold the mutex.
func (s *TransactionStore) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return persistError(err)
	}

	err = s.persister.Save(KeyTransactions, data)
	if err != nil {
		return persistError(err)
	}

	return nil
}

// Add validates and appends a new transaction. The id is assigned by the
// store, an id on the passed record is ignored.
func (s *TransactionStore) Add(t models.Transaction) (models.Transaction, error) {
	if err := t.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = nextID(s.now(), s.lastID)

	s.records = append(s.records, t)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return models.Transaction{}, err
	}

	s.lastID = t.ID
	return t, nil
}

// Update replaces the record matching id in place, preserving its position.
func (s *TransactionStore) Update(id int64, t models.Transaction) (models.Transaction, error) {
	if err := t.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Transaction) bool { return r.ID == id })
	if i < 0 {
		return models.Transaction{}, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	previous := s.records[i]
	t.ID = id
	s.records[i] = t

	if err := s.persist(); err != nil {
		s.records[i] = previous
		return models.Transaction{}, err
	}

	return t, nil
}

// Delete removes the record matching id. It is idempotent: deleting an
// id that is already absent is not an error.
func (s *TransactionStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Transaction) bool { return r.ID == id })
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

// Get returns the record matching id.
func (s *TransactionStore) Get(id int64) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r models.Transaction) bool { return r.ID == id })
	if i < 0 {
		return models.Transaction{}, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	return s.records[i], nil
}

// All returns a copy of all records in insertion order.
func (s *TransactionStore) All() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// Totals returns the income and expense sums and their balance.
func (s *TransactionStore) Totals() (income, expense, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.records {
		if t.Type == models.TransactionTypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return income, expense, income.Sub(expense)
}

// Recent returns up to n records, sorted by date descending.
func (s *TransactionStore) Recent(n int) []models.Transaction {
	sorted := s.All()
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

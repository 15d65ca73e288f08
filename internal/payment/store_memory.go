package payment

import (
	"context"
	"fmt"
	"sync"

	"finflow/pkg/platform/sentinel"
)

// TransactionStore records processed transactions. Swap with concrete storage
// without touching the service.
type TransactionStore interface {
	Record(ctx context.Context, tx Transaction) error
	FindByID(ctx context.Context, id string) (Transaction, error)
}

// InMemoryTransactionStore keeps transaction records in memory. Durable
// persistence is out of scope for this service; the interface boundary is
// where a real store would slot in.
type InMemoryTransactionStore struct {
	mu           sync.RWMutex
	transactions map[string]Transaction
}

// NewStore constructs an empty in-memory transaction store.
func NewStore() *InMemoryTransactionStore {
	return &InMemoryTransactionStore{
		transactions: make(map[string]Transaction),
	}
}

func (s *InMemoryTransactionStore) Record(_ context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = tx
	return nil
}

func (s *InMemoryTransactionStore) FindByID(_ context.Context, id string) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if tx, ok := s.transactions[id]; ok {
		return tx, nil
	}
	return Transaction{}, fmt.Errorf("transaction not found: %w", sentinel.ErrNotFound)
}

// Len reports the number of recorded transactions. Used by tests to assert
// nothing was recorded for rejected requests.
func (s *InMemoryTransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

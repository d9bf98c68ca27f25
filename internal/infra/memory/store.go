// Package memory is a process-local implementation of every repository,
// used by DB_DRIVER=memory and by the HTTP tests. Transactions are
// serialized behind one mutex and roll back by restoring a snapshot.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/garage-manager/internal/domain/txn"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

type state struct {
	garages   map[string]models.Garage
	users     map[string]models.User
	customers map[string]models.Customer
	parts     map[string]models.SparePart
	jobCards  map[string]models.JobCard
	invoices  map[string]models.Invoice
	auditLogs []models.AuditLog
}

func newState() *state {
	return &state{
		garages:   map[string]models.Garage{},
		users:     map[string]models.User{},
		customers: map[string]models.Customer{},
		parts:     map[string]models.SparePart{},
		jobCards:  map[string]models.JobCard{},
		invoices:  map[string]models.Invoice{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.garages {
		c.garages[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.parts {
		c.parts[k] = v
	}
	for k, v := range s.jobCards {
		c.jobCards[k] = copyJobCard(v)
	}
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	c.auditLogs = append([]models.AuditLog(nil), s.auditLogs...)
	return c
}

type txKey struct{}

type Store struct {
	mu   sync.Mutex
	st   *state
	last time.Time
}

func New() *Store {
	return &Store{st: newState()}
}

// lock takes the store mutex unless ctx already runs inside one of this
// store's transactions, which hold it for their whole duration.
func (s *Store) lock(ctx context.Context) func() {
	if owner, ok := ctx.Value(txKey{}).(*Store); ok && owner == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// now is strictly increasing so newest-first ordering is stable.
// Callers hold the mutex.
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, ok := ctx.Value(txKey{}).(*Store); ok && owner == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func copyJobCard(jc models.JobCard) models.JobCard {
	if jc.SpareParts != nil {
		jc.SpareParts = append([]models.JobCardPart(nil), jc.SpareParts...)
	}
	return jc
}

var _ txn.Manager = (*Store)(nil)

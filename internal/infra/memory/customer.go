package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) FindOrCreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	defer s.lock(ctx)()

	for _, existing := range s.st.customers {
		if existing.GarageID == c.GarageID &&
			existing.Phone == c.Phone &&
			existing.BikeNumber == c.BikeNumber {
			return &existing, nil
		}
	}

	now := s.now()
	created := *c
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	created.CreatedAt, created.UpdatedAt = now, now
	s.st.customers[created.ID] = created
	return &created, nil
}

func (s *Store) ListCustomers(ctx context.Context, garageID, query string) ([]models.Customer, error) {
	defer s.lock(ctx)()

	query = strings.ToLower(strings.TrimSpace(query))

	out := []models.Customer{}
	for _, c := range s.st.customers {
		if c.GarageID != garageID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Phone), query) &&
			!strings.Contains(strings.ToLower(c.BikeNumber), query) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetCustomer(ctx context.Context, garageID, id string) (*models.Customer, error) {
	defer s.lock(ctx)()

	c, ok := s.st.customers[id]
	if !ok || c.GarageID != garageID {
		return nil, httperr.ErrNotFound("customer_not_found")
	}
	return &c, nil
}

func (s *Store) RecordCompletedJob(
	ctx context.Context,
	garageID, id string,
	amount decimal.Decimal,
	visit time.Time,
) (*models.Customer, error) {
	defer s.lock(ctx)()

	c, ok := s.st.customers[id]
	if !ok || c.GarageID != garageID {
		return nil, httperr.ErrNotFound("customer_not_found")
	}

	c.TotalJobs++
	c.TotalSpent = c.TotalSpent.Add(amount)
	c.LastVisit = &visit
	c.UpdatedAt = s.now()
	s.st.customers[id] = c
	return &c, nil
}

func (s *Store) ListCustomerInvoices(ctx context.Context, garageID, customerID string) ([]models.Invoice, error) {
	defer s.lock(ctx)()

	return s.invoicesWhere(func(inv models.Invoice) bool {
		return inv.GarageID == garageID && inv.CustomerID == customerID
	}), nil
}

var _ customer.Repository = (*Store)(nil)

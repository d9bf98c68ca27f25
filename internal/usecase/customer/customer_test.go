package customer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/infra/memory"
)

func TestFindOrCreate_NormalizesKey(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	uc := NewFindOrCreate(store)

	a, err := uc.Execute(ctx, FindOrCreateInput{GarageID: "g-1", Name: "Asha", Phone: "98765 43210", BikeNumber: "ka-01 ab 1234"})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", a.Phone)
	assert.Equal(t, "KA01AB1234", a.BikeNumber)

	b, err := uc.Execute(ctx, FindOrCreateInput{GarageID: "g-1", Name: "Asha K", Phone: "9876543210", BikeNumber: "KA01AB1234"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "Asha", b.Name)

	other, err := uc.Execute(ctx, FindOrCreateInput{GarageID: "g-2", Name: "Asha", Phone: "9876543210", BikeNumber: "KA01AB1234"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, other.ID)
}

func TestFindOrCreate_ConcurrentSameKey(t *testing.T) {
	store := memory.New()
	uc := NewFindOrCreate(store)

	const n = 16
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := uc.Execute(context.Background(), FindOrCreateInput{
				GarageID: "g-1", Name: "Asha", Phone: "9876543210", BikeNumber: "KA01AB1234",
			})
			if assert.NoError(t, err) {
				ids[i] = c.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestFindOrCreate_RequiresFields(t *testing.T) {
	_, err := NewFindOrCreate(memory.New()).Execute(context.Background(), FindOrCreateInput{GarageID: "g-1", Name: "Asha"})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestListAndGet_TenantScoped(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	c, err := NewFindOrCreate(store).Execute(ctx, FindOrCreateInput{GarageID: "g-1", Name: "Asha", Phone: "1", BikeNumber: "B1"})
	require.NoError(t, err)
	_, err = NewFindOrCreate(store).Execute(ctx, FindOrCreateInput{GarageID: "g-1", Name: "Vikram", Phone: "2", BikeNumber: "B2"})
	require.NoError(t, err)

	all, err := NewListCustomers(store).Execute(ctx, "g-1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Vikram", all[0].Name)

	found, err := NewListCustomers(store).Execute(ctx, "g-1", "ash")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = NewGetCustomer(store).Execute(ctx, "g-2", c.ID)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	_, err = NewListInvoices(store).Execute(ctx, "g-2", c.ID)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	invoices, err := NewListInvoices(store).Execute(ctx, "g-1", c.ID)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

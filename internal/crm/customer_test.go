package crm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkovalev/graphql_crm/internal/filters"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

func TestCreateCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("+15551234567"),
	})
	require.NoError(t, err)
	require.NotZero(t, customer.ID)
	require.Equal(t, "Alice", customer.Name)
	require.NotNil(t, customer.Phone)
	require.Equal(t, "+15551234567", *customer.Phone)
	require.False(t, customer.CreatedAt.IsZero())
	require.Equal(t, int64(1), customerCount(t, svc))
}

func TestCreateCustomerEmptyPhoneStoredAsNull(t *testing.T) {
	svc := newTestService(t)

	customer, err := svc.CreateCustomer(context.Background(), CustomerInput{
		Name:  "Bob",
		Email: "bob@example.com",
		Phone: strPtr(""),
	})
	require.NoError(t, err)
	require.Nil(t, customer.Phone)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedCustomer(t, svc, "Alice", "alice@example.com", nil)

	customer, err := svc.CreateCustomer(ctx, CustomerInput{Name: "Other", Email: "alice@example.com"})
	require.Error(t, err)
	require.Nil(t, customer)
	require.True(t, validation.IsValidation(err))
	require.EqualError(t, err, "Email already exists")
	require.Equal(t, int64(1), customerCount(t, svc))
}

func TestCreateCustomerPhoneFormats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, CustomerInput{
		Name:  "Bad",
		Email: "bad@example.com",
		Phone: strPtr("555-1234"),
	})
	require.Error(t, err)
	require.True(t, validation.IsValidation(err))
	require.EqualError(t, err, "Invalid phone number format")
	require.Equal(t, int64(0), customerCount(t, svc))

	_, err = svc.CreateCustomer(ctx, CustomerInput{
		Name:  "Intl",
		Email: "intl@example.com",
		Phone: strPtr("+15551234567"),
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, CustomerInput{
		Name:  "Dashed",
		Email: "dashed@example.com",
		Phone: strPtr("555-123-4567"),
	})
	require.NoError(t, err)

	require.Equal(t, int64(2), customerCount(t, svc))
}

func TestBulkCreateCustomersPartialFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res := svc.BulkCreateCustomers(ctx, []CustomerInput{
		{Name: "First", Email: "first@example.com"},
		{Name: "Dup", Email: "first@example.com"},
		{Name: "Third", Email: "third@example.com"},
	})

	require.Equal(t, 2, res.SuccessCount)
	require.Equal(t, 1, res.ErrorCount)
	require.Len(t, res.Customers, 2)
	require.Len(t, res.Errors, 1)
	require.Contains(t, res.Errors[0], "Customer 2")
	require.Contains(t, res.Errors[0], "first@example.com")
	require.Contains(t, res.Errors[0], "Email already exists")

	// Failed item must not roll back the committed ones.
	require.Equal(t, int64(2), customerCount(t, svc))
}

func TestBulkCreateCustomersAllValid(t *testing.T) {
	svc := newTestService(t)

	res := svc.BulkCreateCustomers(context.Background(), []CustomerInput{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com", Phone: strPtr("555-123-4567")},
	})
	require.Equal(t, 2, res.SuccessCount)
	require.Zero(t, res.ErrorCount)
	require.Empty(t, res.Errors)
}

func TestCustomerLookupNotFoundIsNil(t *testing.T) {
	svc := newTestService(t)

	customer, err := svc.Customer(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, customer)
}

func TestCustomersFilterPhonePattern(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedCustomer(t, svc, "Intl", "intl@example.com", strPtr("+15551234567"))
	seedCustomer(t, svc, "Dashed", "dashed@example.com", strPtr("555-123-4567"))
	seedCustomer(t, svc, "NoPhone", "nophone@example.com", nil)

	items, total, err := svc.Customers(ctx, &filters.CustomerFilter{PhonePattern: strPtr("+1")}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	require.Equal(t, "Intl", items[0].Name)
}

func TestCustomersFilterCreatedAtRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedCustomer(t, svc, "Alice", "alice@example.com", nil)

	future := time.Now().Add(time.Hour)
	items, total, err := svc.Customers(ctx, &filters.CustomerFilter{CreatedAtGte: &future}, 1, 10)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, items)

	past := time.Now().Add(-time.Hour)
	items, total, err = svc.Customers(ctx, &filters.CustomerFilter{CreatedAtGte: &past, CreatedAtLte: &future}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, items, 1)
}

func TestCustomersListIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedCustomer(t, svc, fmt.Sprintf("Customer %d", i), fmt.Sprintf("c%d@example.com", i), nil)
	}

	f := &filters.CustomerFilter{EmailIcontains: strPtr("example.com")}
	first, firstTotal, err := svc.Customers(ctx, f, 1, 3)
	require.NoError(t, err)
	second, secondTotal, err := svc.Customers(ctx, f, 1, 3)
	require.NoError(t, err)

	require.Equal(t, firstTotal, secondTotal)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
	}
}

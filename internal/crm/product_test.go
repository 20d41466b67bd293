package crm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkovalev/graphql_crm/internal/filters"
	"github.com/mkovalev/graphql_crm/internal/models"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:  "Widget",
		Price: dec(t, "9.99"),
		Stock: 0,
	})
	require.NoError(t, err)
	require.NotZero(t, product.ID)
	require.True(t, product.Price.Equal(dec(t, "9.99")))
	require.Zero(t, product.Stock)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, price := range []string{"0", "-5"} {
		product, err := svc.CreateProduct(ctx, ProductInput{Name: "Bad", Price: dec(t, price)})
		require.Error(t, err, "price %s", price)
		require.Nil(t, product)
		require.True(t, validation.IsValidation(err))
		require.EqualError(t, err, "Price must be positive")
	}

	var count int64
	require.NoError(t, svc.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateProductRejectsNegativeStock(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:  "Bad",
		Price: dec(t, "1.00"),
		Stock: -1,
	})
	require.Error(t, err)
	require.Nil(t, product)
	require.True(t, validation.IsValidation(err))
	require.EqualError(t, err, "Stock cannot be negative")
}

func TestProductLookupNotFoundIsNil(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Product(context.Background(), 321)
	require.NoError(t, err)
	require.Nil(t, product)
}

func TestProductsFilterLowStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stocks := []int32{0, 5, 9, 10, 15}
	for i, stock := range stocks {
		seedProduct(t, svc, string(rune('A'+i)), "1.00", stock)
	}

	items, total, err := svc.Products(ctx, &filters.ProductFilter{LowStock: boolPtr(true)}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	for _, p := range items {
		require.Less(t, p.Stock, int32(10))
	}

	// false is a no-op, not an inverted filter
	items, total, err = svc.Products(ctx, &filters.ProductFilter{LowStock: boolPtr(false)}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, items, 5)
}

func TestProductsFilterPriceRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedProduct(t, svc, "Cheap", "2.50", 1)
	seedProduct(t, svc, "Mid", "10.00", 1)
	seedProduct(t, svc, "Expensive", "99.95", 1)

	items, total, err := svc.Products(ctx, &filters.ProductFilter{
		PriceGte: decPtr(t, "2.50"),
		PriceLte: decPtr(t, "10.00"),
	}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	require.Equal(t, "Cheap", items[0].Name)
	require.Equal(t, "Mid", items[1].Name)
}

func TestProductsFilterStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedProduct(t, svc, "A", "1.00", 3)
	seedProduct(t, svc, "B", "1.00", 7)
	seedProduct(t, svc, "C", "1.00", 7)

	items, total, err := svc.Products(ctx, &filters.ProductFilter{Stock: int32Ptr(7)}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	items, total, err = svc.Products(ctx, &filters.ProductFilter{StockGte: int32Ptr(4), StockLte: int32Ptr(7)}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)
}

func TestProductsPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seedProduct(t, svc, string(rune('A'+i)), "1.00", 1)
	}

	items, total, err := svc.Products(ctx, nil, 1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, items, 3)

	items, _, err = svc.Products(ctx, nil, 3, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

package crm

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/filters"
	"github.com/mkovalev/graphql_crm/internal/models"
	"github.com/mkovalev/graphql_crm/internal/util"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

type OrderInput struct {
	CustomerID uint
	ProductIDs []uint
	OrderDate  *time.Time
}

// CreateOrder creates the order, its product associations and the derived
// total inside one transaction. TotalAmount is the sum of the referenced
// products' prices at creation time and is never recomputed.
func (s *Service) CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, input.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validation.Errorf("Customer not found")
			}
			return err
		}

		if len(input.ProductIDs) == 0 {
			return validation.Errorf("At least one product must be selected")
		}

		var products []models.Product
		if err := tx.Where("id IN ?", input.ProductIDs).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(input.ProductIDs) {
			return validation.Errorf("One or more products not found")
		}

		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.Price)
		}

		orderDate := time.Now()
		if input.OrderDate != nil {
			orderDate = *input.OrderDate
		}

		order = models.Order{
			CustomerID:  customer.ID,
			Products:    products,
			OrderDate:   orderDate,
			TotalAmount: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		order.Customer = customer
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order_events", strconv.FormatUint(uint64(order.ID), 10), map[string]any{
		"type":        "order_created",
		"orderID":     order.ID,
		"customerID":  order.CustomerID,
		"totalAmount": order.TotalAmount.String(),
	})
	return &order, nil
}

func (s *Service) Order(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *Service) Orders(ctx context.Context, f *filters.OrderFilter, page, size int) ([]models.Order, int64, error) {
	offset, limit := util.Calculate(page, size)
	base := func() *gorm.DB {
		return filters.Apply(s.DB.WithContext(ctx).Model(&models.Order{}), f.Conditions())
	}

	var total int64
	countQ := base()
	if f.Joined() {
		countQ = countQ.Distinct("orders.id")
	}
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	findQ := base()
	if f.Joined() {
		findQ = findQ.Distinct("orders.*")
	}
	var items []models.Order
	err := findQ.
		Preload("Customer").
		Preload("Products").
		Order("orders.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

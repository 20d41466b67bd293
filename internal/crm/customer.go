package crm

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/filters"
	"github.com/mkovalev/graphql_crm/internal/models"
	"github.com/mkovalev/graphql_crm/internal/util"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// BulkResult reports the outcome of a bulk customer create. Partial failure
// is accepted: Customers holds the created subset, Errors one message per
// rejected item.
type BulkResult struct {
	Customers    []models.Customer
	Errors       []string
	SuccessCount int
	ErrorCount   int
}

func (s *Service) CreateCustomer(ctx context.Context, input CustomerInput) (*models.Customer, error) {
	db := s.DB.WithContext(ctx)
	customer, err := createCustomer(db, input)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "customer_events", strconv.FormatUint(uint64(customer.ID), 10), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"email":      customer.Email,
	})
	return customer, nil
}

// BulkCreateCustomers validates and inserts each item in its own transaction,
// so an item that fails never rolls back earlier successes and the returned
// subset is durable.
func (s *Service) BulkCreateCustomers(ctx context.Context, inputs []CustomerInput) BulkResult {
	var res BulkResult
	for i, input := range inputs {
		var customer *models.Customer
		err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var txErr error
			customer, txErr = createCustomer(tx, input)
			return txErr
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Customer %d (%s): %v", i+1, input.Email, err))
			if !validation.IsValidation(err) {
				s.logger().Error("bulk create customer", "index", i+1, "error", err)
			}
			continue
		}
		res.Customers = append(res.Customers, *customer)
		s.publish(ctx, "customer_events", strconv.FormatUint(uint64(customer.ID), 10), map[string]any{
			"type":       "customer_created",
			"customerID": customer.ID,
			"email":      customer.Email,
		})
	}
	res.SuccessCount = len(res.Customers)
	res.ErrorCount = len(res.Errors)
	return res
}

func createCustomer(db *gorm.DB, input CustomerInput) (*models.Customer, error) {
	if err := validation.EmailUnique(db, input.Email, 0); err != nil {
		return nil, err
	}
	phone := input.Phone
	if phone != nil && *phone == "" {
		phone = nil
	}
	if phone != nil {
		if err := validation.PhoneFormat(*phone); err != nil {
			return nil, err
		}
	}
	customer := models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: phone,
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Customer returns nil without an error when the id does not exist.
func (s *Service) Customer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (s *Service) Customers(ctx context.Context, f *filters.CustomerFilter, page, size int) ([]models.Customer, int64, error) {
	offset, limit := util.Calculate(page, size)
	base := func() *gorm.DB {
		return filters.Apply(s.DB.WithContext(ctx).Model(&models.Customer{}), f.Conditions())
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Customer
	if err := base().Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

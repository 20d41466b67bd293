package crm

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/filters"
	"github.com/mkovalev/graphql_crm/internal/models"
	"github.com/mkovalev/graphql_crm/internal/util"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock int32
}

func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, validation.Errorf("Price must be positive")
	}
	if input.Stock < 0 {
		return nil, validation.Errorf("Stock cannot be negative")
	}

	product := models.Product{
		Name:  input.Name,
		Price: input.Price,
		Stock: input.Stock,
	}
	if err := s.DB.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, "product_events", strconv.FormatUint(uint64(product.ID), 10), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	s.indexProduct(ctx, product)
	return &product, nil
}

func (s *Service) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (s *Service) Products(ctx context.Context, f *filters.ProductFilter, page, size int) ([]models.Product, int64, error) {
	offset, limit := util.Calculate(page, size)
	base := func() *gorm.DB {
		return filters.Apply(s.DB.WithContext(ctx).Model(&models.Product{}), f.Conditions())
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Product
	if err := base().Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

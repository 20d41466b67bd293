package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/mkovalev/graphql_crm/internal/filters"
)

type CustomerFilterInput struct {
	Name           *string
	NameIcontains  *string
	Email          *string
	EmailIcontains *string
	CreatedAtGte   *graphql.Time
	CreatedAtLte   *graphql.Time
	PhonePattern   *string
}

func (in *CustomerFilterInput) toFilter() *filters.CustomerFilter {
	if in == nil {
		return nil
	}
	return &filters.CustomerFilter{
		Name:           in.Name,
		NameIcontains:  in.NameIcontains,
		Email:          in.Email,
		EmailIcontains: in.EmailIcontains,
		CreatedAtGte:   toTime(in.CreatedAtGte),
		CreatedAtLte:   toTime(in.CreatedAtLte),
		PhonePattern:   in.PhonePattern,
	}
}

type ProductFilterInput struct {
	Name          *string
	NameIcontains *string
	PriceGte      *Decimal
	PriceLte      *Decimal
	Stock         *int32
	StockGte      *int32
	StockLte      *int32
	LowStock      *bool
}

func (in *ProductFilterInput) toFilter() *filters.ProductFilter {
	if in == nil {
		return nil
	}
	return &filters.ProductFilter{
		Name:          in.Name,
		NameIcontains: in.NameIcontains,
		PriceGte:      toDecimal(in.PriceGte),
		PriceLte:      toDecimal(in.PriceLte),
		Stock:         in.Stock,
		StockGte:      in.StockGte,
		StockLte:      in.StockLte,
		LowStock:      in.LowStock,
	}
}

type OrderFilterInput struct {
	TotalAmountGte *Decimal
	TotalAmountLte *Decimal
	OrderDateGte   *graphql.Time
	OrderDateLte   *graphql.Time
	CustomerName   *string
	ProductName    *string
	ProductID      *graphql.ID
}

func (in *OrderFilterInput) toFilter() *filters.OrderFilter {
	if in == nil {
		return nil
	}
	f := &filters.OrderFilter{
		TotalAmountGte: toDecimal(in.TotalAmountGte),
		TotalAmountLte: toDecimal(in.TotalAmountLte),
		OrderDateGte:   toTime(in.OrderDateGte),
		OrderDateLte:   toTime(in.OrderDateLte),
		CustomerName:   in.CustomerName,
		ProductName:    in.ProductName,
	}
	if in.ProductID != nil {
		if id, ok := parseID(*in.ProductID); ok {
			f.ProductID = &id
		} else {
			// A malformed id matches nothing.
			zero := uint(0)
			f.ProductID = &zero
		}
	}
	return f
}

func toTime(t *graphql.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func toDecimal(d *Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Decimal
	return &v
}

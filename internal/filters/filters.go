package filters

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Condition narrows a query. All conditions produced by one filter compose
// with logical AND; an absent parameter contributes no condition.
type Condition func(*gorm.DB) *gorm.DB

func Apply(q *gorm.DB, conds []Condition) *gorm.DB {
	for _, c := range conds {
		q = c(q)
	}
	return q
}

func where(query string, args ...any) Condition {
	return func(q *gorm.DB) *gorm.DB { return q.Where(query, args...) }
}

// icontains uses LOWER(...) LIKE so behavior matches between postgres
// and the sqlite driver used in tests.
func icontains(column, value string) Condition {
	return where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}

func istartswith(column, value string) Condition {
	return where("LOWER("+column+") LIKE ?", strings.ToLower(value)+"%")
}

const lowStockThreshold = 10

type CustomerFilter struct {
	Name           *string
	NameIcontains  *string
	Email          *string
	EmailIcontains *string
	CreatedAtGte   *time.Time
	CreatedAtLte   *time.Time
	PhonePattern   *string
}

func (f *CustomerFilter) Conditions() []Condition {
	if f == nil {
		return nil
	}
	var conds []Condition
	if f.Name != nil {
		conds = append(conds, icontains("name", *f.Name))
	}
	if f.NameIcontains != nil {
		conds = append(conds, icontains("name", *f.NameIcontains))
	}
	if f.Email != nil {
		conds = append(conds, icontains("email", *f.Email))
	}
	if f.EmailIcontains != nil {
		conds = append(conds, icontains("email", *f.EmailIcontains))
	}
	if f.CreatedAtGte != nil {
		conds = append(conds, where("created_at >= ?", *f.CreatedAtGte))
	}
	if f.CreatedAtLte != nil {
		conds = append(conds, where("created_at <= ?", *f.CreatedAtLte))
	}
	// NULL phones never match the pattern; an empty value is a no-op.
	if f.PhonePattern != nil && *f.PhonePattern != "" {
		conds = append(conds, istartswith("phone", *f.PhonePattern))
	}
	return conds
}

type ProductFilter struct {
	Name          *string
	NameIcontains *string
	PriceGte      *decimal.Decimal
	PriceLte      *decimal.Decimal
	Stock         *int32
	StockGte      *int32
	StockLte      *int32
	LowStock      *bool
}

func (f *ProductFilter) Conditions() []Condition {
	if f == nil {
		return nil
	}
	var conds []Condition
	if f.Name != nil {
		conds = append(conds, icontains("name", *f.Name))
	}
	if f.NameIcontains != nil {
		conds = append(conds, icontains("name", *f.NameIcontains))
	}
	if f.PriceGte != nil {
		conds = append(conds, where("price >= ?", *f.PriceGte))
	}
	if f.PriceLte != nil {
		conds = append(conds, where("price <= ?", *f.PriceLte))
	}
	if f.Stock != nil {
		conds = append(conds, where("stock = ?", *f.Stock))
	}
	if f.StockGte != nil {
		conds = append(conds, where("stock >= ?", *f.StockGte))
	}
	if f.StockLte != nil {
		conds = append(conds, where("stock <= ?", *f.StockLte))
	}
	if f.LowStock != nil && *f.LowStock {
		conds = append(conds, where("stock < ?", lowStockThreshold))
	}
	return conds
}

type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   *string
	ProductName    *string
	ProductID      *uint
}

func (f *OrderFilter) Conditions() []Condition {
	if f == nil {
		return nil
	}
	var conds []Condition
	if f.TotalAmountGte != nil {
		conds = append(conds, where("total_amount >= ?", *f.TotalAmountGte))
	}
	if f.TotalAmountLte != nil {
		conds = append(conds, where("total_amount <= ?", *f.TotalAmountLte))
	}
	if f.OrderDateGte != nil {
		conds = append(conds, where("order_date >= ?", *f.OrderDateGte))
	}
	if f.OrderDateLte != nil {
		conds = append(conds, where("order_date <= ?", *f.OrderDateLte))
	}
	if f.CustomerName != nil {
		name := *f.CustomerName
		conds = append(conds, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN customers ON customers.id = orders.customer_id").
				Where("LOWER(customers.name) LIKE ?", "%"+strings.ToLower(name)+"%")
		})
	}
	// Both product parameters go through the order_products join table;
	// joining once keeps the statement valid when both are present.
	if f.ProductName != nil || f.ProductID != nil {
		conds = append(conds, func(q *gorm.DB) *gorm.DB {
			return q.Joins("JOIN order_products ON order_products.order_id = orders.id").
				Joins("JOIN products ON products.id = order_products.product_id")
		})
		if f.ProductName != nil {
			conds = append(conds, icontains("products.name", *f.ProductName))
		}
		if f.ProductID != nil {
			conds = append(conds, where("products.id = ?", *f.ProductID))
		}
	}
	return conds
}

// Joined returns true when the filter joins other tables, in which case the
// caller must select DISTINCT to avoid duplicated rows from the many2many join.
func (f *OrderFilter) Joined() bool {
	if f == nil {
		return false
	}
	return f.CustomerName != nil || f.ProductName != nil || f.ProductID != nil
}

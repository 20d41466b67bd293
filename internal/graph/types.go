package graph

import (
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/mkovalev/graphql_crm/internal/models"
)

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

type CustomerResolver struct {
	c models.Customer
}

func (r *CustomerResolver) ID() graphql.ID { return toID(r.c.ID) }
func (r *CustomerResolver) Name() string { return r.c.Name }
func (r *CustomerResolver) Email() string { return r.c.Email }
func (r *CustomerResolver) Phone() *string { return r.c.Phone }
func (r *CustomerResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.c.CreatedAt}
}

type ProductResolver struct {
	p models.Product
}

func (r *ProductResolver) ID() graphql.ID { return toID(r.p.ID) }
func (r *ProductResolver) Name() string { return r.p.Name }
func (r *ProductResolver) Price() Decimal { return Decimal{r.p.Price} }
func (r *ProductResolver) Stock() int32 { return r.p.Stock }

type OrderResolver struct {
	o models.Order
}

func (r *OrderResolver) ID() graphql.ID { return toID(r.o.ID) }

func (r *OrderResolver) Customer() *CustomerResolver {
	return &CustomerResolver{c: r.o.Customer}
}

func (r *OrderResolver) Products() []*ProductResolver {
	return productResolvers(r.o.Products)
}

func (r *OrderResolver) OrderDate() graphql.Time {
	return graphql.Time{Time: r.o.OrderDate}
}

func (r *OrderResolver) TotalAmount() Decimal { return Decimal{r.o.TotalAmount} }

func customerResolvers(items []models.Customer) []*CustomerResolver {
	out := make([]*CustomerResolver, len(items))
	for i, c := range items {
		out[i] = &CustomerResolver{c: c}
	}
	return out
}

func productResolvers(items []models.Product) []*ProductResolver {
	out := make([]*ProductResolver, len(items))
	for i, p := range items {
		out[i] = &ProductResolver{p: p}
	}
	return out
}

func orderResolvers(items []models.Order) []*OrderResolver {
	out := make([]*OrderResolver, len(items))
	for i, o := range items {
		out[i] = &OrderResolver{o: o}
	}
	return out
}

// PageInfoResolver reports offset-pagination metadata for a connection.
type PageInfoResolver struct {
	page     int
	pageSize int
	total    int64
}

func pageInfo(page, size int, total int64) PageInfoResolver {
	return PageInfoResolver{page: page, pageSize: size, total: total}
}

func (r PageInfoResolver) Page() int32 { return int32(r.page) }
func (r PageInfoResolver) PageSize() int32 { return int32(r.pageSize) }

func (r PageInfoResolver) TotalPages() int32 {
	return int32((r.total + int64(r.pageSize) - 1) / int64(r.pageSize))
}

func (r PageInfoResolver) HasNext() bool {
	return int64(r.page*r.pageSize) < r.total
}

func (r PageInfoResolver) HasPrev() bool { return r.page > 1 }

type CustomerConnectionResolver struct {
	items []models.Customer
	page  PageInfoResolver
}

func (r *CustomerConnectionResolver) TotalCount() int32 { return int32(r.page.total) }
func (r *CustomerConnectionResolver) PageInfo() PageInfoResolver { return r.page }
func (r *CustomerConnectionResolver) Items() []*CustomerResolver { return customerResolvers(r.items) }

type ProductConnectionResolver struct {
	items []models.Product
	page  PageInfoResolver
}

func (r *ProductConnectionResolver) TotalCount() int32 { return int32(r.page.total) }
func (r *ProductConnectionResolver) PageInfo() PageInfoResolver { return r.page }
func (r *ProductConnectionResolver) Items() []*ProductResolver { return productResolvers(r.items) }

type OrderConnectionResolver struct {
	items []models.Order
	page  PageInfoResolver
}

func (r *OrderConnectionResolver) TotalCount() int32 { return int32(r.page.total) }
func (r *OrderConnectionResolver) PageInfo() PageInfoResolver { return r.page }
func (r *OrderConnectionResolver) Items() []*OrderResolver { return orderResolvers(r.items) }

type ProductSearchResolver struct {
	total int64
	items []models.Product
}

func (r *ProductSearchResolver) Total() int32 { return int32(r.total) }
func (r *ProductSearchResolver) Items() []*ProductResolver { return productResolvers(r.items) }

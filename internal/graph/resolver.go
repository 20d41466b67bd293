package graph

import (
	"context"
	"errors"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/mkovalev/graphql_crm/internal/crm"
	"github.com/mkovalev/graphql_crm/internal/service/search"
	"github.com/mkovalev/graphql_crm/internal/util"
)

// Resolver is the root of the query and mutation surface. Search is
// optional; searchProducts errors when it is absent.
type Resolver struct {
	Svc    *crm.Service
	Search *search.Client
}

func (r *Resolver) Hello() string {
	return "Hello, GraphQL!"
}

func (r *Resolver) Customer(ctx context.Context, args struct{ ID graphql.ID }) (*CustomerResolver, error) {
	id, ok := parseID(args.ID)
	if !ok {
		return nil, nil
	}
	customer, err := r.Svc.Customer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return &CustomerResolver{c: *customer}, nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	id, ok := parseID(args.ID)
	if !ok {
		return nil, nil
	}
	product, err := r.Svc.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &ProductResolver{p: *product}, nil
}

func (r *Resolver) Order(ctx context.Context, args struct{ ID graphql.ID }) (*OrderResolver, error) {
	id, ok := parseID(args.ID)
	if !ok {
		return nil, nil
	}
	order, err := r.Svc.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return &OrderResolver{o: *order}, nil
}

func (r *Resolver) AllCustomers(ctx context.Context, args struct {
	Filter   *CustomerFilterInput
	Page     *int32
	PageSize *int32
}) (*CustomerConnectionResolver, error) {
	page, size := pageArgs(args.Page, args.PageSize)
	items, total, err := r.Svc.Customers(ctx, args.Filter.toFilter(), page, size)
	if err != nil {
		return nil, err
	}
	return &CustomerConnectionResolver{items: items, page: pageInfo(page, size, total)}, nil
}

func (r *Resolver) AllProducts(ctx context.Context, args struct {
	Filter   *ProductFilterInput
	Page     *int32
	PageSize *int32
}) (*ProductConnectionResolver, error) {
	page, size := pageArgs(args.Page, args.PageSize)
	items, total, err := r.Svc.Products(ctx, args.Filter.toFilter(), page, size)
	if err != nil {
		return nil, err
	}
	return &ProductConnectionResolver{items: items, page: pageInfo(page, size, total)}, nil
}

func (r *Resolver) AllOrders(ctx context.Context, args struct {
	Filter   *OrderFilterInput
	Page     *int32
	PageSize *int32
}) (*OrderConnectionResolver, error) {
	page, size := pageArgs(args.Page, args.PageSize)
	items, total, err := r.Svc.Orders(ctx, args.Filter.toFilter(), page, size)
	if err != nil {
		return nil, err
	}
	return &OrderConnectionResolver{items: items, page: pageInfo(page, size, total)}, nil
}

func (r *Resolver) SearchProducts(ctx context.Context, args struct {
	Query    string
	Page     *int32
	PageSize *int32
}) (*ProductSearchResolver, error) {
	if r.Search == nil {
		return nil, errors.New("product search is not configured")
	}
	page, size := pageArgs(args.Page, args.PageSize)
	from, limit := util.Calculate(page, size)
	total, items, err := r.Search.Search(ctx, args.Query, from, limit)
	if err != nil {
		return nil, err
	}
	return &ProductSearchResolver{total: total, items: items}, nil
}

func parseID(id graphql.ID) (uint, bool) {
	v, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func pageArgs(page, size *int32) (int, int) {
	p, s := 1, util.DefaultPageSize
	if page != nil && *page >= 1 {
		p = int(*page)
	}
	if size != nil && *size > 0 && *size <= util.MaxPageSize {
		s = int(*size)
	}
	return p, s
}

package graph

import (
	"github.com/mkovalev/graphql_crm/internal/crm"
)

// The payload resolvers carry the uniform mutation envelope:
// entity (null on failure), message, success flag and a flat error list.

type CreateCustomerPayloadResolver struct {
	customer *CustomerResolver
	message  string
	success  bool
	errs     []string
}

func (r *CreateCustomerPayloadResolver) Customer() *CustomerResolver { return r.customer }
func (r *CreateCustomerPayloadResolver) Message() string { return r.message }
func (r *CreateCustomerPayloadResolver) Success() bool { return r.success }
func (r *CreateCustomerPayloadResolver) Errors() []string { return errorList(r.errs) }

type BulkCreateCustomersPayloadResolver struct {
	res crm.BulkResult
}

func (r *BulkCreateCustomersPayloadResolver) Customers() []*CustomerResolver {
	return customerResolvers(r.res.Customers)
}
func (r *BulkCreateCustomersPayloadResolver) Errors() []string { return errorList(r.res.Errors) }
func (r *BulkCreateCustomersPayloadResolver) SuccessCount() int32 { return int32(r.res.SuccessCount) }
func (r *BulkCreateCustomersPayloadResolver) ErrorCount() int32 { return int32(r.res.ErrorCount) }

type CreateProductPayloadResolver struct {
	product *ProductResolver
	message string
	success bool
	errs    []string
}

func (r *CreateProductPayloadResolver) Product() *ProductResolver { return r.product }
func (r *CreateProductPayloadResolver) Message() string { return r.message }
func (r *CreateProductPayloadResolver) Success() bool { return r.success }
func (r *CreateProductPayloadResolver) Errors() []string { return errorList(r.errs) }

type CreateOrderPayloadResolver struct {
	order   *OrderResolver
	message string
	success bool
	errs    []string
}

func (r *CreateOrderPayloadResolver) Order() *OrderResolver { return r.order }
func (r *CreateOrderPayloadResolver) Message() string { return r.message }
func (r *CreateOrderPayloadResolver) Success() bool { return r.success }
func (r *CreateOrderPayloadResolver) Errors() []string { return errorList(r.errs) }

func errorList(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}

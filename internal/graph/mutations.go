package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/mkovalev/graphql_crm/internal/crm"
	"github.com/mkovalev/graphql_crm/internal/logging"
	"github.com/mkovalev/graphql_crm/internal/validation"
)

type customerInput struct {
	Name  string
	Email string
	Phone *string
}

func (in customerInput) toInput() crm.CustomerInput {
	return crm.CustomerInput{Name: in.Name, Email: in.Email, Phone: in.Phone}
}

type productInput struct {
	Name  string
	Price Decimal
	Stock *int32
}

type orderInput struct {
	CustomerID graphql.ID
	ProductIDs []graphql.ID
	OrderDate  *graphql.Time
}

// Mutations never surface errors as GraphQL errors: validation and
// unexpected failures both land in the payload's errors list with
// success=false.

func (r *Resolver) CreateCustomer(ctx context.Context, args struct{ Input customerInput }) *CreateCustomerPayloadResolver {
	customer, err := r.Svc.CreateCustomer(ctx, args.Input.toInput())
	if err != nil {
		logMutationError(ctx, "createCustomer", err)
		return &CreateCustomerPayloadResolver{
			message: "Failed to create customer",
			errs:    []string{err.Error()},
		}
	}
	return &CreateCustomerPayloadResolver{
		customer: &CustomerResolver{c: *customer},
		message:  "Customer created successfully!",
		success:  true,
	}
}

func (r *Resolver) BulkCreateCustomers(ctx context.Context, args struct{ Input []customerInput }) *BulkCreateCustomersPayloadResolver {
	inputs := make([]crm.CustomerInput, len(args.Input))
	for i, in := range args.Input {
		inputs[i] = in.toInput()
	}
	res := r.Svc.BulkCreateCustomers(ctx, inputs)
	return &BulkCreateCustomersPayloadResolver{res: res}
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input productInput }) *CreateProductPayloadResolver {
	input := crm.ProductInput{
		Name:  args.Input.Name,
		Price: args.Input.Price.Decimal,
	}
	if args.Input.Stock != nil {
		input.Stock = *args.Input.Stock
	}
	product, err := r.Svc.CreateProduct(ctx, input)
	if err != nil {
		logMutationError(ctx, "createProduct", err)
		return &CreateProductPayloadResolver{
			message: "Failed to create product",
			errs:    []string{err.Error()},
		}
	}
	return &CreateProductPayloadResolver{
		product: &ProductResolver{p: *product},
		message: "Product created successfully!",
		success: true,
	}
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input orderInput }) *CreateOrderPayloadResolver {
	fail := func(msg string) *CreateOrderPayloadResolver {
		return &CreateOrderPayloadResolver{
			message: "Failed to create order",
			errs:    []string{msg},
		}
	}

	customerID, ok := parseID(args.Input.CustomerID)
	if !ok {
		return fail("Customer not found")
	}
	productIDs := make([]uint, 0, len(args.Input.ProductIDs))
	for _, raw := range args.Input.ProductIDs {
		id, ok := parseID(raw)
		if !ok {
			return fail("One or more products not found")
		}
		productIDs = append(productIDs, id)
	}

	input := crm.OrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs,
	}
	if args.Input.OrderDate != nil {
		d := args.Input.OrderDate.Time
		input.OrderDate = &d
	}

	order, err := r.Svc.CreateOrder(ctx, input)
	if err != nil {
		logMutationError(ctx, "createOrder", err)
		return fail(err.Error())
	}
	return &CreateOrderPayloadResolver{
		order:   &OrderResolver{o: *order},
		message: "Order created successfully!",
		success: true,
	}
}

func logMutationError(ctx context.Context, mutation string, err error) {
	if validation.IsValidation(err) {
		return
	}
	logging.FromContext(ctx).Error("mutation failed", "mutation", mutation, "error", err)
}

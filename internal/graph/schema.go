package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/mkovalev/graphql_crm/internal/crm"
	"github.com/mkovalev/graphql_crm/internal/service/search"
)

// Schema is the full SDL served at /graphql. Resolver methods must cover
// every field declared here; ParseSchema fails otherwise.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time
	scalar Decimal

	type Query {
		hello: String!

		customer(id: ID!): Customer
		product(id: ID!): Product
		order(id: ID!): Order

		allCustomers(filter: CustomerFilterInput, page: Int, pageSize: Int): CustomerConnection!
		allProducts(filter: ProductFilterInput, page: Int, pageSize: Int): ProductConnection!
		allOrders(filter: OrderFilterInput, page: Int, pageSize: Int): OrderConnection!

		searchProducts(query: String!, page: Int, pageSize: Int): ProductSearchResult!
	}

	type Mutation {
		createCustomer(input: CustomerInput!): CreateCustomerPayload!
		bulkCreateCustomers(input: [CustomerInput!]!): BulkCreateCustomersPayload!
		createProduct(input: ProductInput!): CreateProductPayload!
		createOrder(input: OrderInput!): CreateOrderPayload!
	}

	type Customer {
		id: ID!
		name: String!
		email: String!
		phone: String
		createdAt: Time!
	}

	type Product {
		id: ID!
		name: String!
		price: Decimal!
		stock: Int!
	}

	type Order {
		id: ID!
		customer: Customer!
		products: [Product!]!
		orderDate: Time!
		totalAmount: Decimal!
	}

	type PageInfo {
		page: Int!
		pageSize: Int!
		totalPages: Int!
		hasNext: Boolean!
		hasPrev: Boolean!
	}

	type CustomerConnection {
		totalCount: Int!
		pageInfo: PageInfo!
		items: [Customer!]!
	}

	type ProductConnection {
		totalCount: Int!
		pageInfo: PageInfo!
		items: [Product!]!
	}

	type OrderConnection {
		totalCount: Int!
		pageInfo: PageInfo!
		items: [Order!]!
	}

	type ProductSearchResult {
		total: Int!
		items: [Product!]!
	}

	input CustomerFilterInput {
		name: String
		nameIcontains: String
		email: String
		emailIcontains: String
		createdAtGte: Time
		createdAtLte: Time
		phonePattern: String
	}

	input ProductFilterInput {
		name: String
		nameIcontains: String
		priceGte: Decimal
		priceLte: Decimal
		stock: Int
		stockGte: Int
		stockLte: Int
		lowStock: Boolean
	}

	input OrderFilterInput {
		totalAmountGte: Decimal
		totalAmountLte: Decimal
		orderDateGte: Time
		orderDateLte: Time
		customerName: String
		productName: String
		productId: ID
	}

	input CustomerInput {
		name: String!
		email: String!
		phone: String
	}

	input ProductInput {
		name: String!
		price: Decimal!
		stock: Int
	}

	input OrderInput {
		customerId: ID!
		productIds: [ID!]!
		orderDate: Time
	}

	type CreateCustomerPayload {
		customer: Customer
		message: String!
		success: Boolean!
		errors: [String!]!
	}

	type BulkCreateCustomersPayload {
		customers: [Customer!]!
		errors: [String!]!
		successCount: Int!
		errorCount: Int!
	}

	type CreateProductPayload {
		product: Product
		message: String!
		success: Boolean!
		errors: [String!]!
	}

	type CreateOrderPayload {
		order: Order
		message: String!
		success: Boolean!
		errors: [String!]!
	}
`

// NewSchema parses the SDL against a resolver.
func NewSchema(svc *crm.Service, searcher *search.Client) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, &Resolver{Svc: svc, Search: searcher})
}

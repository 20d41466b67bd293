package crm

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))
	return &Service{DB: db}
}

func strPtr(s string) *string { return &s }

func int32Ptr(v int32) *int32 { return &v }

func boolPtr(v bool) *bool { return &v }

func uintPtr(v uint) *uint { return &v }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func seedCustomer(t *testing.T, svc *Service, name, email string, phone *string) models.Customer {
	t.Helper()
	c, err := svc.CreateCustomer(context.Background(), CustomerInput{Name: name, Email: email, Phone: phone})
	require.NoError(t, err)
	return *c
}

func seedProduct(t *testing.T, svc *Service, name, price string, stock int32) models.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), ProductInput{Name: name, Price: dec(t, price), Stock: stock})
	require.NoError(t, err)
	return *p
}

func customerCount(t *testing.T, svc *Service) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.DB.Model(&models.Customer{}).Count(&count).Error)
	return count
}

func orderCount(t *testing.T, svc *Service) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.DB.Model(&models.Order{}).Count(&count).Error)
	return count
}

package validation

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Customer{}))
	return db
}

func TestPhoneFormat(t *testing.T) {
	valid := []string{
		"",
		"+15551234567",
		"+123456789",
		"555-123-4567",
		"123456789012345",
	}
	for _, phone := range valid {
		require.NoError(t, PhoneFormat(phone), "phone %q", phone)
	}

	invalid := []string{
		"555-1234",
		"abc",
		"+1",
		"12345678",
		"555-123-45678",
		"+1 555 123 4567",
	}
	for _, phone := range invalid {
		err := PhoneFormat(phone)
		require.Error(t, err, "phone %q", phone)
		require.True(t, IsValidation(err), "phone %q", phone)
		require.EqualError(t, err, "Invalid phone number format")
	}
}

func TestEmailUnique(t *testing.T) {
	db := newTestDB(t)

	existing := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&existing).Error)

	err := EmailUnique(db, "alice@example.com", 0)
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.EqualError(t, err, "Email already exists")

	require.NoError(t, EmailUnique(db, "bob@example.com", 0))

	// A customer may keep its own email.
	require.NoError(t, EmailUnique(db, "alice@example.com", existing.ID))
}

package validation

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/models"
)

// Error marks an expected, user-facing validation failure. Anything else
// that comes out of a mutation is treated as unexpected.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Accepted phone formats: international ("+", optional "1", 9-15 digits)
// or NANP dashed (NNN-NNN-NNNN).
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$|^\d{3}-\d{3}-\d{4}$`)

func PhoneFormat(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return Errorf("Invalid phone number format")
	}
	return nil
}

// EmailUnique fails if another customer already holds the email.
// excludeID, when non-zero, skips that customer's own row.
func EmailUnique(db *gorm.DB, email string, excludeID uint) error {
	q := db.Model(&models.Customer{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("email lookup: %w", err)
	}
	if count > 0 {
		return Errorf("Email already exists")
	}
	return nil
}

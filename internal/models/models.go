package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Email     string    `gorm:"uniqueIndex;not null"     json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name  string          `gorm:"not null"                    json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock int32           `gorm:"not null;default:0"          json:"stock"`
}

type Order struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	CustomerID  uint            `gorm:"index;not null"              json:"customer_id"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `gorm:"many2many:order_products"    json:"products"`
	OrderDate   time.Time       `gorm:"not null"                    json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
}

package graph

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is the exact-precision money scalar. It marshals as a string so
// values like "15.50" survive transport without float rounding.
type Decimal struct {
	decimal.Decimal
}

func (Decimal) ImplementsGraphQLType(name string) bool {
	return name == "Decimal"
}

func (d *Decimal) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case string:
		dec, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid Decimal %q: %w", v, err)
		}
		d.Decimal = dec
	case int32:
		d.Decimal = decimal.NewFromInt(int64(v))
	case int:
		d.Decimal = decimal.NewFromInt(int64(v))
	case int64:
		d.Decimal = decimal.NewFromInt(v)
	case float64:
		d.Decimal = decimal.NewFromFloat(v)
	case json.Number:
		dec, err := decimal.NewFromString(v.String())
		if err != nil {
			return fmt.Errorf("invalid Decimal %q: %w", v, err)
		}
		d.Decimal = dec
	default:
		return fmt.Errorf("wrong type for Decimal: %T", input)
	}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Decimal.String())
}

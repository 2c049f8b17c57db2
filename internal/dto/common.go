package dto

import "github.com/shopspring/decimal"

// ListParams defines the shared pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CentsDisplay renders integer cents as a fixed two-decimal currency string.
// Persisted amounts are always integer cents; decimals exist only in views.
func CentsDisplay(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

package checkout

import (
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/shopspring/decimal"
)

// Summary is the priced view of a set of cart lines.
type Summary struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize prices lines at taxRate. Tax is rounded to cents.
func Summarize(lines []models.LineItem, taxRate decimal.Decimal) Summary {
	s := Summary{Subtotal: decimal.Zero}
	for _, l := range lines {
		s.Items += l.Quantity
		s.Subtotal = s.Subtotal.Add(l.Subtotal())
	}

	s.Tax = s.Subtotal.Mul(taxRate).Round(2)
	s.Total = s.Subtotal.Add(s.Tax)
	return s
}

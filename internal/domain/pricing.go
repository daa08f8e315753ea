package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// costFactor is the operating-cost share of a booking's total price.
var costFactor = decimal.RequireFromString("0.7")

// Quote is the financial breakdown of a booking. All three values are exact
// fixed-point decimals and always satisfy Cost + Profit == Total.
type Quote struct {
	Total  decimal.Decimal
	Cost   decimal.Decimal
	Profit decimal.Decimal
}

// NewQuote derives the total, operating cost and profit for a booking from
// the flight's class price and the meal price. The cost is total*0.7 rounded
// up (away from zero) to two decimal places; the identity check failing is a
// fatal defect, never a recoverable condition.
func NewQuote(classPrice, mealPrice decimal.Decimal) (Quote, error) {
	total := classPrice.Add(mealPrice)
	cost := total.Mul(costFactor).RoundUp(2)
	profit := total.Sub(cost)
	if !cost.Add(profit).Equal(total) {
		return Quote{}, fmt.Errorf("%w: %s + %s != %s", ErrRoundingInvariant, cost, profit, total)
	}
	return Quote{Total: total, Cost: cost, Profit: profit}, nil
}

// ParsePrice parses a non-negative fixed-point decimal price.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad price %q: %v", ErrValidation, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price %q is negative", ErrValidation, s)
	}
	return d, nil
}

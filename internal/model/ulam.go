package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are plain JSON numbers in the collection files and in responses.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNoPrice is returned when a menu item carries neither price field.
var ErrNoPrice = errors.New("ulam has no price configured")

// Ulam is a menu item served at a stall. The collection is read-only from the
// service's perspective; records are seeded out-of-band (cmd/seed).
type Ulam struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Stall          int              `json:"stall"`
	UlamOnlyPrice  *decimal.Decimal `json:"ulamOnlyPrice,omitempty"`
	WithRicePrice  *decimal.Decimal `json:"withRicePrice,omitempty"`
	Image          string           `json:"image"`
	Description    string           `json:"description"`
	Ingredients    []string         `json:"ingredients"`
	Allergens      []string         `json:"allergens"`
	IsUlamOfTheDay bool             `json:"isUlamOfTheDay"`
}

// PriceFor resolves the charge for a reservation. The price matching the rice
// option wins; if that field is absent the remaining one is used. ErrNoPrice
// when the item has neither.
func (u Ulam) PriceFor(withRice bool) (decimal.Decimal, error) {
	if u.UlamOnlyPrice == nil && u.WithRicePrice == nil {
		return decimal.Decimal{}, ErrNoPrice
	}
	if withRice {
		if u.WithRicePrice != nil {
			return *u.WithRicePrice, nil
		}
		return *u.UlamOnlyPrice, nil
	}
	if u.UlamOnlyPrice != nil {
		return *u.UlamOnlyPrice, nil
	}
	return *u.WithRicePrice, nil
}

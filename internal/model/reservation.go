package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is an immutable order record. UlamName, UserName and Price are
// snapshots taken at creation time; later catalog or account changes never
// touch existing reservations.
type Reservation struct {
	ID        int64           `json:"id"`
	Stall     int             `json:"stall"`
	UlamID    int64           `json:"ulamId"`
	UlamName  string          `json:"ulamName"`
	Price     decimal.Decimal `json:"price"`
	WithRice  bool            `json:"withRice"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	CreatedAt time.Time       `json:"createdAt"`
}

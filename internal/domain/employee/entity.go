package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	DisplayName string
	HourlyRate  *decimal.Decimal
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Rate returns the hourly rate with the lenient clamp applied: a missing or
// negative rate counts as zero so salary derivation never fails on a
// degenerate directory entry.
func (e Employee) Rate() decimal.Decimal {
	if e.HourlyRate == nil || e.HourlyRate.IsNegative() {
		return decimal.Zero
	}
	return *e.HourlyRate
}

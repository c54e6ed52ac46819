package storage

import (
	"errors"

	"artistBooker/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingPatch carries a partial update. Nil fields are left unchanged.
// Artist fields and the id are immutable and intentionally absent.
type BookingPatch struct {
	ContractorName *string
	EventDate      *models.Date
	CacheAmount    *models.Money
	EventAddress   *string
}

func (p BookingPatch) IsEmpty() bool {
	return p.ContractorName == nil && p.EventDate == nil && p.CacheAmount == nil && p.EventAddress == nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment binds a calendar date and a time slot to a client. At most one
// appointment may exist per (Date, TimeSlot) pair; the scheduling ledger is
// the sole authority for that invariant.
type Appointment struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Date      string    `json:"date"`      // YYYY-MM-DD
	TimeSlot  string    `json:"time_slot"` // HH:MM label from the registry
	Fee       float64   `json:"fee"`
	Paid      bool      `json:"paid"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"timestamp"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Practitioner is the single account that owns the calendar. The system is
// single-user: setup creates this record once, login checks against it.
type Practitioner struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a registered client of the practice. Comments and Documents are
// append-only; their order is insertion order and survives reload.
type Client struct {
	ID           uuid.UUID     `json:"id"`
	RegisteredAt time.Time     `json:"registration_date"`
	Name         string        `json:"name"`
	DOB          string        `json:"dob"`
	Email        string        `json:"email"`
	Cellphone    string        `json:"cellphone"`
	Comments     []Comment     `json:"comments"`
	Documents    []DocumentRef `json:"documents"`
}

// Comment is a timestamped free-text note on a client record.
type Comment struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// DocumentRef points at an uploaded document in the document store. The
// bytes themselves never enter the scheduling core.
type DocumentRef struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"timestamp"`
}

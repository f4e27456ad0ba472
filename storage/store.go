package storage

import (
	"time"

	"github.com/google/uuid"

	"schedulepro-backend/models"
)

// Store is the persistence adapter for the three entity collections plus the
// practitioner account. Collections are loaded in full at startup and
// rewritten in full on every mutation; a Save must be durable before it
// returns. The scheduling core commits to memory only after the matching
// Save succeeds, so in-memory and on-disk state never diverge across a
// successful call.
type Store interface {
	LoadSettings() (models.ScheduleSettings, error)
	SaveSettings(models.ScheduleSettings) error

	LoadClients() ([]models.Client, error)
	SaveClients([]models.Client) error

	LoadAppointments() ([]models.Appointment, error)
	SaveAppointments([]models.Appointment) error

	LoadPractitioner() (*models.Practitioner, error)
	SavePractitioner(models.Practitioner) error
}

// practitionerRecord is the persisted form of the practitioner account; the
// password hash is excluded from the model's JSON but must survive reload.
type practitionerRecord struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	Name         string     `json:"name"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func newPractitionerRecord(p models.Practitioner) practitionerRecord {
	return practitionerRecord{
		ID:           p.ID,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Name:         p.Name,
		LastLogin:    p.LastLogin,
	}
}

func (r practitionerRecord) toModel() *models.Practitioner {
	return &models.Practitioner{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		LastLogin:    r.LastLogin,
	}
}

package storage

import (
	"slices"

	"schedulepro-backend/models"
)

// MemoryStore keeps the collections in process memory. It exists for tests
// and for trying the server without touching disk.
type MemoryStore struct {
	settings     models.ScheduleSettings
	clients      []models.Client
	appointments []models.Appointment
	practitioner *models.Practitioner

	// SaveErr, when set, is returned by every Save call. Tests use it to
	// check that a failed write leaves in-memory core state unchanged.
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		settings: models.ScheduleSettings{TimeSlots: []string{}, SessionFee: models.DefaultSessionFee},
	}
}

func (s *MemoryStore) LoadSettings() (models.ScheduleSettings, error) {
	settings := s.settings
	settings.TimeSlots = slices.Clone(s.settings.TimeSlots)
	return settings, nil
}

func (s *MemoryStore) SaveSettings(settings models.ScheduleSettings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	settings.TimeSlots = slices.Clone(settings.TimeSlots)
	s.settings = settings
	return nil
}

func (s *MemoryStore) LoadClients() ([]models.Client, error) {
	return slices.Clone(s.clients), nil
}

func (s *MemoryStore) SaveClients(clients []models.Client) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.clients = slices.Clone(clients)
	return nil
}

func (s *MemoryStore) LoadAppointments() ([]models.Appointment, error) {
	return slices.Clone(s.appointments), nil
}

func (s *MemoryStore) SaveAppointments(appointments []models.Appointment) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.appointments = slices.Clone(appointments)
	return nil
}

func (s *MemoryStore) LoadPractitioner() (*models.Practitioner, error) {
	if s.practitioner == nil {
		return nil, nil
	}
	p := *s.practitioner
	return &p, nil
}

func (s *MemoryStore) SavePractitioner(p models.Practitioner) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.practitioner = &p
	return nil
}

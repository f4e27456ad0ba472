package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"schedulepro-backend/models"
)

// File names match the layout earlier deployments used, so an existing data
// directory loads as-is.
const (
	clientsFile      = "clients_data.json"
	settingsFile     = "schedule_settings.json"
	appointmentsFile = "appointments_data.json"
	practitionerFile = "practitioner_data.json"
)

// JSONFileStore persists each collection as one JSON file under a data
// directory. Saves rewrite the whole file through a temp-file rename, so a
// crash mid-write leaves the previous contents intact.
type JSONFileStore struct {
	dir string
}

func NewJSONFileStore(dir string) (*JSONFileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONFileStore{dir: dir}, nil
}

func (s *JSONFileStore) LoadSettings() (models.ScheduleSettings, error) {
	settings := models.ScheduleSettings{TimeSlots: []string{}, SessionFee: models.DefaultSessionFee}
	err := s.read(settingsFile, &settings)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	return settings, err
}

func (s *JSONFileStore) SaveSettings(settings models.ScheduleSettings) error {
	return s.write(settingsFile, settings)
}

func (s *JSONFileStore) LoadClients() ([]models.Client, error) {
	var clients []models.Client
	err := s.read(clientsFile, &clients)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return clients, err
}

func (s *JSONFileStore) SaveClients(clients []models.Client) error {
	if clients == nil {
		clients = []models.Client{}
	}
	return s.write(clientsFile, clients)
}

func (s *JSONFileStore) LoadAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.read(appointmentsFile, &appointments)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return appointments, err
}

func (s *JSONFileStore) SaveAppointments(appointments []models.Appointment) error {
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return s.write(appointmentsFile, appointments)
}

func (s *JSONFileStore) LoadPractitioner() (*models.Practitioner, error) {
	var p practitionerRecord
	err := s.read(practitionerFile, &p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p.toModel(), nil
}

func (s *JSONFileStore) SavePractitioner(p models.Practitioner) error {
	return s.write(practitionerFile, newPractitionerRecord(p))
}

func (s *JSONFileStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *JSONFileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

package storage

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schedulepro-backend/models"
)

// GormStore persists the collections in Postgres. It keeps the adapter's
// full-collection contract: every Save rewrites the collection's table
// inside one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&settingsRow{},
		&clientRow{},
		&appointmentRow{},
		&practitionerRow{},
	); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

type settingsRow struct {
	ID         int     `gorm:"primary_key"`
	TimeSlots  JSONB   `gorm:"type:jsonb;default:'[]'"`
	SessionFee float64 `gorm:"type:decimal(10,2);not null"`
}

func (settingsRow) TableName() string { return "schedule_settings" }

type clientRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RegisteredAt time.Time
	Name         string `gorm:"not null"`
	DOB          string
	Email        string
	Cellphone    string
	Comments     JSONB `gorm:"type:jsonb;default:'[]'"`
	Documents    JSONB `gorm:"type:jsonb;default:'[]'"`
	Position     int   `gorm:"index"` // registration order
}

func (clientRow) TableName() string { return "clients" }

type appointmentRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Date      string    `gorm:"type:varchar(10);index;not null"`
	TimeSlot  string    `gorm:"type:varchar(5);not null"`
	Fee       float64   `gorm:"type:decimal(10,2);not null"`
	Paid      bool      `gorm:"default:false"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (appointmentRow) TableName() string { return "appointments" }

type practitionerRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"not null"`
	LastLogin    *time.Time
}

func (practitionerRow) TableName() string { return "practitioners" }

// JSONB round-trips an arbitrary JSON document through a jsonb column.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "[]", nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*j = JSONB(append([]byte(nil), v...))
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		return errors.New("unsupported jsonb source type")
	}
}

func toJSONB(v any) (JSONB, error) {
	data, err := json.Marshal(v)
	return JSONB(data), err
}

func fromJSONB(j JSONB, v any) error {
	if len(j) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(j), v)
}

func (s *GormStore) LoadSettings() (models.ScheduleSettings, error) {
	settings := models.ScheduleSettings{TimeSlots: []string{}, SessionFee: models.DefaultSessionFee}
	var row settingsRow
	err := s.db.First(&row, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}
	settings.SessionFee = row.SessionFee
	if err := fromJSONB(row.TimeSlots, &settings.TimeSlots); err != nil {
		return settings, err
	}
	return settings, nil
}

func (s *GormStore) SaveSettings(settings models.ScheduleSettings) error {
	slots, err := toJSONB(settings.TimeSlots)
	if err != nil {
		return err
	}
	row := settingsRow{ID: 1, TimeSlots: slots, SessionFee: settings.SessionFee}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", 1).Delete(&settingsRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
}

func (s *GormStore) LoadClients() ([]models.Client, error) {
	var rows []clientRow
	if err := s.db.Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		client := models.Client{
			ID:           row.ID,
			RegisteredAt: row.RegisteredAt,
			Name:         row.Name,
			DOB:          row.DOB,
			Email:        row.Email,
			Cellphone:    row.Cellphone,
			Comments:     []models.Comment{},
			Documents:    []models.DocumentRef{},
		}
		if err := fromJSONB(row.Comments, &client.Comments); err != nil {
			return nil, err
		}
		if err := fromJSONB(row.Documents, &client.Documents); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (s *GormStore) SaveClients(clients []models.Client) error {
	rows := make([]clientRow, 0, len(clients))
	for i, c := range clients {
		comments, err := toJSONB(c.Comments)
		if err != nil {
			return err
		}
		documents, err := toJSONB(c.Documents)
		if err != nil {
			return err
		}
		rows = append(rows, clientRow{
			ID:           c.ID,
			RegisteredAt: c.RegisteredAt,
			Name:         c.Name,
			DOB:          c.DOB,
			Email:        c.Email,
			Cellphone:    c.Cellphone,
			Comments:     comments,
			Documents:    documents,
			Position:     i,
		})
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&clientRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormStore) LoadAppointments() ([]models.Appointment, error) {
	var rows []appointmentRow
	if err := s.db.Order("date asc, time_slot asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	appointments := make([]models.Appointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, models.Appointment{
			ID:        row.ID,
			ClientID:  row.ClientID,
			Date:      row.Date,
			TimeSlot:  row.TimeSlot,
			Fee:       row.Fee,
			Paid:      row.Paid,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		})
	}
	return appointments, nil
}

func (s *GormStore) SaveAppointments(appointments []models.Appointment) error {
	rows := make([]appointmentRow, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, appointmentRow{
			ID:        a.ID,
			ClientID:  a.ClientID,
			Date:      a.Date,
			TimeSlot:  a.TimeSlot,
			Fee:       a.Fee,
			Paid:      a.Paid,
			Comment:   a.Comment,
			CreatedAt: a.CreatedAt,
		})
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&appointmentRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormStore) LoadPractitioner() (*models.Practitioner, error) {
	var row practitionerRow
	err := s.db.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.Practitioner{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Name:         row.Name,
		LastLogin:    row.LastLogin,
	}, nil
}

func (s *GormStore) SavePractitioner(p models.Practitioner) error {
	row := practitionerRow{
		ID:           p.ID,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Name:         p.Name,
		LastLogin:    p.LastLogin,
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&practitionerRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
}

package scheduling

import (
	"testing"

	"github.com/google/uuid"

	"schedulepro-backend/models"
	"schedulepro-backend/storage"
)

// cleanerFunc adapts a func to the document-cleanup collaborator.
type cleanerFunc func(uuid.UUID) error

func (f cleanerFunc) RemoveClientDocuments(id uuid.UUID) error { return f(id) }

func newTestSystem(t *testing.T) (*System, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	sys, err := NewSystem(store, nil)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys, store
}

func mustDefineSlots(t *testing.T, sys *System, labels ...string) {
	t.Helper()
	for _, l := range labels {
		if err := sys.Slots.DefineSlot(l); err != nil {
			t.Fatalf("DefineSlot(%s): %v", l, err)
		}
	}
}

func mustRegister(t *testing.T, sys *System, name string) models.Client {
	t.Helper()
	client, err := sys.Clients.Register(ClientInput{Name: name})
	if err != nil {
		t.Fatalf("Register(%s): %v", name, err)
	}
	return client
}

func mustBook(t *testing.T, sys *System, date, slot string, clientID uuid.UUID) models.Appointment {
	t.Helper()
	appt, err := sys.Appointments.Book(BookingInput{Date: date, TimeSlot: slot, ClientID: clientID})
	if err != nil {
		t.Fatalf("Book(%s %s): %v", date, slot, err)
	}
	return appt
}

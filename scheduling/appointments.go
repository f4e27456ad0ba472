package scheduling

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedulepro-backend/models"
	"schedulepro-backend/storage"
)

// AppointmentLedger owns the appointment records and is the sole authority
// for the one-appointment-per-(date, slot) invariant. Every mutator is
// all-or-nothing: the collection is persisted before the in-memory state
// changes, and a failed precondition leaves no partial state.
type AppointmentLedger struct {
	store        storage.Store
	appointments []models.Appointment
	slots        *TimeSlotRegistry
	clients      *ClientDirectory
}

func NewAppointmentLedger(store storage.Store, slots *TimeSlotRegistry, clients *ClientDirectory) (*AppointmentLedger, error) {
	appointments, err := store.LoadAppointments()
	if err != nil {
		return nil, err
	}
	l := &AppointmentLedger{
		store:        store,
		appointments: appointments,
		slots:        slots,
		clients:      clients,
	}
	slots.bindUsage(l)
	clients.bindUsage(l)
	return l, nil
}

// BookingInput describes a booking request. Fee nil means the registry's
// default session fee.
type BookingInput struct {
	Date     string
	TimeSlot string
	ClientID uuid.UUID
	Fee      *float64
	Comment  string
}

// Book creates an appointment if the (date, slot) pair is free.
func (l *AppointmentLedger) Book(input BookingInput) (models.Appointment, error) {
	if !ValidDate(input.Date) {
		return models.Appointment{}, validationErr("date", "must be YYYY-MM-DD")
	}
	if !l.slots.HasSlot(input.TimeSlot) {
		return models.Appointment{}, ErrUnknownSlot
	}
	if _, err := l.clients.Get(input.ClientID); err != nil {
		return models.Appointment{}, ErrUnknownClient
	}
	if l.occupied(input.Date, input.TimeSlot, uuid.Nil) {
		return models.Appointment{}, ErrSlotAlreadyBooked
	}
	fee := l.slots.DefaultFee()
	if input.Fee != nil {
		if *input.Fee < 0 {
			return models.Appointment{}, ErrInvalidAmount
		}
		fee = *input.Fee
	}
	appt := models.Appointment{
		ID:        uuid.New(),
		ClientID:  input.ClientID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Fee:       fee,
		Paid:      false,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	next := append(slices.Clone(l.appointments), appt)
	if err := l.store.SaveAppointments(next); err != nil {
		return models.Appointment{}, err
	}
	l.appointments = next
	return appt, nil
}

// Cancel removes an appointment, freeing its (date, slot) pair. Terminal:
// the record is gone, not flagged.
func (l *AppointmentLedger) Cancel(id uuid.UUID) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrAppointmentNotFound
	}
	next := slices.Delete(slices.Clone(l.appointments), i, i+1)
	if err := l.store.SaveAppointments(next); err != nil {
		return err
	}
	l.appointments = next
	return nil
}

// AppointmentPatch carries optional replacement values for Edit. Nil fields
// are left untouched. Changing Date or TimeSlot reschedules the appointment
// and re-runs the uniqueness check against the other appointments.
type AppointmentPatch struct {
	Date     *string
	TimeSlot *string
	Fee      *float64
	Paid     *bool
	Comment  *string
}

// Edit mutates an existing appointment. On any precondition failure the
// original record is unchanged.
func (l *AppointmentLedger) Edit(id uuid.UUID, patch AppointmentPatch) (models.Appointment, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	appt := l.appointments[i]
	if patch.Date != nil {
		if !ValidDate(*patch.Date) {
			return models.Appointment{}, validationErr("date", "must be YYYY-MM-DD")
		}
		appt.Date = *patch.Date
	}
	if patch.TimeSlot != nil {
		if !l.slots.HasSlot(*patch.TimeSlot) {
			return models.Appointment{}, ErrUnknownSlot
		}
		appt.TimeSlot = *patch.TimeSlot
	}
	if patch.Date != nil || patch.TimeSlot != nil {
		if l.occupied(appt.Date, appt.TimeSlot, appt.ID) {
			return models.Appointment{}, ErrSlotAlreadyBooked
		}
	}
	if patch.Fee != nil {
		if *patch.Fee < 0 {
			return models.Appointment{}, ErrInvalidAmount
		}
		appt.Fee = *patch.Fee
	}
	if patch.Paid != nil {
		appt.Paid = *patch.Paid
	}
	if patch.Comment != nil {
		appt.Comment = *patch.Comment
	}
	next := slices.Clone(l.appointments)
	next[i] = appt
	if err := l.store.SaveAppointments(next); err != nil {
		return models.Appointment{}, err
	}
	l.appointments = next
	return appt, nil
}

// SetPaid toggles the payment flag. Marking paid also leaves a payment note
// on the client record as part of the check-in flow.
func (l *AppointmentLedger) SetPaid(id uuid.UUID, paid bool) (models.Appointment, error) {
	appt, err := l.Edit(id, AppointmentPatch{Paid: &paid})
	if err != nil {
		return models.Appointment{}, err
	}
	if paid {
		// Advisory note; the payment flag itself is already persisted.
		err := l.clients.AddComment(appt.ClientID,
			fmt.Sprintf("Received payment of $%.2f for appointment on %s.", appt.Fee, appt.Date))
		if err != nil {
			log.Printf("Failed to record payment note for client %s: %v", appt.ClientID, err)
		}
	}
	return appt, nil
}

// Get returns the appointment with the given id.
func (l *AppointmentLedger) Get(id uuid.UUID) (models.Appointment, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	return l.appointments[i], nil
}

// AppointmentsOn returns the appointments for a date in slot time order.
func (l *AppointmentLedger) AppointmentsOn(date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range l.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b models.Appointment) int {
		return strings.Compare(a.TimeSlot, b.TimeSlot)
	})
	return out
}

// All returns every appointment ordered by date, then slot.
func (l *AppointmentLedger) All() []models.Appointment {
	out := slices.Clone(l.appointments)
	slices.SortFunc(out, func(a, b models.Appointment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.TimeSlot, b.TimeSlot)
	})
	return out
}

// ForClient returns a client's appointments ordered by date, then slot.
func (l *AppointmentLedger) ForClient(clientID uuid.UUID) []models.Appointment {
	var out []models.Appointment
	for _, a := range l.All() {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}

// HasAppointmentsForClient is the directory's referential-integrity check.
func (l *AppointmentLedger) HasAppointmentsForClient(id uuid.UUID) bool {
	return slices.ContainsFunc(l.appointments, func(a models.Appointment) bool {
		return a.ClientID == id
	})
}

// SlotInUse is the registry's referential-integrity check.
func (l *AppointmentLedger) SlotInUse(label string) bool {
	return slices.ContainsFunc(l.appointments, func(a models.Appointment) bool {
		return a.TimeSlot == label
	})
}

func (l *AppointmentLedger) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.appointments, func(a models.Appointment) bool { return a.ID == id })
}

// occupied reports whether some appointment other than exclude holds
// (date, slot).
func (l *AppointmentLedger) occupied(date, slot string, exclude uuid.UUID) bool {
	return slices.ContainsFunc(l.appointments, func(a models.Appointment) bool {
		return a.Date == date && a.TimeSlot == slot && a.ID != exclude
	})
}

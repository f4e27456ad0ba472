package scheduling

import "errors"

// Invariant-protection refusals and missing-entity errors. Callers are
// expected to test with errors.Is and pick a different target or correct
// their input; the core never retries.
var (
	ErrDuplicateSlot         = errors.New("time slot already defined")
	ErrSlotInUse             = errors.New("time slot has booked appointments")
	ErrUnknownSlot           = errors.New("time slot not defined")
	ErrSlotAlreadyBooked     = errors.New("slot already booked for this date")
	ErrUnknownClient         = errors.New("booking references unknown client")
	ErrClientNotFound        = errors.New("client not found")
	ErrClientHasAppointments = errors.New("client has booked appointments")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvalidAmount         = errors.New("amount must be non-negative")
	ErrInvalidRange          = errors.New("start date is after end date")

	// ErrOrphanedAppointment marks an appointment whose client id no longer
	// resolves. It should be unreachable while the directory's delete check
	// holds; it is surfaced instead of dropping the row so corruption is
	// visible.
	ErrOrphanedAppointment = errors.New("appointment references missing client")
)

// ValidationError reports malformed input (empty name, bad date or slot
// format). The caller corrects and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

package scheduling

import "schedulepro-backend/storage"

// System wires the core components over a shared persistence adapter. It is
// the only construction path; each component receives its collaborators
// explicitly, so tests can build isolated instances per case.
type System struct {
	Slots        *TimeSlotRegistry
	Clients      *ClientDirectory
	Appointments *AppointmentLedger
	Availability *AvailabilityQuery
	Reports      *FinancialReportBuilder
}

// NewSystem loads the three collections from the store and wires the
// cross-component referential checks. docs may be nil when document cleanup
// is not configured.
func NewSystem(store storage.Store, docs documentCleaner) (*System, error) {
	slots, err := NewTimeSlotRegistry(store)
	if err != nil {
		return nil, err
	}
	clients, err := NewClientDirectory(store, docs)
	if err != nil {
		return nil, err
	}
	ledger, err := NewAppointmentLedger(store, slots, clients)
	if err != nil {
		return nil, err
	}
	return &System{
		Slots:        slots,
		Clients:      clients,
		Appointments: ledger,
		Availability: NewAvailabilityQuery(slots, ledger),
		Reports:      NewFinancialReportBuilder(ledger, clients),
	}, nil
}

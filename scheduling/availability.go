package scheduling

// AvailabilityQuery is a read-only view over the registry and the ledger.
// Results are recomputed on every call; the datasets are small enough that
// correctness wins over caching.
type AvailabilityQuery struct {
	slots  *TimeSlotRegistry
	ledger *AppointmentLedger
}

func NewAvailabilityQuery(slots *TimeSlotRegistry, ledger *AppointmentLedger) *AvailabilityQuery {
	return &AvailabilityQuery{slots: slots, ledger: ledger}
}

// FreeSlotsOn returns the defined slots with no appointment on the date, in
// time-of-day order. Free and occupied slots always partition the full set.
func (q *AvailabilityQuery) FreeSlotsOn(date string) []string {
	booked := make(map[string]bool)
	for _, a := range q.ledger.AppointmentsOn(date) {
		booked[a.TimeSlot] = true
	}
	var free []string
	for _, slot := range q.slots.ListSlots() {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// IsDateFullyBooked reports whether every defined slot on the date is taken.
// An empty registry is never fully booked.
func (q *AvailabilityQuery) IsDateFullyBooked(date string) bool {
	if len(q.slots.ListSlots()) == 0 {
		return false
	}
	return len(q.FreeSlotsOn(date)) == 0
}

// DayLoad reports booked and total slot counts for the calendar widget.
func (q *AvailabilityQuery) DayLoad(date string) (booked, total int) {
	total = len(q.slots.ListSlots())
	booked = total - len(q.FreeSlotsOn(date))
	return booked, total
}

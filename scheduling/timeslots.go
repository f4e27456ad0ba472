package scheduling

import (
	"slices"

	"schedulepro-backend/models"
	"schedulepro-backend/storage"
)

// slotUsage is the ledger-side referential check the registry needs before
// removing a slot.
type slotUsage interface {
	SlotInUse(label string) bool
}

// TimeSlotRegistry owns the reusable time-of-day labels bookable on any
// date, plus the default session fee. Mutations are write-through: the
// settings collection is persisted before the in-memory state changes.
type TimeSlotRegistry struct {
	store    storage.Store
	settings models.ScheduleSettings
	usage    slotUsage
}

func NewTimeSlotRegistry(store storage.Store) (*TimeSlotRegistry, error) {
	settings, err := store.LoadSettings()
	if err != nil {
		return nil, err
	}
	sortSlots(settings.TimeSlots)
	return &TimeSlotRegistry{store: store, settings: settings}, nil
}

func (r *TimeSlotRegistry) bindUsage(u slotUsage) { r.usage = u }

// DefineSlot adds a new HH:MM label to the registry.
func (r *TimeSlotRegistry) DefineSlot(label string) error {
	if !ValidSlotLabel(label) {
		return validationErr("time_slot", "must be HH:MM, e.g. 09:30")
	}
	if slices.Contains(r.settings.TimeSlots, label) {
		return ErrDuplicateSlot
	}
	next := r.settings
	next.TimeSlots = append(slices.Clone(r.settings.TimeSlots), label)
	sortSlots(next.TimeSlots)
	if err := r.store.SaveSettings(next); err != nil {
		return err
	}
	r.settings = next
	return nil
}

// RemoveSlot deletes a label. It refuses while any appointment on any date
// still references the label.
func (r *TimeSlotRegistry) RemoveSlot(label string) error {
	i := slices.Index(r.settings.TimeSlots, label)
	if i < 0 {
		return ErrUnknownSlot
	}
	if r.usage != nil && r.usage.SlotInUse(label) {
		return ErrSlotInUse
	}
	next := r.settings
	next.TimeSlots = slices.Delete(slices.Clone(r.settings.TimeSlots), i, i+1)
	if err := r.store.SaveSettings(next); err != nil {
		return err
	}
	r.settings = next
	return nil
}

// ReplaceSlots swaps the whole label set, the way the settings form submits
// it. Labels dropped by the replacement are subject to the same in-use check
// as RemoveSlot.
func (r *TimeSlotRegistry) ReplaceSlots(labels []string) error {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if !ValidSlotLabel(l) {
			return validationErr("time_slot", "must be HH:MM, e.g. 09:30")
		}
		if seen[l] {
			return ErrDuplicateSlot
		}
		seen[l] = true
	}
	for _, old := range r.settings.TimeSlots {
		if !seen[old] && r.usage != nil && r.usage.SlotInUse(old) {
			return ErrSlotInUse
		}
	}
	next := r.settings
	next.TimeSlots = slices.Clone(labels)
	sortSlots(next.TimeSlots)
	if err := r.store.SaveSettings(next); err != nil {
		return err
	}
	r.settings = next
	return nil
}

// ListSlots returns the labels in time-of-day order.
func (r *TimeSlotRegistry) ListSlots() []string {
	return slices.Clone(r.settings.TimeSlots)
}

// HasSlot reports whether label is defined.
func (r *TimeSlotRegistry) HasSlot(label string) bool {
	return slices.Contains(r.settings.TimeSlots, label)
}

// SetDefaultFee updates the default session fee applied to new bookings.
func (r *TimeSlotRegistry) SetDefaultFee(amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	next := r.settings
	next.SessionFee = amount
	if err := r.store.SaveSettings(next); err != nil {
		return err
	}
	r.settings = next
	return nil
}

// DefaultFee returns the current default session fee.
func (r *TimeSlotRegistry) DefaultFee() float64 {
	return r.settings.SessionFee
}

// sortSlots orders labels by time-of-day. Labels are zero-padded HH:MM, so
// lexicographic order is time order.
func sortSlots(labels []string) {
	slices.Sort(labels)
}

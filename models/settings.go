package models

// ScheduleSettings is the persisted time-slot registry: the reusable
// time-of-day labels bookable on any date, plus the default session fee.
type ScheduleSettings struct {
	TimeSlots  []string `json:"time_slots"`
	SessionFee float64  `json:"session_fee"`
}

// DefaultSessionFee seeds a fresh installation.
const DefaultSessionFee = 50.00

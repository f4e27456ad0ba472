package scheduling

import (
	"fmt"
	"strings"

	"schedulepro-backend/models"
)

// FinancialReportBuilder derives revenue summaries from the ledger. It is a
// read-only consumer: reports are recomputed from current ledger state on
// every call and never snapshotted.
type FinancialReportBuilder struct {
	ledger  *AppointmentLedger
	clients *ClientDirectory
}

func NewFinancialReportBuilder(ledger *AppointmentLedger, clients *ClientDirectory) *FinancialReportBuilder {
	return &FinancialReportBuilder{ledger: ledger, clients: clients}
}

// Report summarizes the appointments in an inclusive date range.
// TotalRevenue counts every fee regardless of payment status; it always
// equals PaidTotal + UnpaidTotal.
type Report struct {
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	TotalRevenue  float64     `json:"total_revenue"`
	PaidTotal     float64     `json:"total_paid"`
	UnpaidTotal   float64     `json:"total_unpaid"`
	TotalBookings int         `json:"total_bookings"`
	Appointments  []ReportRow `json:"appointments"`
}

// ReportRow is an appointment annotated with the resolved client name.
type ReportRow struct {
	models.Appointment
	ClientName string `json:"client_name"`
}

// BuildReport scans the ledger for appointments with date in [start, end].
// Rows are ordered by date, then slot. An appointment whose client no longer
// resolves aborts the report with ErrOrphanedAppointment instead of being
// dropped.
func (b *FinancialReportBuilder) BuildReport(start, end string) (Report, error) {
	if !ValidDate(start) {
		return Report{}, validationErr("start_date", "must be YYYY-MM-DD")
	}
	if !ValidDate(end) {
		return Report{}, validationErr("end_date", "must be YYYY-MM-DD")
	}
	if strings.Compare(start, end) > 0 {
		return Report{}, ErrInvalidRange
	}

	report := Report{StartDate: start, EndDate: end, Appointments: []ReportRow{}}
	for _, appt := range b.ledger.All() {
		if appt.Date < start || appt.Date > end {
			continue
		}
		client, err := b.clients.Get(appt.ClientID)
		if err != nil {
			return Report{}, fmt.Errorf("%w: appointment %s client %s",
				ErrOrphanedAppointment, appt.ID, appt.ClientID)
		}
		report.Appointments = append(report.Appointments, ReportRow{
			Appointment: appt,
			ClientName:  client.Name,
		})
		report.TotalBookings++
		report.TotalRevenue += appt.Fee
		if appt.Paid {
			report.PaidTotal += appt.Fee
		} else {
			report.UnpaidTotal += appt.Fee
		}
	}
	return report, nil
}

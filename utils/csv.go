// utils/csv.go
package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"schedulepro-backend/models"
	"schedulepro-backend/scheduling"
)

// WriteAppointmentRowsCSV exports client-annotated appointment rows, one
// line per booking.
func WriteAppointmentRowsCSV(w io.Writer, rows []scheduling.ReportRow) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "client_name", "date", "time_slot", "fee", "paid", "comment", "timestamp"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.ID.String(),
			row.ClientName,
			row.Date,
			row.TimeSlot,
			fmt.Sprintf("%.2f", row.Fee),
			fmt.Sprintf("%t", row.Paid),
			row.Comment,
			row.CreatedAt.Format(time.DateTime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteClientsCSV exports the client directory. Comments and document
// references are flattened to one newline-joined cell each.
func WriteClientsCSV(w io.Writer, clients []models.Client) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "registration_date", "name", "dob", "email", "cellphone", "comments", "documents"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range clients {
		comments := make([]string, 0, len(c.Comments))
		for _, cm := range c.Comments {
			comments = append(comments, fmt.Sprintf("[%s] %s", cm.Timestamp.Format(time.DateTime), cm.Text))
		}
		documents := make([]string, 0, len(c.Documents))
		for _, d := range c.Documents {
			documents = append(documents, fmt.Sprintf("[%s] %s", d.UploadedAt.Format(time.DateTime), d.Filename))
		}
		record := []string{
			c.ID.String(),
			c.RegisteredAt.Format(time.DateTime),
			c.Name,
			c.DOB,
			c.Email,
			c.Cellphone,
			strings.Join(comments, "\n"),
			strings.Join(documents, "\n"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

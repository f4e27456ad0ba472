package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedulepro-backend/scheduling"
	"schedulepro-backend/utils"
)

// BookAppointmentInput defines the expected JSON structure for booking
type BookAppointmentInput struct {
	Date     string   `json:"date" binding:"required"`
	TimeSlot string   `json:"time_slot" binding:"required"`
	ClientID string   `json:"client_id" binding:"required"`
	Fee      *float64 `json:"fee"`
	Comment  string   `json:"comment"`
}

// EditAppointmentInput defines the expected JSON structure for editing
type EditAppointmentInput struct {
	Date     *string  `json:"date"`
	TimeSlot *string  `json:"time_slot"`
	Fee      *float64 `json:"fee"`
	Paid     *bool    `json:"paid"`
	Comment  *string  `json:"comment"`
}

type SetPaymentInput struct {
	Paid *bool `json:"paid" binding:"required"`
}

// BookAppointment creates an appointment if the (date, slot) pair is free
func (a *API) BookAppointment(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	clientID, err := uuid.Parse(input.ClientID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	appt, err := a.sys.Appointments.Book(scheduling.BookingInput{
		Date:     input.Date,
		TimeSlot: input.TimeSlot,
		ClientID: clientID,
		Fee:      input.Fee,
		Comment:  input.Comment,
	})
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointments lists appointments; ?date= narrows to one day, otherwise
// all appointments are returned ordered by date then slot
func (a *API) GetAppointments(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if date := c.Query("date"); date != "" {
		if !utils.ValidDate(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, must be YYYY-MM-DD")
			return
		}
		c.JSON(http.StatusOK, a.sys.Appointments.AppointmentsOn(date))
		return
	}
	c.JSON(http.StatusOK, a.sys.Appointments.All())
}

// EditAppointment mutates comment/fee/paid, or reschedules with a fresh
// conflict check
func (a *API) EditAppointment(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	var input EditAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := a.sys.Appointments.Edit(id, scheduling.AppointmentPatch{
		Date:     input.Date,
		TimeSlot: input.TimeSlot,
		Fee:      input.Fee,
		Paid:     input.Paid,
		Comment:  input.Comment,
	})
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// SetAppointmentPayment toggles the paid flag (the check-in flow)
func (a *API) SetAppointmentPayment(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	var input SetPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	appt, err := a.sys.Appointments.SetPaid(id, *input.Paid)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment removes an appointment and frees its slot
func (a *API) CancelAppointment(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	if err := a.sys.Appointments.Cancel(id); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

// ExportAppointmentsCSV exports all appointments with resolved client names
func (a *API) ExportAppointmentsCSV(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows := make([]scheduling.ReportRow, 0)
	for _, appt := range a.sys.Appointments.All() {
		client, err := a.sys.Clients.Get(appt.ClientID)
		if err != nil {
			respondCoreError(c, scheduling.ErrOrphanedAppointment)
			return
		}
		rows = append(rows, scheduling.ReportRow{Appointment: appt, ClientName: client.Name})
	}
	c.Header("Content-Disposition", `attachment; filename="appointments_data.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := utils.WriteAppointmentRowsCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

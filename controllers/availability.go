package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedulepro-backend/utils"
)

// GetAvailability answers "which slots are free on date D" for the calendar
// view, plus the day's load for coloring.
func (a *API) GetAvailability(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, must be YYYY-MM-DD")
		return
	}

	free := a.sys.Availability.FreeSlotsOn(date)
	if free == nil {
		free = []string{}
	}
	booked, total := a.sys.Availability.DayLoad(date)
	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"free_slots":   free,
		"fully_booked": a.sys.Availability.IsDateFullyBooked(date),
		"booked":       booked,
		"total":        total,
	})
}

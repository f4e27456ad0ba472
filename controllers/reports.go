package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedulepro-backend/utils"
)

// GetReport builds the financial report for an inclusive date range.
func (a *API) GetReport(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	report, err := a.sys.Reports.BuildReport(c.Query("start"), c.Query("end"))
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportReportCSV exports the report's appointment rows. Defaults to
// today's report when no range is given, for the end-of-day export.
func (a *API) ExportReportCSV(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		start, end = utils.Today(), utils.Today()
	}
	report, err := a.sys.Reports.BuildReport(start, end)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="report_`+start+`_`+end+`.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := utils.WriteAppointmentRowsCSV(c.Writer, report.Appointments); err != nil {
		_ = c.Error(err)
	}
}

package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"schedulepro-backend/config"
	"schedulepro-backend/controllers"
	"schedulepro-backend/utils"
)

func SetupRouter(api *controllers.API) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/setup", api.Setup)
		auth.POST("/login", api.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", api.Me)
	}

	apiGroup := r.Group("/api")
	apiGroup.Use(utils.AuthMiddleware())
	{
		// Schedule settings: slots + default fee
		schedule := apiGroup.Group("/schedule")
		{
			schedule.GET("", api.GetSchedule)
			schedule.POST("/slots", api.DefineSlot)
			schedule.PUT("/slots", api.ReplaceSlots)
			schedule.DELETE("/slots/:label", api.RemoveSlot)
			schedule.PUT("/fee", api.SetFee)
		}

		// Client routes
		clients := apiGroup.Group("/clients")
		{
			clients.POST("", api.CreateClient)
			clients.GET("", api.GetClients)
			clients.GET("/export", api.ExportClientsCSV)
			clients.GET("/:id", api.GetClient)
			clients.PUT("/:id", api.UpdateClient)
			clients.DELETE("/:id", api.DeleteClient)
			clients.POST("/:id/comments", api.AddClientComment)
			clients.POST("/:id/documents", api.UploadClientDocument)
			clients.GET("/:id/documents/:filename", api.DownloadClientDocument)
		}

		// Appointment routes
		appointments := apiGroup.Group("/appointments")
		{
			appointments.POST("", api.BookAppointment)
			appointments.GET("", api.GetAppointments)
			appointments.GET("/export", api.ExportAppointmentsCSV)
			appointments.PUT("/:id", api.EditAppointment)
			appointments.PUT("/:id/payment", api.SetAppointmentPayment)
			appointments.DELETE("/:id", api.CancelAppointment)
		}

		// Availability + reports (read-only views)
		apiGroup.GET("/availability", api.GetAvailability)
		apiGroup.GET("/reports", api.GetReport)
		apiGroup.GET("/reports/export", api.ExportReportCSV)
	}

	return r
}

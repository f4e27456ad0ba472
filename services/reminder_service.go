// services/reminder_service.go
package services

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"schedulepro-backend/config"
	"schedulepro-backend/scheduling"
	"schedulepro-backend/utils"
)

// ReminderService sends each client an SMS the day before their
// appointment. It is a read-only consumer of the scheduling core; send
// failures are logged and never touch the ledger.
type ReminderService struct {
	sys    *scheduling.System
	client *twilio.RestClient
	from   string
}

func NewReminderService(sys *scheduling.System, cfg config.Config) *ReminderService {
	return &ReminderService{
		sys: sys,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFromNumber,
	}
}

// StartScheduler runs the daily reminder pass every morning at 9 AM.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendUpcomingReminders messages every client booked for tomorrow.
func (s *ReminderService) SendUpcomingReminders() {
	tomorrow := utils.Tomorrow()
	appointments := s.sys.Appointments.AppointmentsOn(tomorrow)
	if len(appointments) == 0 {
		return
	}
	log.Printf("Sending %d appointment reminders for %s", len(appointments), tomorrow)

	for _, appt := range appointments {
		client, err := s.sys.Clients.Get(appt.ClientID)
		if err != nil {
			log.Printf("Appointment %s: client lookup failed: %v", appt.ID, err)
			continue
		}
		if client.Cellphone == "" {
			log.Printf("Client %s has no cellphone, skipping reminder", client.ID)
			continue
		}

		message := fmt.Sprintf("Hi %s, this is a reminder of your appointment tomorrow (%s) at %s.",
			client.Name, appt.Date, appt.TimeSlot)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(client.Cellphone)
		params.SetFrom(s.from)
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", client.Cellphone, err)
			continue
		}
		if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", client.Cellphone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", client.Cellphone)
		}
	}
}

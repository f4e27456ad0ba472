// utils/validation.go
package utils

import (
	"regexp"
	"strings"

	"schedulepro-backend/scheduling"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidTimeSlot checks if a string is an HH:MM time-of-day label
func ValidTimeSlot(label string) bool {
	return scheduling.ValidSlotLabel(label)
}

// ValidDate checks if a string is a YYYY-MM-DD calendar date
func ValidDate(date string) bool {
	return scheduling.ValidDate(date)
}

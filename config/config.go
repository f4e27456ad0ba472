package config

import "os"

// Config carries everything the server reads from the environment. Values
// come from the process env, with a .env file loaded by main beforehand.
type Config struct {
	Port          string
	StorageDriver string // "json" or "postgres"
	DataDir       string
	DocumentsDir  string
	DBURL         string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() Config {
	return Config{
		Port:             Getenv("PORT", "8080"),
		StorageDriver:    Getenv("STORAGE_DRIVER", "json"),
		DataDir:          Getenv("DATA_DIR", "./data"),
		DocumentsDir:     Getenv("DOCUMENTS_DIR", "./client_documents"),
		DBURL:            os.Getenv("DB_URL"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Getenv returns the env value or a fallback when unset.
func Getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

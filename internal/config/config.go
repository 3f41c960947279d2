// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	appErrors "github.com/districtfive/survey-backend/internal/errors"
)

// DBFileName is the SQLite file created under the data directory when no
// DATABASE_URL is configured.
const DBFileName = "survey_responses.db"

// ServerConfig holds everything the survey service reads from the
// environment.
type ServerConfig struct {
	Port        int
	DataDir     string
	DatabaseURL string // Postgres DSN; empty means local SQLite under DataDir
}

// Driver returns the database/sql driver name implied by the config.
func (c ServerConfig) Driver() string {
	if c.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite"
}

// SMSConfig holds the messaging credentials and the survey link placed in
// outbound messages.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	SurveyURL  string
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// LoadServer reads the survey service configuration from the environment.
func LoadServer() (ServerConfig, error) {
	cfg := ServerConfig{
		DataDir:     getenv("DATA_DIR", "data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	portStr := getenv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
	}
	cfg.Port = port

	return cfg, nil
}

// LoadSMS reads the SMS tool configuration. All three Twilio variables are
// required; the tool fails fast when any is absent.
func LoadSMS() (SMSConfig, error) {
	cfg := SMSConfig{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		SurveyURL:  getenv("SURVEY_URL", "http://localhost:5000/survey.html"),
	}

	var missing []string
	if cfg.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if cfg.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if cfg.FromNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}
	if len(missing) > 0 {
		return SMSConfig{}, appErrors.NewConfigurationError(missing)
	}

	return cfg, nil
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MailConfig holds the SMTP settings for outgoing invitation mail.
type MailConfig struct {
	Server        string
	Port          int
	UseTLS        bool
	UseSSL        bool
	Username      string
	Password      string
	DefaultSender string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Port                string
	WSPort              string
	BaseURL             string
	MongoURI            string
	DBName              string
	InviteTTL           time.Duration
	InviteReminderAfter time.Duration
	Mail                MailConfig
}

// Load reads environment variables and returns a fully populated Config.
// Presence of the required variables is checked at startup, before Load.
func Load() Config {
	inviteTTL := 30 * 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("INVITE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			inviteTTL = parsed
		}
	}

	reminderAfter := 7 * 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("INVITE_REMINDER_AFTER")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			reminderAfter = parsed
		}
	}

	mailPort := 587
	if raw := strings.TrimSpace(os.Getenv("MAIL_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			mailPort = parsed
		}
	}

	return Config{
		Port:                envOrDefault("PORT", "8080"),
		WSPort:              envOrDefault("WS_PORT", "8081"),
		BaseURL:             strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		MongoURI:            envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:              envOrDefault("DB_NAME", "anony"),
		InviteTTL:           inviteTTL,
		InviteReminderAfter: reminderAfter,
		Mail: MailConfig{
			Server:        os.Getenv("MAIL_SERVER"),
			Port:          mailPort,
			UseTLS:        strings.EqualFold(os.Getenv("MAIL_USE_TLS"), "true"),
			UseSSL:        strings.EqualFold(os.Getenv("MAIL_USE_SSL"), "true"),
			Username:      os.Getenv("MAIL_USERNAME"),
			Password:      os.Getenv("MAIL_PASSWORD"),
			DefaultSender: os.Getenv("MAIL_DEFAULT_SENDER"),
		},
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

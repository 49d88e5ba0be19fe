package config

import (
	"os"
)

type Config struct {
	Port          string
	DataDir       string
	SessionSecret string
	InviteCode    string
	// Seed accounts, created only when the users collection is empty.
	AdminUsername   string
	AdminPassword   string
	AdminName       string
	StudentUsername string
	StudentPassword string
	StudentName     string
}

func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "5000"),
		DataDir:         getenv("DATA_DIR", "data"),
		SessionSecret:   getenv("SESSION_SECRET", "your-secret-key-here"),
		InviteCode:      getenv("INVITE_CODE", "JOIN2024"),
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		AdminName:       getenv("ADMIN_NAME", "Administrator"),
		StudentUsername: getenv("STUDENT_USERNAME", "student1"),
		StudentPassword: getenv("STUDENT_PASSWORD", "student123"),
		StudentName:     getenv("STUDENT_NAME", "John Doe"),
	}
}

// SecretIsDefault reports whether SESSION_SECRET was left at the dev fallback.
func (c *Config) SecretIsDefault() bool {
	return os.Getenv("SESSION_SECRET") == ""
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

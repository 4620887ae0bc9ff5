package config

import (
	"fmt"
	"os"
)

// Config contiene la configuración de la aplicación, leída del entorno
type Config struct {
	ServerPort string
	CORSOrigin string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

func env(clave, porDefecto string) string {
	if v := os.Getenv(clave); v != "" {
		return v
	}
	return porDefecto
}

// LoadConfig carga la configuración desde variables de entorno
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: env("SERVER_PORT", "4000"),
		CORSOrigin: env("CORS_ORIGIN", "http://localhost:3000"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     env("DB_NAME", "asistencia"),
		DBSSLMode:  env("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      env("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  env("SMTP_FROM_NAME", "Asistencia Técnica"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("la variable JWT_SECRET es requerida")
	}

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión a PostgreSQL
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

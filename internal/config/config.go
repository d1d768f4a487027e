package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port       string `validate:"required,numeric"`
	DbHost     string `validate:"required"`
	DbPort     string `validate:"required,numeric"`
	DbUser     string `validate:"required"`
	DbPass     string
	DbName     string `validate:"required"`
	DbSSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DbMaxConns int32  `validate:"gte=0"`

	Log      string
	LogLevel string `validate:"oneof=debug info warn error"`
	LogDir   string
	Env      string `validate:"oneof=dev test prod"` // dev|test|prod

	CORSOrigins []string
}

var validate = validator.New()

// LoadConfig loads .env, reads the environment and applies defaults.
// It does not log anything so the logger can be built from its result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "9090")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 0)
	v.SetDefault("LOGLEVEL", "info")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("ENV", "prod")
	v.SetDefault("CORS_ORIGINS", "*")

	def := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := &Config{
		Port:       def("PORT"),
		DbHost:     def("DB_HOST"),
		DbPort:     def("DB_PORT"),
		DbUser:     def("DB_USER"),
		DbPass:     v.GetString("DB_PASSWORD"),
		DbName:     def("DB_NAME"),
		DbSSLMode:  strings.ToLower(def("DB_SSLMODE")),
		DbMaxConns: v.GetInt32("DB_MAX_CONNS"),

		Log:      strings.ToLower(def("LOG")),
		LogLevel: strings.ToLower(def("LOGLEVEL")),
		LogDir:   def("LOG_DIR"),
		Env:      strings.ToLower(def("ENV")),

		CORSOrigins: splitCSV(def("CORS_ORIGINS")),
	}

	return cfg, nil
}

// Validate returns non-fatal warnings, or an error when the config is unusable.
func (c *Config) Validate() (warnings []string, err error) {
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if c.DbPass == "" {
		warnings = append(warnings, "DB_PASSWORD is empty")
	}
	if c.Env == "prod" && c.DbSSLMode == "disable" {
		warnings = append(warnings, "DB_SSLMODE is disable in prod")
	}
	if len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*" && c.Env == "prod" {
		warnings = append(warnings, "CORS_ORIGINS allows any origin")
	}

	return warnings, nil
}

// GetDSN returns the full DSN including the password.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe returns the DSN without the password, for logs.
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string // DEV (local; default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		DefaultFromEmail mail.Address
		AlertRecipients  []mail.Address // staff addresses for at-risk alerts
		SendgridAPIKey   string
		RollbarToken     string

		FrontendBaseURL string

		Server   ServerConfig
		Sheet    SheetConfig
		Database DatabaseConfig
		Program  ProgramConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// SheetConfig points at the spreadsheet-as-database endpoint.
	SheetConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}

	// ProgramConfig holds the fixed grading parameters of the cohort program.
	ProgramConfig struct {
		MaxPointsPerCourse int
		// TimezoneOffsetHours pins the civil "today" used by the projection
		// engine; the cohort runs on UTC-6 regardless of where the server runs.
		TimezoneOffsetHours int
	}
)

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Seguimiento")
	v.SetDefault("build", "dev")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("alertRecipients", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("frontendBaseUrl", "http://localhost:3000")

	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", "localhost:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)

	v.SetDefault("sheetBaseUrl", "")
	v.SetDefault("sheetTimeout", 30*time.Second)

	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbName", "seguimiento")
	v.SetDefault("dbUser", "")
	v.SetDefault("dbPassword", "")
	v.SetDefault("dbAdminUser", "")
	v.SetDefault("dbAdminPassword", "")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", 5432)
	v.SetDefault("dbDisableTls", true)

	v.SetDefault("maxPointsPerCourse", 100)
	v.SetDefault("timezoneOffsetHours", -6)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Env:      env,
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),

		DefaultFromEmail: mail.Address{Address: v.GetString("defaultFromEmail")},
		AlertRecipients:  parseAddressList(v.GetString("alertRecipients")),
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),

		FrontendBaseURL: v.GetString("frontendBaseUrl"),

		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Addr:            v.GetString("serverAddr"),
			DebugHost:       v.GetString("serverDebugHost"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Sheet: SheetConfig{
			BaseURL: v.GetString("sheetBaseUrl"),
			Timeout: v.GetDuration("sheetTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("dbEngine"),
			Name:          v.GetString("dbName"),
			User:          v.GetString("dbUser"),
			Password:      v.GetString("dbPassword"),
			AdminUser:     v.GetString("dbAdminUser"),
			AdminPassword: v.GetString("dbAdminPassword"),
			Host:          v.GetString("dbHost"),
			Port:          v.GetInt("dbPort"),
			DisableTLS:    v.GetBool("dbDisableTls"),
		},
		Program: ProgramConfig{
			MaxPointsPerCourse:  v.GetInt("maxPointsPerCourse"),
			TimezoneOffsetHours: v.GetInt("timezoneOffsetHours"),
		},
	}
}

func parseAddressList(s string) []mail.Address {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	addrs := make([]mail.Address, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, mail.Address{Address: p})
		}
	}
	return addrs
}

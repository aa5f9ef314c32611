// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrDBDriver      = errors.New("DB_DRIVER must be one of 'sqlite' or 'postgres'")
)

// Config is the complete runtime configuration.
type Config struct {
	APIURL      *url.URL
	GinMode     string
	LogFormat   string
	Port        string
	CORSOrigins []string
	EnablePprof bool
	Location    *time.Location
	Locale      string
	Currency    string

	Database Database
	Gemini   Gemini
	SMTP     SMTP

	ReconcileInterval time.Duration
	DigestInterval    time.Duration
	NotifyDays        int
}

type Database struct {
	Driver string
	DSN    string
}

type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Enabled reports if an API key is configured.
func (g Gemini) Enabled() bool {
	return g.APIKey != ""
}

type SMTP struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

// Enabled reports if mails can be sent.
func (s SMTP) Enabled() bool {
	return s.Host != "" && len(s.Recipients) > 0
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()

	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "data/gorm.db")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("LOCALE", "es-AR")
	v.SetDefault("CURRENCY", "ARS")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("RECONCILE_INTERVAL", time.Hour)
	v.SetDefault("DIGEST_INTERVAL", 24*time.Hour)
	v.SetDefault("NOTIFY_DAYS", 7)

	if !v.IsSet("API_URL") {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(strings.TrimSuffix(v.GetString("API_URL"), "/"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	driver := v.GetString("DB_DRIVER")
	if driver != "sqlite" && driver != "postgres" {
		return Config{}, ErrDBDriver
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return Config{}, fmt.Errorf("TIMEZONE is not a valid IANA time zone: %w", err)
	}

	return Config{
		APIURL:      apiURL,
		GinMode:     v.GetString("GIN_MODE"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		Port:        v.GetString("PORT"),
		CORSOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof: v.GetBool("ENABLE_PPROF"),
		Location:    loc,
		Locale:      v.GetString("LOCALE"),
		Currency:    v.GetString("CURRENCY"),
		Database: Database{
			Driver: driver,
			DSN:    v.GetString("DB_DSN"),
		},
		Gemini: Gemini{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			Model:   v.GetString("GEMINI_MODEL"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
		},
		SMTP: SMTP{
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			Username:   v.GetString("SMTP_USERNAME"),
			Password:   v.GetString("SMTP_PASSWORD"),
			From:       v.GetString("SMTP_FROM"),
			Recipients: strings.Fields(v.GetString("DIGEST_RECIPIENTS")),
		},
		ReconcileInterval: v.GetDuration("RECONCILE_INTERVAL"),
		DigestInterval:    v.GetDuration("DIGEST_INTERVAL"),
		NotifyDays:        v.GetInt("NOTIFY_DAYS"),
	}, nil
}

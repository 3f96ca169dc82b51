package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken      string `yaml:"slack_bot_token"`
	SlackSigningSecret string `yaml:"slack_signing_secret"`
	DatabasePath       string `yaml:"database_path"`
	Port               string `yaml:"port"`

	StaffDirectoryPath   string `yaml:"staff_directory_path"`
	EquipmentCatalogPath string `yaml:"equipment_catalog_path"`
	ReportsDir           string `yaml:"reports_dir"`

	ReminderTimezone string `yaml:"reminder_timezone"`
	ReminderWeekday  string `yaml:"reminder_weekday"`
	ReminderHour     int    `yaml:"reminder_hour"`

	location *time.Location
	weekday  time.Weekday
}

func defaults() *Config {
	return &Config{
		DatabasePath:         "./staff.db",
		Port:                 "3000",
		StaffDirectoryPath:   "./data/staff.xlsx",
		EquipmentCatalogPath: "./data/equipment.xlsx",
		ReportsDir:           "./reports",
		ReminderTimezone:     domain.DefaultReminderTimezone,
		ReminderWeekday:      strings.ToLower(domain.DefaultReminderWeekday.String()),
		ReminderHour:         domain.DefaultReminderHour,
	}
}

// Load starts from the defaults, applies the YAML file named by CONFIG_FILE and then the environment.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.SlackBotToken = getEnv("SLACK_BOT_TOKEN", cfg.SlackBotToken)
	cfg.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", cfg.SlackSigningSecret)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.StaffDirectoryPath = getEnv("STAFF_DIRECTORY_PATH", cfg.StaffDirectoryPath)
	cfg.EquipmentCatalogPath = getEnv("EQUIPMENT_CATALOG_PATH", cfg.EquipmentCatalogPath)
	cfg.ReportsDir = getEnv("REPORTS_DIR", cfg.ReportsDir)
	cfg.ReminderTimezone = getEnv("REMINDER_TIMEZONE", cfg.ReminderTimezone)
	cfg.ReminderWeekday = getEnv("REMINDER_WEEKDAY", cfg.ReminderWeekday)

	if hour := os.Getenv("REMINDER_HOUR"); hour != "" {
		value, err := strconv.Atoi(hour)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_HOUR %q: %w", hour, err)
		}
		cfg.ReminderHour = value
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.ReminderTimezone)
	if err != nil {
		return fmt.Errorf("invalid reminder timezone %q: %w", c.ReminderTimezone, err)
	}
	c.location = loc

	weekday, ok := domain.WeekdayNames[strings.ToLower(strings.TrimSpace(c.ReminderWeekday))]
	if !ok {
		return fmt.Errorf("invalid reminder weekday %q", c.ReminderWeekday)
	}
	c.weekday = weekday

	if c.ReminderHour < 0 || c.ReminderHour > 23 {
		return fmt.Errorf("invalid reminder hour %d", c.ReminderHour)
	}

	return nil
}

// Location is the zone of the reminder schedule and of "today" in dialogues
func (c *Config) Location() *time.Location {
	return c.location
}

func (c *Config) Weekday() time.Weekday {
	return c.weekday
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

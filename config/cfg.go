package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/Vaishnavi639/DailyDashboard/internal/api/http"
	"github.com/Vaishnavi639/DailyDashboard/internal/dailyreport"
	"github.com/Vaishnavi639/DailyDashboard/internal/mail"
	"github.com/Vaishnavi639/DailyDashboard/internal/store"
	"github.com/Vaishnavi639/DailyDashboard/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	PrimaryDB    store.Config       `mapstructure:"primary_db"`
	ContactsDB   store.Config       `mapstructure:"contacts_db"`
	Logger       log.Config         `mapstructure:"logger"`
	HTTP         httpapi.Config     `mapstructure:"http"`
	Mailer       mail.Config        `mapstructure:"mailer"`
	ReportWorker dailyreport.Config `mapstructure:"report_worker"`
	// Channels overrides or extends the built-in channel id mapping.
	Channels map[string]string `mapstructure:"channels"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file
// values; nested config keys use double underscore, e.g.
// PRIMARY_DB__DSN for primary_db.dsn.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/daily-dashboard")
		viper.AddConfigPath("/etc/daily-dashboard")
		// Config file is optional; env vars alone can carry the config.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.PrimaryDB.DSN == "" {
		return nil, fmt.Errorf("primary_db.dsn is required")
	}
	if config.ContactsDB.DSN == "" {
		return nil, fmt.Errorf("contacts_db.dsn is required")
	}

	return &config, nil
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars() {
	// Primary transactional store
	viper.BindEnv("primary_db.dsn", "PRIMARY_DB_DSN")
	viper.BindEnv("primary_db.max_open_connections", "PRIMARY_DB_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("primary_db.max_idle_connections", "PRIMARY_DB_MAX_IDLE_CONNECTIONS")

	// Contacts store
	viper.BindEnv("contacts_db.dsn", "CONTACTS_DB_DSN")
	viper.BindEnv("contacts_db.max_open_connections", "CONTACTS_DB_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("contacts_db.max_idle_connections", "CONTACTS_DB_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Mailer
	viper.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	viper.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	viper.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")

	// Report worker
	viper.BindEnv("report_worker.worker_interval", "REPORT_WORKER_INTERVAL")
}

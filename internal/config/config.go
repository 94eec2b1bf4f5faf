package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Airtable Airtable `mapstructure:",squash"`
	Google   Google   `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Airtable struct {
	BaseURL   string `mapstructure:"airtable_base_url"`
	Token     string `mapstructure:"airtable_token"`
	BaseID    string `mapstructure:"airtable_base_id"`
	TableName string `mapstructure:"airtable_table_name"`
	URL       string `mapstructure:"-"`
}

type Google struct {
	SpreadsheetID   string `mapstructure:"google_spreadsheet_id"`
	CredentialsPath string `mapstructure:"google_credentials_path"`
}

type Sync struct {
	CronSchedule       string `mapstructure:"sync_cron"`
	LookbackHours      int    `mapstructure:"sync_lookback_hours"`
	RequestDelayMillis int    `mapstructure:"sync_request_delay_millis"`
}

func SetDefaults() {
	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	// Registrado vazio para o viper conhecer a chave e ler do ambiente;
	// Validate() rejeita quando continua vazio
	viper.SetDefault("META_ACCESS_TOKEN", "")

	viper.SetDefault("AIRTABLE_BASE_URL", "https://api.airtable.com/v0")
	viper.SetDefault("AIRTABLE_TOKEN", "")
	viper.SetDefault("AIRTABLE_BASE_ID", "")
	viper.SetDefault("AIRTABLE_TABLE_NAME", "")

	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_PATH", "google_credentials.json")

	// Defaults para o modo daemon
	viper.SetDefault("SYNC_CRON", "0 */12 * * *") // A cada 12 horas
	viper.SetDefault("SYNC_LOOKBACK_HOURS", 12)
	viper.SetDefault("SYNC_REQUEST_DELAY_MILLIS", 50)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Airtable.URL = fmt.Sprintf(
		"%s/%s/%s",
		config.Airtable.BaseURL,
		config.Airtable.BaseID,
		config.Airtable.TableName,
	)

	return config, nil
}

// Validate verifica as variáveis obrigatórias antes de qualquer chamada de
// rede. Retorna um erro único listando todas as variáveis ausentes.
func (c *Config) Validate() error {
	var missing []string

	if c.Meta.AccessToken == "" {
		missing = append(missing, "META_ACCESS_TOKEN")
	}
	if c.Airtable.Token == "" {
		missing = append(missing, "AIRTABLE_TOKEN")
	}
	if c.Airtable.BaseID == "" {
		missing = append(missing, "AIRTABLE_BASE_ID")
	}
	if c.Airtable.TableName == "" {
		missing = append(missing, "AIRTABLE_TABLE_NAME")
	}
	if c.Google.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SPREADSHEET_ID")
	}
	if c.Google.CredentialsPath == "" {
		missing = append(missing, "GOOGLE_CREDENTIALS_PATH")
	}

	if len(missing) > 0 {
		return &domain.ConfigurationError{
			Err: fmt.Errorf("variáveis de ambiente obrigatórias ausentes: %s", strings.Join(missing, ", ")),
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}

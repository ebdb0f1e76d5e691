package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Catalog           Catalog           `mapstructure:",squash"`
	Gemini            Gemini            `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	TrackedSkuRefresh TrackedSkuRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Catalog struct {
	HistoryDays int `mapstructure:"history_days"`
}

type Gemini struct {
	BaseURL string `mapstructure:"gemini_base_url"`
	Model   string `mapstructure:"gemini_model"`
	APIKey  string `mapstructure:"gemini_api_key"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	AdminName     string `mapstructure:"admin_name"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type TrackedSkuRefresh struct {
	CronSchedule        string `mapstructure:"tracked_sku_refresh_cron"`
	RequestDelaySeconds int    `mapstructure:"tracked_sku_refresh_request_delay_seconds"`
	Enabled             bool   `mapstructure:"tracked_sku_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Comprimento padrão dos históricos sintéticos gerados na montagem do catálogo
	viper.SetDefault("HISTORY_DAYS", 365)

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "") // Sem chave, as rotas de IA respondem com erro amigável

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("ADMIN_NAME", "Administrador")
	viper.SetDefault("ADMIN_EMAIL", "admin@pricemonitor.local")
	viper.SetDefault("ADMIN_PASSWORD", "admin123") // ONLY LOCAL

	// Defaults para a re-coleta agendada de SKUs rastreados
	viper.SetDefault("TRACKED_SKU_REFRESH_CRON", "0 7 * * *")         // Todos os dias às 7h da manhã
	viper.SetDefault("TRACKED_SKU_REFRESH_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre coletas
	viper.SetDefault("TRACKED_SKU_REFRESH_ENABLED", false)           // Habilitar a re-coleta agendada
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	DailyAdvisorySync DailyAdvisorySync `mapstructure:",squash"`
	Loader            Loader            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN            string        `mapstructure:"-"`
	Driver         string        `mapstructure:"database_driver"`
	Password       string        `mapstructure:"database_password"`
	URL            string        `mapstructure:"database_url"`
	User           string        `mapstructure:"database_user"`
	MaxOpenConns   int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns   int           `mapstructure:"database_max_idle_conns"`
	ConnectTimeout time.Duration `mapstructure:"database_connect_timeout"`
	AutoMigrate    bool          `mapstructure:"database_auto_migrate"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type DailyAdvisorySync struct {
	CronSchedule      string `mapstructure:"daily_advisory_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"daily_advisory_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"daily_advisory_sync_enabled"`
}

type Loader struct {
	CSVPath string `mapstructure:"csv_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/advisor?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "30s")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Recomendações diárias de todas as contas
	viper.SetDefault("DAILY_ADVISORY_SYNC_CRON", "0 7 * * *")      // Todos os dias às 7h da manhã
	viper.SetDefault("DAILY_ADVISORY_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 contas processadas em paralelo
	viper.SetDefault("DAILY_ADVISORY_SYNC_ENABLED", false)         // Habilitar geração diária

	viper.SetDefault("CSV_PATH", "data/business_data.csv")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

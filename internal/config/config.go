package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Team           Team           `mapstructure:",squash"`
	SnapshotBackup SnapshotBackup `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Team define o workspace compartilhado do time de tráfego e quem pode
// entrar nele. O cadastro é fechado: apenas e-mails da lista autorizada.
type Team struct {
	WorkspaceID      string   `mapstructure:"team_workspace_id"`
	AuthorizedEmails []string `mapstructure:"team_authorized_emails"`
}

// SnapshotBackup controla o job diário de cópia do estado do workspace
type SnapshotBackup struct {
	CronSchedule string `mapstructure:"snapshot_backup_cron"`
	Retention    int    `mapstructure:"snapshot_backup_retention"`
	Enabled      bool   `mapstructure:"snapshot_backup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/command_center")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("TEAM_WORKSPACE_ID", "infinity")
	viper.SetDefault("TEAM_AUTHORIZED_EMAILS", "")

	// Defaults do backup diário do workspace
	viper.SetDefault("SNAPSHOT_BACKUP_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_BACKUP_RETENTION", 7)      // Últimos 7 backups
	viper.SetDefault("SNAPSHOT_BACKUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita configurações sem workspace ou sem lista de e-mails
// autorizados: o centro de comando não opera aberto.
func (c *Config) Validate() error {
	if c.Team.WorkspaceID == "" {
		return errors.New("configuração inválida: TEAM_WORKSPACE_ID é obrigatório")
	}
	if len(c.Team.AuthorizedEmails) == 0 || (len(c.Team.AuthorizedEmails) == 1 && c.Team.AuthorizedEmails[0] == "") {
		return errors.New("configuração inválida: TEAM_AUTHORIZED_EMAILS é obrigatório")
	}
	return nil
}

// IsEmailAuthorized verifica se o e-mail pertence à lista do time
func (c *Config) IsEmailAuthorized(email string) bool {
	for _, authorized := range c.Team.AuthorizedEmails {
		if authorized == email {
			return true
		}
	}
	return false
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

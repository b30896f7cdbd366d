package store

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where and how the journal is persisted.
type Config interface {
	BasePath() string
	Backend() string
	User() string
	DSN() string
}

const (
	BackendLocal    = "local"
	BackendPostgres = "postgres"
)

// LoadConfig reads a .moodlog config file plus MOODLOG_* environment
// variables. Missing config files are fine; defaults apply.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetDefault("backend", BackendLocal)
	viper.SetDefault("user", "default")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:        path,
		BackendName: viper.GetString("backend"),
		UserID:      viper.GetString("user"),
		PostgresDSN: os.Getenv("MOODLOG_POSTGRES_DSN"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	UserID      string `json:"user"`
	PostgresDSN string `json:"-"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Backend() string  { return f.BackendName }
func (f *fileConfig) User() string     { return f.UserID }
func (f *fileConfig) DSN() string      { return f.PostgresDSN }

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	PlanPath    string
	Format      string
	DatabaseURL string
	IndentWidth int
	Debug       bool
}

// LoadConfig loads configuration from config files, environment variables
// and .env files
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".planguard")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "planguard"))

	// Set environment variable prefix
	viper.SetEnvPrefix("PLANGUARD")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("plan_path", "migration.plan")
	viper.SetDefault("format", "text")
	viper.SetDefault("indent_width", 2)
	viper.SetDefault("debug", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		PlanPath:    viper.GetString("plan_path"),
		Format:      viper.GetString("format"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		IndentWidth: viper.GetInt("indent_width"),
		Debug:       viper.GetBool("debug"),
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("plan_path", cfg.PlanPath)
	viper.Set("format", cfg.Format)
	viper.Set("indent_width", cfg.IndentWidth)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "planguard")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".planguard.yaml")
	return viper.WriteConfigAs(configFile)
}

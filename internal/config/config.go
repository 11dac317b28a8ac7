package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	SecretKey     string `mapstructure:"SECRET_KEY"`
	GiftRecipient string `mapstructure:"GIFT_RECIPIENT"`
	GiftIBAN      string `mapstructure:"GIFT_IBAN"`
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DATABASE_PATH", "web/static/data/gameface.db")
	viper.SetDefault("UPLOAD_DIR", "web/static/images")
	viper.SetDefault("SECRET_KEY", "local-secret-key")
	viper.SetDefault("GIFT_RECIPIENT", "GameFace Team")
	viper.SetDefault("GIFT_IBAN", "TR00 0000 0000 0000 0000 0000 00")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Warn(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"log"

	"github.com/spf13/viper"
)

// JWTConfig holds one signing secret per token kind. A token must only
// ever be verified against the secret of its own kind.
type JWTConfig struct {
	AccessSecret         string `mapstructure:"access_secret"`
	RefreshSecret        string `mapstructure:"refresh_secret"`
	EmailVerifySecret    string `mapstructure:"email_verify_secret"`
	ForgotPasswordSecret string `mapstructure:"forgot_password_secret"`
}

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	JWT JWTConfig `mapstructure:"jwt"`
	// PasswordSecret is the process-wide salt for the password digest.
	// Changing it invalidates every stored password.
	PasswordSecret string `mapstructure:"password_secret"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

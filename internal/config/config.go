package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Telegram TelegramConfig
	Admin    AdminConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig locates the local key-value store file.
type StoreConfig struct {
	Path string
}

// TelegramConfig holds the notification endpoint settings. Both order and
// support alerts go to the same bot chat.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type AdminConfig struct {
	Password  string
	JWTSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORE_PATH", "gold-store.db")
	viper.SetDefault("ADMIN_PASSWORD", "1234")
	viper.SetDefault("ADMIN_JWT_SECRET", "dev-secret")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Telegram: TelegramConfig{
			BotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:   viper.GetString("TELEGRAM_CHAT_ID"),
		},
		Admin: AdminConfig{
			Password:  viper.GetString("ADMIN_PASSWORD"),
			JWTSecret: viper.GetString("ADMIN_JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}

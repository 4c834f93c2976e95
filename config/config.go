package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	AI          AI
	Auth        Auth
	Environment string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type AI struct {
	OpenAIApiKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiApiKey  string
}

type Auth struct {
	// JWTSecret is the shared secret the BaaS signs session tokens with.
	JWTSecret string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("ENVIRONMENT", "development")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.AI.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.AI.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	config.AI.OpenAIModel = viper.GetString("OPENAI_MODEL")
	config.AI.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	config.Auth.JWTSecret = viper.GetString("SUPABASE_JWT_SECRET")
	config.Environment = viper.GetString("ENVIRONMENT")

	log.Info().Str("port", config.Server.Port).Str("environment", config.Environment).Msg("Config loaded")
	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

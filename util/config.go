package util

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings, read from app.env and the environment.
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`

	// QuizTTL is how long a parsed or imported quiz is kept.
	QuizTTL time.Duration `mapstructure:"QUIZ_TTL"`

	// QuizStrictMarkers drops questions whose correctness letter is not a..d
	// instead of marking "a" as correct.
	QuizStrictMarkers bool `mapstructure:"QUIZ_STRICT_MARKERS"`

	// MaxWarnings caps the parser warnings returned to the client.
	MaxWarnings int `mapstructure:"MAX_WARNINGS"`
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("QUIZ_TTL", time.Hour)
	v.SetDefault("MAX_WARNINGS", 50)

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}

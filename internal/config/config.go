package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	ImageKit ImageKitConfig `mapstructure:"imagekit"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

// AuthConfig holds the HS256 secret shared with the identity provider. Tokens
// are issued by the provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type ImageKitConfig struct {
	PublicKey   string        `mapstructure:"public_key"`
	PrivateKey  string        `mapstructure:"private_key"`
	URLEndpoint string        `mapstructure:"url_endpoint"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("imagekit.token_ttl", 30*time.Minute)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is built once at startup and passed explicitly to whoever needs it.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	LLM struct {
		BaseURL string        `mapstructure:"base_url"`
		Model   string        `mapstructure:"model"`
		APIKey  string        `mapstructure:"api_key"`
		Timeout time.Duration `mapstructure:"timeout"` // 0 = no client timeout
	} `mapstructure:"llm"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowOrigins []string `mapstructure:"allow_origins"` // empty = all origins
	} `mapstructure:"cors"`
}

const envPrefix = "COACH"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8000")
	v.SetDefault("llm.base_url", "http://127.0.0.1:5000/v1")
	v.SetDefault("llm.model", "Qwen3-14B-Q6_K.gguf")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout", time.Duration(0))
	v.SetDefault("log.level", "debug")
	v.SetDefault("cors.allow_origins", []string{})
}

// Load reads .env (if any), then dir/config.yaml (if any), then COACH_* env overrides.
func Load(dir string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		return errors.New("llm.base_url is required")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model is required")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

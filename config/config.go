package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"search-agent-system/pkg/lmstudio"
)

// Config holds all service configuration. It is built once at startup and
// passed explicitly into constructors; nothing reads the environment later.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Language model endpoint
	LLM LLMConfig

	// Data source credentials. A missing credential is not fatal:
	// the affected agent reports it when invoked.
	CoinGecko    CoinGeckoConfig
	AlphaVantage AlphaVantageConfig
	OpenWeather  OpenWeatherConfig
	GoogleSearch GoogleSearchConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig points at the local OpenAI-compatible inference server.
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type CoinGeckoConfig struct {
	BaseURL string
}

type AlphaVantageConfig struct {
	APIKey string
}

type OpenWeatherConfig struct {
	APIKey string
}

type GoogleSearchConfig struct {
	APIKey   string
	EngineID string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Language model
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	if endpoint := viper.GetString("llm_endpoint"); endpoint != "" {
		cfg.LLM.BaseURL = endpoint
	}

	timeoutRaw := viper.GetString("llm.timeout")
	timeout, err := time.ParseDuration(timeoutRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid llm.timeout %q: %w", timeoutRaw, err)
	}
	if timeout > lmstudio.MaxTimeout {
		return nil, fmt.Errorf("llm.timeout %s exceeds the %s ceiling", timeout, lmstudio.MaxTimeout)
	}
	cfg.LLM.Timeout = timeout

	// Data sources. The nested keys double as the conventional flat env
	// names through the "." -> "_" replacer: alphavantage.api_key is
	// ALPHAVANTAGE_API_KEY, search.engine_id is SEARCH_ENGINE_ID.
	cfg.CoinGecko.BaseURL = viper.GetString("coingecko.base_url")
	cfg.AlphaVantage.APIKey = viper.GetString("alphavantage.api_key")
	cfg.OpenWeather.APIKey = viper.GetString("openweather.api_key")
	cfg.GoogleSearch.APIKey = viper.GetString("google.api_key")
	cfg.GoogleSearch.EngineID = viper.GetString("search.engine_id")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("llm.base_url", lmstudio.DefaultBaseURL)
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.timeout", "10s")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"search-agent-system/config"
	"search-agent-system/internal/agents"
	"search-agent-system/internal/assistant"
	"search-agent-system/internal/dispatcher"
	"search-agent-system/internal/httpserver"
	"search-agent-system/internal/router"
	"search-agent-system/internal/summary"
	"search-agent-system/pkg/alphavantage"
	"search-agent-system/pkg/coingecko"
	"search-agent-system/pkg/lmstudio"
	"search-agent-system/pkg/log"
	"search-agent-system/pkg/openweather"
	"search-agent-system/pkg/websearch"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Search Agent System...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "LLM endpoint: %s", cfg.LLM.BaseURL)

	// 3. Assistant pipeline
	assistantUC, err := buildAssistant(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildAssistant wires the classify -> parse -> route pipeline from config.
func buildAssistant(ctx context.Context, logger log.Logger, cfg *config.Config) (assistant.UseCase, error) {
	llm, err := lmstudio.New(lmstudio.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, err
	}

	// Data source clients. A web search client is only built when
	// credentials exist; the agent reports the missing key otherwise.
	coinClient := coingecko.NewClient(cfg.CoinGecko.BaseURL)
	stockClient := alphavantage.NewClient(cfg.AlphaVantage.APIKey, "")
	weatherClient := openweather.NewClient(cfg.OpenWeather.APIKey, "")

	var searchClient *websearch.Client
	if cfg.GoogleSearch.APIKey != "" && cfg.GoogleSearch.EngineID != "" {
		searchClient, err = websearch.NewClient(ctx, cfg.GoogleSearch.APIKey, cfg.GoogleSearch.EngineID)
		if err != nil {
			logger.Warnf(ctx, "Web search not available (optional): %v", err)
			searchClient = nil
		}
	}

	cryptoAgent := agents.NewCryptoAgent(coinClient, logger)
	stockAgent := agents.NewStockAgent(cfg.AlphaVantage.APIKey, stockClient, logger)
	weatherAgent := agents.NewWeatherAgent(cfg.OpenWeather.APIKey, weatherClient, logger)
	webAgent := agents.NewWebAgent(searchClient, logger)

	classifier := router.New(llm, logger)
	summarizer := summary.New(llm, logger)
	d := dispatcher.New(logger, cryptoAgent, stockAgent, weatherAgent, webAgent, summarizer)

	return assistant.New(logger, classifier, d), nil
}

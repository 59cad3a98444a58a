package glm

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the GLM (ZhipuAI) client.
type Config struct {
	APIKey      string        // if empty, falls back to env ZHIPUAI_API_KEY
	BaseURL     string        // default https://open.bigmodel.cn/api/paas/v4
	Model       string        // e.g. "glm-4.5"
	Temperature float32       // 0..1
	MaxTokens   int           // output token bound
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ZHIPUAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://open.bigmodel.cn/api/paas/v4"
	}
	if cfg.Model == "" {
		cfg.Model = "glm-4.5"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.3
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

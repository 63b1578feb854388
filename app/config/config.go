package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	OpenAI OpenAI `yaml:"openai"`
	News   News   `yaml:"news"`
	Search Search `yaml:"search"`
	Server Server `yaml:"server"`
	Bot    Bot    `yaml:"bot"`
}

type OpenAI struct {
	// OpenAI-compatible base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1" validate:"omitempty,url"`
	// OpenAI token, may also be set via OPENAI_API_KEY.
	// When empty, LLM-backed steps degrade to deterministic output.
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// Chat completion model
	Model string `yaml:"model" example:"gpt-4o-mini"`
}

type News struct {
	// NewsAPI key, may also be set via NEWS_API_KEY.
	// When empty, news collection uses simulated articles.
	APIKey string `yaml:"api_key" example:"1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d"`
	// NewsAPI base url
	BaseURL string `yaml:"base_url" example:"https://newsapi.org/v2" validate:"omitempty,url"`
}

type Search struct {
	// MediaWiki API base url
	WikipediaBaseURL string `yaml:"wikipedia_base_url" example:"https://en.wikipedia.org" validate:"omitempty,url"`
	// DuckDuckGo instant answer base url
	DuckDuckGoBaseURL string `yaml:"duckduckgo_base_url" example:"https://api.duckduckgo.com" validate:"omitempty,url"`
	// HTTP timeout for search clients in seconds
	TimeoutSeconds int `yaml:"timeout_seconds" example:"30"`
}

type Server struct {
	// Dashboard listen address
	Listen string `yaml:"listen" example:":8080"`
}

type Bot struct {
	// Optional MCP stdio servers providing extra tools for the knowledge bot
	MCPServers []MCPServer `yaml:"mcp_servers"`
}

type MCPServer struct {
	Name    string   `yaml:"name" validate:"required"`
	Command string   `yaml:"command" validate:"required"`
	Args    []string `yaml:"args"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, oops.Errorf("failed to read config file: %w", err)
		}
		// no config file is fine: everything degrades to local data
	} else if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if token := os.Getenv("OPENAI_API_KEY"); token != "" {
		result.OpenAI.Token = token
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		result.News.APIKey = key
	}

	if result.OpenAI.BaseURL == "" {
		result.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if result.OpenAI.Model == "" {
		result.OpenAI.Model = "gpt-4o-mini"
	}
	if result.News.BaseURL == "" {
		result.News.BaseURL = "https://newsapi.org/v2"
	}
	if result.Search.WikipediaBaseURL == "" {
		result.Search.WikipediaBaseURL = "https://en.wikipedia.org"
	}
	if result.Search.DuckDuckGoBaseURL == "" {
		result.Search.DuckDuckGoBaseURL = "https://api.duckduckgo.com"
	}
	if result.Search.TimeoutSeconds == 0 {
		result.Search.TimeoutSeconds = 30
	}
	if result.Server.Listen == "" {
		result.Server.Listen = ":8080"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

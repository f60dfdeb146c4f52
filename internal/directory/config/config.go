package config

import (
	"time"

	"fund-directory/pkg/common"
	"fund-directory/pkg/config"
)

// Snapshot source kinds.
const (
	SourceFile     = "file"
	SourceURL      = "url"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// Snapshot holds settings for locating, caching and refreshing the directory snapshot.
type Snapshot struct {
	Source      string        `mapstructure:"source"`
	FilePath    string        `mapstructure:"file_path"`
	URL         string        `mapstructure:"url"`
	RedisKey    string        `mapstructure:"redis_key"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	RefreshCron string        `mapstructure:"refresh_cron"`
	Watch       bool          `mapstructure:"watch"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Feed holds the RSS channel metadata.
type Feed struct {
	SiteURL     string `mapstructure:"site_url"`
	FeedPath    string `mapstructure:"feed_path"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Language    string `mapstructure:"language"`
	ImageURL    string `mapstructure:"image_url"`
}

// RateLimit configures the public API token bucket.
type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Telegram holds configuration for the health alert notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the directory service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Snapshot  Snapshot        `mapstructure:"snapshot"`
	Feed      Feed            `mapstructure:"feed"`
	RateLimit RateLimit       `mapstructure:"rate_limit"`
	Telegram  Telegram        `mapstructure:"telegram"`
}

// Load loads the directory service configuration from the given path.
func Load(path string) (*Config, error) {
	cfg := Config{
		Snapshot: Snapshot{
			Source:      SourceFile,
			FilePath:    common.SnapshotFilePath,
			RedisKey:    common.SnapshotRedisKey,
			RefreshCron: "@every 15m",
			HTTPTimeout: 10 * time.Second,
		},
		Feed: Feed{
			FeedPath:    "/feed.xml",
			Title:       "Fund Directory - Latest Fund Announcements",
			Description: "The most recent fund closings, launches and raises.",
			Language:    "en-us",
		},
		RateLimit: RateLimit{
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Logger: config.Logger{Level: "info", Encoding: "json"},
		API:    config.API{Port: 8080},
	}
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package config loads application settings from environment
// variables and an optional .env file.
package config

import (
	"github.com/spf13/viper"

	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Settings holds all application configuration
type Settings struct {
	// Download
	DownloadDir    string
	AllowVideoOnly bool // adaptive video-only fallback, batch CLI only

	// Server
	ServerPort          string
	RateLimitRPS        float64
	RateLimitBurst      int
	InfoCacheTTLSeconds int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Settings, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	viper.SetDefault("DOWNLOAD_DIR", platform.DefaultDownloadDir)
	viper.SetDefault("ALLOW_VIDEO_ONLY", true)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("INFO_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("LOG_LEVEL", "info")

	settings := &Settings{
		DownloadDir:         viper.GetString("DOWNLOAD_DIR"),
		AllowVideoOnly:      viper.GetBool("ALLOW_VIDEO_ONLY"),
		ServerPort:          viper.GetString("SERVER_PORT"),
		RateLimitRPS:        viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:      viper.GetInt("RATE_LIMIT_BURST"),
		InfoCacheTTLSeconds: viper.GetInt("INFO_CACHE_TTL_SECONDS"),
		LogLevel:            viper.GetString("LOG_LEVEL"),
	}

	return settings, nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DownloaderYTDLP  = "ytdlp"
	DownloaderNative = "native"

	WhisperLocal  = "local"
	WhisperOpenAI = "openai"
)

type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	Downloader  DownloaderConfig  `yaml:"downloader"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
}

type TelegramConfig struct {
	PollTimeout int  `yaml:"poll_timeout" validate:"min=1"`
	Debug       bool `yaml:"debug"`

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// shutdown signal. Zero waits for all of them.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DownloaderConfig struct {
	Backend    string `yaml:"backend" validate:"oneof=ytdlp native"`
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
}

type WhisperConfig struct {
	Backend       string `yaml:"backend" validate:"oneof=local openai"`
	ModelPath     string `yaml:"model_path"`
	BinaryPath    string `yaml:"binary_path"`
	Language      string `yaml:"language"`
	Prompt        string `yaml:"prompt"`
	Threads       int    `yaml:"threads" validate:"min=1"`
	OpenAIModel   string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Bitrate    string `yaml:"bitrate"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type PerformanceConfig struct {
	MaxConcurrent  int           `yaml:"max_concurrent" validate:"min=1"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type OutputConfig struct {
	SendTranscript bool `yaml:"send_transcript"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate fills defaults for every optional field, then checks the result.
func (c *Config) Validate() error {
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 60
	}

	if c.Downloader.Backend == "" {
		c.Downloader.Backend = DownloaderYTDLP
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.Format == "" {
		c.Downloader.Format = "bestaudio/best"
	}

	if c.Whisper.Backend == "" {
		c.Whisper.Backend = WhisperLocal
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.OpenAIModel == "" {
		c.Whisper.OpenAIModel = "whisper-1"
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.Bitrate == "" {
		c.FFmpeg.Bitrate = "32k"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "./downloads"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	if err := validator.New().Struct(c); err != nil {
		return err
	}

	return nil
}

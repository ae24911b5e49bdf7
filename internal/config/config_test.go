package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "native downloader with openai whisper",
			config: Config{
				Downloader: DownloaderConfig{Backend: DownloaderNative},
				Whisper:    WhisperConfig{Backend: WhisperOpenAI},
			},
			wantErr: false,
		},
		{
			name: "unknown downloader backend",
			config: Config{
				Downloader: DownloaderConfig{Backend: "curl"},
			},
			wantErr: true,
		},
		{
			name: "unknown whisper backend",
			config: Config{
				Whisper: WhisperConfig{Backend: "vosk"},
			},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			config: Config{
				Logging: LoggingConfig{Level: "trace"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Downloads != "./downloads" {
		t.Errorf("Downloads = %v, want %v", cfg.Paths.Downloads, "./downloads")
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 1)
	}
	if cfg.Whisper.ModelPath != "models/ggml-base.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-base.bin")
	}
	if cfg.Downloader.Format != "bestaudio/best" {
		t.Errorf("Format = %v, want %v", cfg.Downloader.Format, "bestaudio/best")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-flash")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
downloader:
  backend: "native"

whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"
  threads: 8

paths:
  downloads: "data/downloads"

logging:
  level: "debug"
  format: "json"

performance:
  max_concurrent: 2
  request_timeout: "15m"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Downloader.Backend != DownloaderNative {
		t.Errorf("Backend = %v, want %v", cfg.Downloader.Backend, DownloaderNative)
	}
	if cfg.Paths.Downloads != "data/downloads" {
		t.Errorf("Downloads = %v, want %v", cfg.Paths.Downloads, "data/downloads")
	}
	if cfg.Performance.RequestTimeout != 15*time.Minute {
		t.Errorf("RequestTimeout = %v, want %v", cfg.Performance.RequestTimeout, 15*time.Minute)
	}
	if cfg.Whisper.Backend != WhisperLocal {
		t.Errorf("Whisper backend = %v, want %v", cfg.Whisper.Backend, WhisperLocal)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("whisper:\n  backend: \"vosk\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown whisper backend")
	}
}

package config

import (
	"fmt"
	"strings"
)

const (
	BackendWhisper = "whisper"
	BackendOpenAI  = "openai"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Paths         PathsConfig         `yaml:"paths"`
	Database      DatabaseConfig      `yaml:"database"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Report        ReportConfig        `yaml:"report"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	CORSOrigins  []string `yaml:"cors_origins"`
	MaxUploadMB  int64    `yaml:"max_upload_mb"`
	ShutdownSecs int      `yaml:"shutdown_secs"`
}

type PathsConfig struct {
	AudioScratch  string `yaml:"audio_scratch"`
	ReportScratch string `yaml:"report_scratch"`
	Inbox         string `yaml:"inbox"`
	Archived      string `yaml:"archived"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type TranscriptionConfig struct {
	Backend string `yaml:"backend"`
	Preload bool   `yaml:"preload"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	BeamSize   int    `yaml:"beam_size"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type ReportConfig struct {
	FontPath       string `yaml:"font_path"`
	FontFamily     string `yaml:"font_family"`
	FallbackFamily string `yaml:"fallback_family"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate checks required fields and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendWhisper
	}
	c.Transcription.Backend = strings.ToLower(c.Transcription.Backend)

	switch c.Transcription.Backend {
	case BackendWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for the openai backend")
		}
	default:
		return fmt.Errorf("transcription.backend %q is not supported", c.Transcription.Backend)
	}

	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 512
	}
	if c.Server.ShutdownSecs == 0 {
		c.Server.ShutdownSecs = 15
	}
	if c.Paths.AudioScratch == "" {
		c.Paths.AudioScratch = "data/temp_audio"
	}
	if c.Paths.ReportScratch == "" {
		c.Paths.ReportScratch = "data/temp_reports"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/meetings.db"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Whisper.BeamSize == 0 {
		c.Whisper.BeamSize = 5
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Report.FontPath == "" {
		c.Report.FontPath = "fonts/NotoSansCJKsc-Regular.ttf"
	}
	if c.Report.FontFamily == "" {
		c.Report.FontFamily = "Noto Sans CJK SC"
	}
	if c.Report.FallbackFamily == "" {
		c.Report.FallbackFamily = "Times New Roman"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid whisper config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-medium.bin",
					BinaryPath: "./whisper-cli",
				},
				Gemini: GeminiConfig{APIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{BinaryPath: "./whisper-cli"},
				Gemini:  GeminiConfig{APIKeys: []string{"k1"}},
			},
			wantErr: true,
		},
		{
			name: "openai backend without key",
			config: Config{
				Transcription: TranscriptionConfig{Backend: "openai"},
				Gemini:        GeminiConfig{APIKeys: []string{"k1"}},
			},
			wantErr: true,
		},
		{
			name: "openai backend with key",
			config: Config{
				Transcription: TranscriptionConfig{Backend: "OpenAI"},
				OpenAI:        OpenAIConfig{APIKey: "sk-test"},
				Gemini:        GeminiConfig{APIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Transcription: TranscriptionConfig{Backend: "vosk"},
				Gemini:        GeminiConfig{APIKeys: []string{"k1"}},
			},
			wantErr: true,
		},
		{
			name: "missing gemini keys",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-medium.bin",
					BinaryPath: "./whisper-cli",
				},
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
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "m.bin", BinaryPath: "whisper-cli"},
		Gemini:  GeminiConfig{APIKeys: []string{"k1"}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcription.Backend != BackendWhisper {
		t.Errorf("Backend = %v, want %v", cfg.Transcription.Backend, BackendWhisper)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":8000")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-flash")
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 2)
	}
	if len(cfg.Server.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want the two dev origins", cfg.Server.CORSOrigins)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MEETING_AGENT_DB", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  model_path: "models/ggml-medium.bin"
  binary_path: "./whisper-cli"
  threads: 4

gemini:
  api_keys: ["key-a", "key-b"]

paths:
  audio_scratch: "scratch/audio"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-medium.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-medium.bin")
	}
	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want %v", cfg.Whisper.Threads, 4)
	}
	if cfg.Paths.AudioScratch != "scratch/audio" {
		t.Errorf("AudioScratch = %v, want %v", cfg.Paths.AudioScratch, "scratch/audio")
	}
	if cfg.Paths.ReportScratch != "data/temp_reports" {
		t.Errorf("ReportScratch = %v, want default", cfg.Paths.ReportScratch)
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-1, env-2,")
	t.Setenv("MEETING_AGENT_DB", "/tmp/override.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  model_path: "m.bin"
  binary_path: "whisper-cli"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "env-1" || cfg.Gemini.APIKeys[1] != "env-2" {
		t.Errorf("APIKeys = %v, want [env-1 env-2]", cfg.Gemini.APIKeys)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Database.Path = %v, want %v", cfg.Database.Path, "/tmp/override.db")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

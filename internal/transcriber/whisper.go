package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/pkg/executor"
)

type whisperProvider struct {
	cfg      config.WhisperConfig
	ffmpeg   config.FFmpegConfig
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperLoader returns a Loader for the whisper.cpp CLI. Loading resolves
// the whisper and ffmpeg binaries and checks that the model file is readable.
func NewWhisperLoader(cfg config.WhisperConfig, ff config.FFmpegConfig, exec executor.Executor, log logger.Logger) Loader {
	return func(ctx context.Context) (Provider, error) {
		log.Info(ctx, "Loading whisper model: %s", cfg.ModelPath)

		binary, err := exec.LookPath(cfg.BinaryPath)
		if err != nil {
			return nil, fmt.Errorf("whisper binary: %w", err)
		}
		if _, err := exec.LookPath(ff.BinaryPath); err != nil {
			return nil, fmt.Errorf("ffmpeg binary: %w", err)
		}

		info, err := os.Stat(cfg.ModelPath)
		if err != nil {
			return nil, fmt.Errorf("whisper model: %w", err)
		}
		if info.IsDir() || info.Size() == 0 {
			return nil, fmt.Errorf("whisper model %s is not a model file", cfg.ModelPath)
		}

		log.Info(ctx, "Whisper model loaded (%d threads, beam size %d)", cfg.Threads, cfg.BeamSize)
		return &whisperProvider{
			cfg:      cfg,
			ffmpeg:   ff,
			binary:   binary,
			executor: exec,
			logger:   log,
		}, nil
	}
}

func (p *whisperProvider) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	wavPath, err := p.normalize(ctx, audioPath)
	if err != nil {
		return "", err
	}
	defer p.cleanupTempFile(ctx, wavPath)

	// whisper.cpp appends .txt to the prefix
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	txtPath := outputPrefix + ".txt"
	defer p.cleanupTempFile(ctx, txtPath)

	if language == "" {
		language = "auto"
	}

	args := []string{
		"-m", p.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-np",
		"-l", language,
		"-t", strconv.Itoa(p.cfg.Threads),
		"-bs", strconv.Itoa(p.cfg.BeamSize),
		"--output-file", outputPrefix,
	}
	if p.cfg.Prompt != "" {
		args = append(args, "--prompt", p.cfg.Prompt)
	}

	if _, err := p.executor.Execute(ctx, p.binary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return joinSegments(string(raw)), nil
}

// normalize converts any input container to 16 kHz mono PCM WAV, the format
// whisper.cpp decodes natively.
func (p *whisperProvider) normalize(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_16k.wav"

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", strconv.Itoa(p.ffmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := p.executor.Execute(ctx, p.ffmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, wavPath)
		return "", fmt.Errorf("ffmpeg decode audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio normalized: %s", wavPath)
	return wavPath, nil
}

// cleanupTempFile removes an intermediate file, logging instead of failing
func (p *whisperProvider) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

// joinSegments flattens whisper's one-segment-per-line text output.
func joinSegments(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

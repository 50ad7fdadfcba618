package transcriber

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-agent/internal/config"
)

func TestOpenAITranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm() error = %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q", got)
		}
		if _, ok := r.MultipartForm.Value["language"]; ok {
			t.Error("language must not be sent when auto-detecting")
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile() error = %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(f)
		if string(data) != "audio-bytes" {
			t.Errorf("file body = %q", data)
		}
		_, _ = io.WriteString(w, `{"text":"  hello team  "}`)
	}))
	defer srv.Close()

	provider, err := NewOpenAILoader(config.OpenAIConfig{
		APIKey:  "sk-test",
		Model:   "whisper-1",
		BaseURL: srv.URL + "/v1/",
	})(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	text, err := provider.Transcribe(context.Background(), writeFile(t, "clip.mp3", []byte("audio-bytes")), "")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hello team" {
		t.Errorf("Transcribe() = %q, want %q", text, "hello team")
	}
}

func TestOpenAIHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad audio"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	provider, err := NewOpenAILoader(config.OpenAIConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.Transcribe(context.Background(), writeFile(t, "clip.mp3", []byte("x")), "")
	if err == nil || !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "bad audio") {
		t.Errorf("Transcribe() error = %v, want status and body", err)
	}
}

func TestOpenAILoaderRequiresKey(t *testing.T) {
	if _, err := NewOpenAILoader(config.OpenAIConfig{})(context.Background()); err == nil {
		t.Error("loader should fail without an API key")
	}
}

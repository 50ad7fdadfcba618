package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteMissingBinary(t *testing.T) {
	exec := New()

	_, err := exec.Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Execute() should fail for a missing binary")
	}
	if !strings.Contains(err.Error(), "definitely-not-a-real-binary-xyz") {
		t.Errorf("error %q should name the command", err)
	}
}

func TestLookPathMissing(t *testing.T) {
	if _, err := New().LookPath("definitely-not-a-real-binary-xyz"); err == nil {
		t.Error("LookPath() should fail for a missing binary")
	}
}

func TestLastLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "a\nb", 5, "a\nb"},
		{"trimmed", "a\nb\nc\nd", 2, "c\nd"},
		{"exact", "a\nb", 2, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastLines(tt.in, tt.n); got != tt.want {
				t.Errorf("lastLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

package shared

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestLocalPart(t *testing.T) {
	tc := []struct {
		name  string
		email string
		want  string
	}{
		{name: "plain address", email: "jane@example.com", want: "jane"},
		{name: "no at sign", email: "jane", want: "jane"},
		{name: "multiple at signs", email: "a@b@c", want: "a"},
		{name: "empty", email: "", want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalPart(tt.email); got != tt.want {
				t.Errorf("LocalPart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("SetLogLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		SetLogLevel(logger, "warn")
		logger.Info("hidden")
		logger.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info message should be filtered at warn level, got %q", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("warn message missing, got %q", out)
		}
	})

	t.Run("SetLogLevel unknown falls back to info", func(t *testing.T) {
		logger := NewLogger(&bytes.Buffer{})
		SetLogLevel(logger, "verbose")
		if logger.GetLevel() != log.InfoLevel {
			t.Errorf("expected info level, got %v", logger.GetLevel())
		}
	})

	t.Run("NewFileLogger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "app.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		logger.Info("written")
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateID() = %q is not a uuid: %v", id, err)
	}
	if GenerateID() == id {
		t.Error("GenerateID() should not repeat")
	}
}

func TestMarshalJSON(t *testing.T) {
	v := map[string]int{"a": 1}

	compact, err := MarshalJSON(v, false)
	if err != nil || string(compact) != `{"a":1}` {
		t.Errorf("MarshalJSON(compact) = (%s, %v)", compact, err)
	}

	pretty, err := MarshalJSON(v, true)
	if err != nil || string(pretty) != "{\n  \"a\": 1\n}" {
		t.Errorf("MarshalJSON(pretty) = (%s, %v)", pretty, err)
	}
}

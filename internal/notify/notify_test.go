package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	if _, ok := r.Last(); ok {
		t.Error("empty recorder should have no last message")
	}

	r.Success("Cart cleared")
	r.Error("All fields are required")

	messages := r.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0] != (Message{Level: Success, Text: "Cart cleared"}) {
		t.Errorf("unexpected first message %+v", messages[0])
	}

	last, _ := r.Last()
	if last.Level != Error || last.Level.String() != "error" {
		t.Errorf("unexpected last message %+v", last)
	}

	if drained := r.Drain(); len(drained) != 2 || len(r.Messages()) != 0 {
		t.Error("Drain() should return and clear messages")
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	n := NewLog(logger)
	n.Success("Logged in successfully")
	n.Error("Invalid email or password")

	out := buf.String()
	for _, want := range []string{"notify", "Logged in successfully", "Invalid email or password", "INFO", "ERRO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, b, Discard{}}

	m.Success("one")
	m.Error("two")

	if len(a.Messages()) != 2 || len(b.Messages()) != 2 {
		t.Error("Multi should forward to every notifier")
	}
}

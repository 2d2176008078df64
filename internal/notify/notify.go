// Package notify carries user-facing success and error messages.
//
// Notifications are separate from logs: a log line is for whoever runs the
// program, a notification is the toast the user sees. The stores emit both.
package notify

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Level distinguishes success from error notifications.
type Level int

const (
	Success Level = iota
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return ""
	}
}

// Message is one recorded notification.
type Message struct {
	Level Level
	Text  string
}

// Notifier receives user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Log writes notifications through a [log.Logger], success at info and errors at error level.
type Log struct {
	logger *log.Logger
}

// NewLog creates a Log notifier that prefixes entries with "notify".
func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger.WithPrefix("notify")}
}

func (n *Log) Success(msg string) { n.logger.Info(msg) }
func (n *Log) Error(msg string)   { n.logger.Error(msg) }

// Recorder keeps every notification in order. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) { r.add(Success, msg) }
func (r *Recorder) Error(msg string)   { r.add(Error, msg) }

func (r *Recorder) add(level Level, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Text: text})
}

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return Message{}, false
	}
	return r.messages[len(r.messages)-1], true
}

// Drain returns and forgets everything recorded so far.
func (r *Recorder) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.messages
	r.messages = nil
	return out
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}

// Multi fans each notification out to several notifiers.
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field describes one text input of a [form].
type field struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

// form is a vertical stack of text inputs with a single focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.Prompt = ""
		if fd.limit > 0 {
			in.CharLimit = fd.limit
		}
		if fd.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.labels[i] = fd.label
		f.inputs[i] = in
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// value returns the text of input i.
func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

// set replaces the text of input i.
func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := styles.label.Render(f.labels[i])
		if i == f.focus {
			label = styles.As(styles.label.Render(f.labels[i]), styles.accent)
		}
		b.WriteString(label + " " + in.View() + "\n")
	}
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one labelled text input.
type formField struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// form is an ordered set of text inputs with a single focused input.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.charLimit > 0 {
			in.CharLimit = field.charLimit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}

		f.labels[i] = field.label
		f.inputs[i] = in
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// rawValue keeps surrounding spaces; used for passwords.
func (f *form) rawValue(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) focusOn(i int) {
	if i < 0 || i >= len(f.inputs) {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// focusLabel moves focus to the input whose label is label, ignoring case.
func (f *form) focusLabel(label string) {
	for i, l := range f.labels {
		if strings.EqualFold(strings.ReplaceAll(l, " ", ""), label) {
			f.focusOn(i)
			return
		}
	}
}

func (f *form) focusNext() {
	f.focusOn((f.focus + 1) % len(f.inputs))
}

func (f *form) focusPrev() {
	f.focusOn((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focusOn(0)
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the inputs as a two column table.
func (f *form) view(b *strings.Builder) {
	width := len("Field")
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	b.WriteString(padRight("Field", width))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, l := range f.labels {
		b.WriteString(padRight(l, width))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

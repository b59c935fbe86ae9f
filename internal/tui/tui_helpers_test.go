package tui

import (
	"testing"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// run executes cmd and returns the produced message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func entry(pos int, name, date string, offset int) models.ContactEntry {
	return models.ContactEntry{
		Position: pos,
		Contact: models.Contact{
			Name:     name,
			Surname:  "Doe",
			Email:    name + "@mail.com",
			Phone:    "1234-5678",
			Birthday: date,
		},
		OffsetDays: offset,
		Category:   birthday.Classify(offset),
	}
}

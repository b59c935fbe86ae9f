package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

const listHotKeys = "a: add │ enter: open │ d: delete │ ↑/↓: navigate │ l: log out │ q: quit"

func (m contactsModel) View() string {
	switch m.screen {
	case screenAdd:
		return m.viewAdd()
	case screenDetail:
		return m.viewDetail()
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	}
	return m.viewList()
}

func (m contactsModel) title() string {
	name := m.session.Username
	if name == "" {
		name = m.session.Email
	}
	return "CONTACTS OF " + strings.ToUpper(name)
}

func (m contactsModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading contacts...")
		return renderPage(m.title(), b.String(), listHotKeys)
	}

	if len(m.entries) == 0 {
		b.WriteString(app.MsgNoContacts)
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-3s│ %-28s │ %-10s │ %s\n", "#", "Name", "Birthday", "When"))
		b.WriteString("─────┼──────────────────────────────┼────────────┼────────────────\n")
		for i, e := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			row := fmt.Sprintf(
				"%s %-3d│ %-28s │ %-10s │ %s",
				cursor,
				i+1,
				fitText(e.Contact.FullName(), 28),
				e.Contact.Birthday,
				e.Label(),
			)
			b.WriteString(categoryStyle(e.Category).Render(row))
			b.WriteString("\n")
		}
	}

	renderMessages(&b, m.errMsg, m.status)
	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), listHotKeys)
}

func (m contactsModel) viewDetail() string {
	entry, ok := m.current()
	if !ok {
		return renderPage("CONTACT", app.MsgContactNotFound, "esc: back")
	}

	var b strings.Builder
	writeContactDetail(&b, entry)
	renderMessages(&b, m.errMsg, m.status)

	return renderPage(
		"CONTACT",
		strings.TrimRight(b.String(), "\n"),
		"esc: back │ c: copy phone │ m: copy email │ d: delete",
	)
}

func writeContactDetail(b *strings.Builder, entry models.ContactEntry) {
	c := entry.Contact
	rows := [][2]string{
		{"Name", valueOrDash(c.Name)},
		{"Surname", valueOrDash(c.Surname)},
		{"Email", valueOrDash(c.Email)},
		{"Phone", valueOrDash(c.Phone)},
		{"Birthday", valueOrDash(c.Birthday)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-9s│ %s\n", r[0], r[1]))
	}
	b.WriteString(fmt.Sprintf("%-9s│ %s\n", "When", categoryStyle(entry.Category).Render(entry.Label())))
}

func (m contactsModel) viewConfirmDelete() string {
	entry, ok := m.current()
	if !ok {
		return renderPage("DELETE CONTACT", app.MsgContactNotFound, "esc: back")
	}

	content := app.MsgConfirmDelete + "\n\n" + entry.Contact.FullName() + "\n\ny: yes    n: no"
	return renderPage("DELETE CONTACT", overlayBoxStyle.Render(content), "")
}

func (m contactsModel) viewAdd() string {
	var b strings.Builder
	m.addForm.view(&b)

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderMessages(&b, m.errMsg, "")

	return renderPage("NEW CONTACT", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

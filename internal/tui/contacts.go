package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type contactsScreen int

const (
	screenList contactsScreen = iota
	screenDetail
	screenAdd
	screenConfirmDelete
)

const (
	contactName = iota
	contactSurname
	contactEmail
	contactPhone
	contactBirthday
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type contactsModel struct {
	ctx      context.Context
	contacts service.ContactService
	session  models.Session

	entries []models.ContactEntry
	idx     int
	screen  contactsScreen
	// back is the screen a cancelled delete returns to.
	back contactsScreen

	addForm  form
	saving   bool
	deleting bool

	loading bool
	status  string
	errMsg  string

	logout bool
}

func newContactsModel(ctx context.Context, contacts service.ContactService, session models.Session) contactsModel {
	return contactsModel{
		ctx:      ctx,
		contacts: contacts,
		session:  session,
		loading:  true,
		addForm:  newContactForm(),
	}
}

func newContactForm() form {
	return newForm(
		formField{label: "Name", placeholder: "letters only", charLimit: 64},
		formField{label: "Surname", placeholder: "letters only", charLimit: 64},
		formField{label: "Email", placeholder: "name@example.com", charLimit: 254},
		formField{label: "Phone", placeholder: "0000-0000", charLimit: 9},
		formField{label: "Birthday", placeholder: "DD/MM/YYYY", charLimit: 10},
	)
}

func (m contactsModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), cmdDayChange(time.Now()))
}

func (m contactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayChangedMsg:
		// offsets are relative to today
		if m.screen == screenList {
			m.loading = true
		}
		return m, tea.Batch(m.cmdLoad(), cmdDayChange(time.Time(msg)))
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setEntries(msg.entries)
		return m, nil
	case contactAddedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			var vErr *validators.ValidationError
			if errors.As(msg.err, &vErr) {
				m.addForm.focusLabel(vErr.Field)
			}
			return m, nil
		}
		m.addForm.reset()
		m.screen = screenList
		m.status = app.MsgContactAdded
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	case contactRemovedMsg:
		m.deleting = false
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			if errors.Is(msg.err, store.ErrContactNotFound) {
				m.loading = true
				return m, m.cmdLoad()
			}
			return m, nil
		}
		m.status = app.MsgContactDeleted
		m.errMsg = ""
		m.setEntries(msg.entries)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenAdd {
			return m, m.addForm.update(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenAdd:
		return m.updateAdd(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m contactsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.status = ""
		m.errMsg = ""
		m.screen = screenAdd
		return m, m.addForm.inputs[m.addForm.focus].Focus()
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = app.MsgNoContacts
			return m, nil
		}
		m.status = ""
		m.screen = screenDetail
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = app.MsgNoContacts
			return m, nil
		}
		m.back = screenList
		m.screen = screenConfirmDelete
	}

	return m, nil
}

func (m contactsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.status = ""
		m.errMsg = ""
		m.screen = screenList
	case key.Matches(msg, keys.copyPhone):
		m.copyValue(entry.Contact.Phone)
	case key.Matches(msg, keys.copyEmail):
		m.copyValue(entry.Contact.Email)
	case key.Matches(msg, keys.delete):
		m.back = screenDetail
		m.screen = screenConfirmDelete
	}
	return m, nil
}

func (m contactsModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		// positions shift after a removal
		if m.deleting {
			return m, nil
		}
		entry, ok := m.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		m.deleting = true
		return m, m.cmdRemove(entry.Position)
	case key.Matches(msg, keys.no):
		if m.deleting {
			return m, nil
		}
		m.screen = m.back
	}
	return m, nil
}

func (m contactsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.saving = false
		m.addForm.reset()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.addForm.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.addForm.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		m.errMsg = ""
		m.saving = true
		return m, m.cmdAdd(m.formContact())
	}

	return m, m.addForm.update(msg)
}

func (m *contactsModel) copyValue(value string) {
	if value == "" {
		m.status = app.MsgNothingToCopy
		return
	}
	if err := writeClipboard(value); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = app.MsgCopied
}

func (m *contactsModel) setEntries(entries []models.ContactEntry) {
	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m contactsModel) current() (models.ContactEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.ContactEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m contactsModel) formContact() models.Contact {
	return models.Contact{
		Name:     m.addForm.value(contactName),
		Surname:  m.addForm.value(contactSurname),
		Email:    m.addForm.value(contactEmail),
		Phone:    m.addForm.value(contactPhone),
		Birthday: m.addForm.value(contactBirthday),
	}
}

func (m contactsModel) cmdLoad() tea.Cmd {
	ctx, svc, session := m.ctx, m.contacts, m.session

	return func() tea.Msg {
		entries, err := svc.List(ctx, session)
		return contactsLoadedMsg{entries: entries, err: err}
	}
}

func (m contactsModel) cmdAdd(contact models.Contact) tea.Cmd {
	ctx, svc, session := m.ctx, m.contacts, m.session

	return func() tea.Msg {
		return contactAddedMsg{err: svc.Add(ctx, session, contact)}
	}
}

func (m contactsModel) cmdRemove(position int) tea.Cmd {
	ctx, svc, session := m.ctx, m.contacts, m.session

	return func() tea.Msg {
		entries, err := svc.Remove(ctx, session, position)
		return contactRemovedMsg{entries: entries, err: err}
	}
}

// untilNextDay is the time left until local midnight after now.
func untilNextDay(now time.Time) time.Duration {
	y, mo, d := now.Date()
	return time.Date(y, mo, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}

func cmdDayChange(now time.Time) tea.Cmd {
	return tea.Tick(untilNextDay(now), func(t time.Time) tea.Msg {
		return dayChangedMsg(t)
	})
}

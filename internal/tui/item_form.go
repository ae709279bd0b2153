// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

var fieldPlaceholders = map[string]string{
	models.FieldURL:            "https://example.com",
	models.FieldExpiryDate:     "MM/YYYY",
	models.FieldCardNumber:     "4111 1111 1111 1111",
	models.FieldDocumentType:   "Passport",
	models.FieldDocumentNumber: "document number",
}

// ItemFormModel creates and edits vault items. A new item starts with a
// type chooser; the inputs then follow the schema of the chosen type. The
// note of a secure note is edited in a multi-line text area.
type ItemFormModel struct {
	ctx       context.Context
	vault     service.ClientVaultService
	generator crypto.PasswordGenerator
	spec      models.PasswordSpec

	itemID       string
	choosingType bool
	typeIdx      int
	itemType     models.ItemType

	fields      []models.FieldSpec
	form        inputForm
	note        textarea.Model
	hasNote     bool
	noteFocused bool

	submitting bool
	errMsg     string
}

func NewItemFormModel(ctx context.Context, vault service.ClientVaultService, generator crypto.PasswordGenerator, spec models.PasswordSpec) *ItemFormModel {
	return &ItemFormModel{
		ctx:       ctx,
		vault:     vault,
		generator: generator,
		spec:      spec,
	}
}

func (m *ItemFormModel) Init() tea.Cmd {
	return nil
}

func (m *ItemFormModel) editing() bool {
	return m.itemID != ""
}

// open resets the form for itemType, pre-filled from values.
func (m *ItemFormModel) open(itemType models.ItemType, values models.Fields) {
	m.choosingType = false
	m.itemType = itemType
	m.fields = nil
	m.hasNote = false
	m.noteFocused = false
	m.errMsg = ""

	var inputs []textinput.Model
	for _, f := range itemType.Schema() {
		if f.Name == models.FieldNote {
			m.hasNote = true
			m.note = textarea.New()
			m.note.Placeholder = "note"
			m.note.SetWidth(inputWidth + 10)
			m.note.SetHeight(6)
			m.note.SetValue(values[f.Name])
			continue
		}
		in := newTextInput(strings.ToLower(f.Name), f.Sensitive)
		if p, ok := fieldPlaceholders[f.Name]; ok {
			in.Placeholder = p
		}
		in.SetValue(values[f.Name])
		inputs = append(inputs, in)
		m.fields = append(m.fields, f)
	}
	m.form = newInputForm(inputs...)
}

func (m *ItemFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case newItemMsg:
		m.itemID = ""
		m.choosingType = true
		m.typeIdx = 0
		m.errMsg = ""
		m.submitting = false
		return m, nil

	case editItemMsg:
		item, ok := m.vault.Item(msg.id)
		if !ok {
			return m, navigate(pageVault, statusNotice{text: app.MsgItemNotFound, isErr: true})
		}
		m.itemID = item.ID
		m.submitting = false
		m.open(item.Type, item.Fields)
		return m, textinput.Blink

	case itemSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		return m, navigate(pageVault, statusNotice{text: msg.message})

	case tea.KeyMsg:
		if m.choosingType {
			return m.updateTypeChooser(msg)
		}
		return m.updateKeys(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *ItemFormModel) updateTypeChooser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageVault, nil)
	case key.Matches(msg, keys.up):
		if m.typeIdx > 0 {
			m.typeIdx--
		}
	case key.Matches(msg, keys.down):
		if m.typeIdx < len(models.ItemTypes)-1 {
			m.typeIdx++
		}
	case key.Matches(msg, keys.enter):
		m.open(models.ItemTypes[m.typeIdx], nil)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *ItemFormModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.submitting {
			return m, nil
		}
		if m.editing() {
			return m, navigate(pageDetail, openItemMsg{id: m.itemID})
		}
		return m, navigate(pageVault, nil)
	case key.Matches(msg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(msg, keys.fillPass):
		m.fillPassword()
		return m, nil
	case key.Matches(msg, keys.echo):
		m.toggleEcho()
		return m, nil
	case key.Matches(msg, keys.save), key.Matches(msg, keys.enter) && !m.noteFocused:
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(m.values())
	}

	return m, m.updateFocused(msg)
}

func (m *ItemFormModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.choosingType {
		return nil
	}
	if m.noteFocused {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return cmd
	}
	return m.form.update(msg)
}

// focusNext walks the inputs and then the note area, if any.
func (m *ItemFormModel) focusNext() {
	switch {
	case m.noteFocused:
		m.note.Blur()
		m.noteFocused = false
		if len(m.form.inputs) > 0 {
			m.form.setFocus(0)
		}
	case m.hasNote && m.form.focus == len(m.form.inputs)-1:
		m.form.inputs[m.form.focus].Blur()
		m.noteFocused = true
		m.note.Focus()
	default:
		m.form.focusNext()
	}
}

func (m *ItemFormModel) focusPrev() {
	switch {
	case m.noteFocused:
		m.note.Blur()
		m.noteFocused = false
		if n := len(m.form.inputs); n > 0 {
			m.form.setFocus(n - 1)
		}
	case m.hasNote && m.form.focus == 0:
		if len(m.form.inputs) > 0 {
			m.form.inputs[0].Blur()
		}
		m.noteFocused = true
		m.note.Focus()
	default:
		m.form.focusPrev()
	}
}

func (m *ItemFormModel) fieldIndex(name string) int {
	for i, f := range m.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// fillPassword puts a generated password into the Password field.
func (m *ItemFormModel) fillPassword() {
	i := m.fieldIndex(models.FieldPassword)
	if i < 0 {
		return
	}
	password, err := m.generator.Generate(m.spec)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.form.inputs[i].SetValue(password)
	m.errMsg = ""
}

func (m *ItemFormModel) toggleEcho() {
	if m.noteFocused || len(m.form.inputs) == 0 || !m.fields[m.form.focus].Sensitive {
		return
	}
	in := &m.form.inputs[m.form.focus]
	if in.EchoMode == textinput.EchoPassword {
		in.EchoMode = textinput.EchoNormal
	} else {
		in.EchoMode = textinput.EchoPassword
	}
}

func (m *ItemFormModel) values() models.Fields {
	out := make(models.Fields, len(m.fields)+1)
	for i, f := range m.fields {
		out[f.Name] = m.form.value(i)
	}
	if m.hasNote {
		out[models.FieldNote] = m.note.Value()
	}
	return out
}

func (m *ItemFormModel) View() string {
	if m.choosingType {
		return m.viewTypeChooser()
	}

	var b strings.Builder
	b.WriteString("Type: ")
	b.WriteString(string(m.itemType))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", fieldNameWidth, f.Name, m.form.inputs[i].View()))
		if f.Name == models.FieldPassword {
			if hint := strengthHint(m.form.value(i)); hint != "" {
				b.WriteString(strings.Repeat(" ", fieldNameWidth))
				b.WriteString(" │ ")
				b.WriteString(hint)
				b.WriteString("\n")
			}
		}
	}
	if m.hasNote {
		b.WriteString(models.FieldNote)
		b.WriteString("\n")
		b.WriteString(m.note.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	writeStatus(&b, "", m.errMsg)

	title := "NEW ITEM"
	if m.editing() {
		title = "EDIT ITEM"
	}

	hotKeys := "tab: next field │ ctrl+s: save │ ctrl+r: show/hide │ esc: cancel"
	if m.fieldIndex(models.FieldPassword) >= 0 {
		hotKeys += " │ ctrl+g: generate"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ItemFormModel) viewTypeChooser() string {
	var b strings.Builder
	b.WriteString("Choose the item type:\n\n")
	for i, t := range models.ItemTypes {
		cursor := " "
		line := string(t)
		if i == m.typeIdx {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("NEW ITEM", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: select │ esc: back")
}

func (m *ItemFormModel) cmdSave(fields models.Fields) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	id := m.itemID
	itemType := m.itemType

	if id == "" {
		return func() tea.Msg {
			if err := vault.Create(ctx, itemType, fields); err != nil {
				return itemSavedMsg{err: err}
			}
			return itemSavedMsg{message: app.MsgItemCreated}
		}
	}
	return func() tea.Msg {
		if err := vault.Update(ctx, id, itemType, fields); err != nil {
			return itemSavedMsg{err: err}
		}
		return itemSavedMsg{message: app.MsgItemUpdated}
	}
}

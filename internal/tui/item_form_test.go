// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

func newTestForm(t *testing.T, ctrl *gomock.Controller) (*ItemFormModel, *mock.MockClientVaultService, *mock.MockPasswordGenerator) {
	t.Helper()
	vault := mock.NewMockClientVaultService(ctrl)
	gen := mock.NewMockPasswordGenerator(ctrl)
	return NewItemFormModel(context.Background(), vault, gen, models.DefaultPasswordSpec()), vault, gen
}

func TestItemFormModel_CreateCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, vault, _ := newTestForm(t, ctrl)

	_, _ = m.Update(newItemMsg{})
	require.True(t, m.choosingType)
	assert.Contains(t, m.View(), string(models.CreditCard))

	_, _ = m.Update(downKey)
	_, _ = m.Update(enterKey)
	require.False(t, m.choosingType)
	require.Equal(t, models.CreditCard, m.itemType)
	require.Len(t, m.form.inputs, 4)
	assert.Equal(t, textinput.EchoPassword, m.form.inputs[1].EchoMode, "card number is sensitive")

	values := []string{"Bob", "4111", "01/2030", "123"}
	for i, v := range values {
		m.form.inputs[i].SetValue(v)
	}

	vault.EXPECT().Create(gomock.Any(), models.CreditCard, models.Fields{
		models.FieldCardholderName: "Bob",
		models.FieldCardNumber:     "4111",
		models.FieldExpiryDate:     "01/2030",
		models.FieldCVV:            "123",
	}).Return(nil)

	_, cmd := m.Update(saveKey)
	msg := runCmd(t, cmd)
	assert.Equal(t, itemSavedMsg{message: app.MsgItemCreated}, msg)

	_, cmd = m.Update(msg)
	nav := requireNavigate(t, cmd, pageVault)
	assert.Equal(t, statusNotice{text: app.MsgItemCreated}, nav.Payload)
}

func TestItemFormModel_EditLoginWithGeneratedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, vault, gen := newTestForm(t, ctrl)

	vault.EXPECT().Item("i-1").Return(testItems[0], true)
	gen.EXPECT().Generate(models.DefaultPasswordSpec()).Return("Gen3rated!xy", nil)
	vault.EXPECT().Update(gomock.Any(), "i-1", models.Login, models.Fields{
		models.FieldURL:      "https://mail.example",
		models.FieldUsername: "bob",
		models.FieldPassword: "Gen3rated!xy",
	}).Return(nil)

	_, _ = m.Update(editItemMsg{id: "i-1"})
	require.True(t, m.editing())
	assert.Equal(t, "https://mail.example", m.form.value(0))
	assert.Contains(t, m.View(), "EDIT ITEM")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, "Gen3rated!xy", m.form.value(m.fieldIndex(models.FieldPassword)))

	_, cmd := m.Update(enterKey)
	assert.Equal(t, itemSavedMsg{message: app.MsgItemUpdated}, runCmd(t, cmd))
}

func TestItemFormModel_SecureNoteUsesTextArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, vault, _ := newTestForm(t, ctrl)

	_, _ = m.Update(newItemMsg{})
	for range 3 {
		_, _ = m.Update(downKey)
	}
	_, _ = m.Update(enterKey)
	require.Equal(t, models.SecureNote, m.itemType)
	require.True(t, m.hasNote)
	require.Len(t, m.form.inputs, 1)

	m.form.inputs[0].SetValue("Wifi")
	_, _ = m.Update(tabKey)
	require.True(t, m.noteFocused)

	_, _ = m.Update(runeKey("line1"))
	_, _ = m.Update(enterKey)
	_, _ = m.Update(runeKey("line2"))
	assert.False(t, m.submitting, "enter in the note adds a line")

	vault.EXPECT().Create(gomock.Any(), models.SecureNote, models.Fields{
		models.FieldTitle: "Wifi",
		models.FieldNote:  "line1\nline2",
	}).Return(nil)

	_, cmd := m.Update(saveKey)
	runCmd(t, cmd)

	_, _ = m.Update(tabKey)
	assert.False(t, m.noteFocused)
	assert.Equal(t, 0, m.form.focus)
}

func TestItemFormModel_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestForm(t, ctrl)
	m.open(models.Login, nil)
	m.submitting = true

	_, cmd := m.Update(itemSavedMsg{err: service.ErrUnknownField})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgUnknownField, m.errMsg)
}

func TestItemFormModel_ToggleEcho(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestForm(t, ctrl)
	m.open(models.Login, nil)

	echo := tea.KeyMsg{Type: tea.KeyCtrlR}
	_, _ = m.Update(echo)
	assert.Equal(t, textinput.EchoNormal, m.form.inputs[0].EchoMode, "URL is never masked")

	_, _ = m.Update(tabKey)
	_, _ = m.Update(echo)
	assert.Equal(t, textinput.EchoNormal, m.form.inputs[1].EchoMode)
	_, _ = m.Update(echo)
	assert.Equal(t, textinput.EchoPassword, m.form.inputs[1].EchoMode)
}

func TestItemFormModel_Esc(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, vault, _ := newTestForm(t, ctrl)

	_, _ = m.Update(newItemMsg{})
	_, cmd := m.Update(escKey)
	requireNavigate(t, cmd, pageVault)

	vault.EXPECT().Item("i-1").Return(testItems[0], true)
	_, _ = m.Update(editItemMsg{id: "i-1"})
	_, cmd = m.Update(escKey)
	nav := requireNavigate(t, cmd, pageDetail)
	assert.Equal(t, openItemMsg{id: "i-1"}, nav.Payload)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/validators"
)

const inputWidth = 40

// inputForm is a column of text inputs with one focused field.
type inputForm struct {
	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = inputWidth
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newInputForm(inputs ...textinput.Model) inputForm {
	f := inputForm{inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *inputForm) focusNext() {
	if len(f.inputs) == 0 {
		return
	}
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *inputForm) focusPrev() {
	if len(f.inputs) == 0 {
		return
	}
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *inputForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	if len(f.inputs) > 0 {
		f.setFocus(0)
	}
}

// strengthHint renders the live verdict shown under password fields.
func strengthHint(password string) string {
	if password == "" {
		return ""
	}
	verdict := validators.EvaluateStrength(password)
	if verdict.Strong {
		return strongStyle.Render(verdict.Message)
	}
	return weakStyle.Render(verdict.Message)
}

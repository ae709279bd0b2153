// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	saveKey  = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlCKey = tea.KeyMsg{Type: tea.KeyCtrlC}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd synchronously and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// requireNavigate runs cmd and asserts it navigates to page.
func requireNavigate(t *testing.T, cmd tea.Cmd, page string) NavigateTo {
	t.Helper()
	nav, ok := runCmd(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav
}

// recordingPage is a page that remembers what it received.
type recordingPage struct {
	name     string
	received []tea.Msg
	inits    int
}

func (p *recordingPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *recordingPage) View() string { return p.name }

func shiftTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyShiftTab}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	save      key.Binding
	logout    key.Binding
	newItem   key.Binding
	reload    key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	reveal    key.Binding
	generate  key.Binding
	fillPass  key.Binding
	echo      key.Binding
	clearMsgs key.Binding
	upper     key.Binding
	numbers   key.Binding
	special   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "-")),
	right:     key.NewBinding(key.WithKeys("right", "+")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	reload:    key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reveal:    key.NewBinding(key.WithKeys("m", " ")),
	generate:  key.NewBinding(key.WithKeys("g")),
	fillPass:  key.NewBinding(key.WithKeys("ctrl+g")),
	echo:      key.NewBinding(key.WithKeys("ctrl+r")),
	clearMsgs: key.NewBinding(key.WithKeys("x")),
	upper:     key.NewBinding(key.WithKeys("u")),
	numbers:   key.NewBinding(key.WithKeys("n")),
	special:   key.NewBinding(key.WithKeys("s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}

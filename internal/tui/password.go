// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxPasswordInput = 256

// passwordModel is the Bubble Tea model for the password prompt. It renders
// one masked input, or two when confirmation is requested, and quits once a
// non-empty (and matching) password is submitted.
type passwordModel struct {
	title    string
	strength StrengthFunc

	inputs []textinput.Model
	focus  int
	errMsg string

	submitted  bool
	quitByUser bool
}

func newPasswordModel(opts PromptOptions) *passwordModel {
	count := 1
	if opts.Confirm {
		count = 2
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = "password"
		in.CharLimit = maxPasswordInput
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	if opts.Confirm {
		inputs[1].Placeholder = "repeat password"
	}
	inputs[0].Focus()

	title := opts.Title
	if title == "" {
		title = "JOURNAL PASSWORD"
	}

	return &passwordModel{
		title:    title,
		strength: opts.Strength,
		inputs:   inputs,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c  quit without a password.
//   - tab          next field.
//   - shift+tab    previous field.
//   - enter        submit, or move to the confirmation field.
//
// Other key events go to the focused input.
func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *passwordModel) submit() (tea.Model, tea.Cmd) {
	if m.inputs[0].Value() == "" {
		m.errMsg = "Password is required"
		m.setFocus(0)
		return m, nil
	}

	if len(m.inputs) > 1 {
		if m.focus == 0 && m.inputs[1].Value() == "" {
			m.errMsg = ""
			m.setFocus(1)
			return m, nil
		}
		if m.inputs[0].Value() != m.inputs[1].Value() {
			m.errMsg = "Passwords do not match"
			m.inputs[1].SetValue("")
			m.setFocus(1)
			return m, nil
		}
	}

	m.errMsg = ""
	m.submitted = true
	return m, tea.Quit
}

// View implements [tea.Model].
func (m *passwordModel) View() string {
	if m.submitted || m.quitByUser {
		return ""
	}

	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if len(m.inputs) > 1 {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.strength != nil {
		score, level := m.strength(m.inputs[0].Value())
		b.WriteString("\n")
		b.WriteString(strengthMeter(score, level))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: submit │ esc: cancel"
	if len(m.inputs) > 1 {
		hotKeys = "tab: next field │ " + hotKeys
	}

	return appStyle.Render(renderPage(titleStyle.Render(m.title), strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m *passwordModel) password() string {
	if !m.submitted {
		return ""
	}
	return m.inputs[0].Value()
}

func (m *passwordModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *passwordModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.inputs))
}

func (m *passwordModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-rich-presence/models"
)

const (
	labelWidth    = 12
	resultTextMax = 60
)

const panelHotKeys = "tab/↑↓: move  enter/space: press  ctrl+s: start  ctrl+x: stop  y/ctrl+y: copy activity  f1: about"

func (m panelModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	cfg := m.controller.Config()

	for i, f := range textFields {
		b.WriteString(m.label(i, f.label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, f := range toggleFields {
		b.WriteString(m.label(firstToggle+i, f.label))
		b.WriteString(checkbox(f.value(cfg)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(focusStart, m.button.presentation),
		" ",
		m.renderButton(focusStop, models.ButtonPresentation{Label: "Stop presence"}),
	))
	b.WriteString("\n\n")

	b.WriteString(m.renderState())

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsError {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
	}

	return renderPage("DISCORD RICH PRESENCE", b.String(), panelHotKeys)
}

func (m panelModel) label(idx int, text string) string {
	text = fmt.Sprintf("%-*s", labelWidth, text)
	if m.focus == idx {
		return focusStyle.Render("> " + text)
	}
	return "  " + text
}

func (m panelModel) renderButton(idx int, p models.ButtonPresentation) string {
	style := buttonStyle
	if p.Filled {
		style = filledButton
	}
	if m.focus == idx {
		style = style.BorderForeground(focusStyle.GetForeground())
	}
	return style.Render(p.Label)
}

func (m panelModel) renderState() string {
	status := m.controller.Status()

	var b strings.Builder
	if status.State == models.PresenceActive {
		b.WriteString(activeStyle.Render("● active"))
		if status.ActivatedAt != nil {
			b.WriteString(" since ")
			b.WriteString(status.ActivatedAt.Local().Format("15:04:05"))
		}
	} else {
		b.WriteString(helpStyle.Render("○ inactive"))
	}

	if r := status.LastResult; r != nil {
		b.WriteString("\n")
		b.WriteString(fitText(fmt.Sprintf("last %s result: %s", r.Kind, r.Result), resultTextMax))
	}
	return b.String()
}

package tui

import (
	"strings"

	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

const (
	uiDivider  = "────────────────────────────────────────────"
	meterCells = 20
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

// strengthMeter renders score (0..100) as a bar followed by the level name.
func strengthMeter(score int, level validators.StrengthLevel) string {
	score = min(max(score, 0), 100)
	filled := score * meterCells / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterCells-filled)
	label := level.String()
	if label == "" {
		label = "-"
	}

	if style, ok := strengthStyles[level]; ok {
		bar = style.Render(bar)
		label = style.Render(label)
	}
	return "Strength │ " + bar + " " + label
}

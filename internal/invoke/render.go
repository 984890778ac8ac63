package invoke

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"cloud-demo-apps/internal/greeting"
)

var (
	labelStyle       = lipgloss.NewStyle().Faint(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	clientErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	serverErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func statusStyle(code int) lipgloss.Style {
	switch {
	case code >= 500:
		return serverErrorStyle
	case code >= 400:
		return clientErrorStyle
	default:
		return successStyle
	}
}

// Render formats an envelope for a terminal
func Render(e greeting.Envelope) string {
	return labelStyle.Render("status") + " " + statusStyle(e.StatusCode).Render(strconv.Itoa(e.StatusCode)) + "\n" +
		labelStyle.Render("body") + "   " + e.Body + "\n"
}

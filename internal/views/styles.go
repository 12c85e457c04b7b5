package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ilkoid/hadikit/pkg/tui"
)

// Styles - набор lipgloss стилей, собранный из цветовой схемы.
type Styles struct {
	Logo         lipgloss.Style
	Announcement lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Muted        lipgloss.Style
	Price        lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	BadgeNew     lipgloss.Style
	BadgeHot     lipgloss.Style
	Button       lipgloss.Style
	ButtonBusy   lipgloss.Style
	Label        lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Panel        lipgloss.Style
	UserMsg      lipgloss.Style
	AIMsg        lipgloss.Style
	Footer       lipgloss.Style
}

// NewStyles собирает стили для схемы.
func NewStyles(c tui.ColorScheme) Styles {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(c.Muted).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border)

	card := lipgloss.NewStyle().
		Width(cardWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border)

	return Styles{
		Logo:         lipgloss.NewStyle().Bold(true).Italic(true).Foreground(c.Text),
		Announcement: lipgloss.NewStyle().Bold(true).Background(c.AnnouncementBackground).Foreground(c.AnnouncementForeground),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(c.Text),
		Subtitle:     lipgloss.NewStyle().Bold(true).Foreground(c.Accent),
		Muted:        lipgloss.NewStyle().Foreground(c.Muted),
		Price:        lipgloss.NewStyle().Bold(true).Foreground(c.Price),
		Chip:         chip,
		ChipActive:   chip.Foreground(c.AccentText).Background(c.Accent).BorderForeground(c.Accent).Bold(true),
		Card:         card,
		CardActive:   card.BorderForeground(c.Accent).BorderStyle(lipgloss.ThickBorder()),
		BadgeNew:     lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(c.BadgeNew).Foreground(c.AccentText),
		BadgeHot:     lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(c.BadgeHot).Foreground(c.AccentText),
		Button:       lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(c.Accent).Foreground(c.AccentText),
		ButtonBusy:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(c.Border).Foreground(c.Text),
		Label:        lipgloss.NewStyle().Bold(true).Foreground(c.Muted),
		Error:        lipgloss.NewStyle().Bold(true).Foreground(c.ErrorMessage),
		Success:      lipgloss.NewStyle().Bold(true).Foreground(c.Success),
		Panel:        lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(c.Accent),
		UserMsg:      lipgloss.NewStyle().Bold(true).Foreground(c.UserMessage),
		AIMsg:        lipgloss.NewStyle().Bold(true).Foreground(c.AIMessage),
		Footer:       lipgloss.NewStyle().Foreground(c.Muted),
	}
}

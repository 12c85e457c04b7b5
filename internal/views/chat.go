package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ilkoid/hadikit/internal/app"
)

// ChatWidth возвращает ширину панели стилиста для ширины окна.
func ChatWidth(width int) int {
	return min(max(width, minWidth), 72)
}

// ChatPanel - панель стилиста: заголовок, переписка, индикатор, поле ввода.
func (r *Renderer) ChatPanel(snap app.Snapshot, f ChatFrame, width int) string {
	w := ChatWidth(width)

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			r.styles.Subtitle.Render(StylistTitle),
			"  ",
			r.styles.Muted.Render(StylistSubtitle),
		),
		"",
		f.Transcript,
	}
	if snap.ChatPending {
		lines = append(lines, r.styles.AIMsg.Render(strings.TrimSpace(f.Spinner+" "+StylistThinking)))
	}
	lines = append(lines, "", f.Input)

	return r.styles.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// TranscriptLines готовит строки переписки для viewport'а.
//
// Пустая переписка - приветствие и быстрые вопросы, suggestion
// подсвечивает выбранный. Ответы стилиста рендерятся как markdown.
func (r *Renderer) TranscriptLines(entries []app.ChatEntry, suggestion, width int) []string {
	if len(entries) == 0 {
		lines := []string{r.styles.Muted.Render(`"` + StylistWelcome + `"`), ""}
		for i, q := range Suggestions {
			marker := "  "
			style := r.styles.Muted
			if i == suggestion {
				marker = "▸ "
				style = r.styles.Subtitle
			}
			lines = append(lines, marker+style.Render(q))
		}
		return lines
	}

	var lines []string
	for _, e := range entries {
		if e.Role == app.ChatUser {
			lines = append(lines, r.styles.UserMsg.Render("You"), e.Text, "")
			continue
		}
		lines = append(lines, r.styles.AIMsg.Render("Stylist"), r.markdown.Render(e.Text, width), "")
	}
	return lines
}

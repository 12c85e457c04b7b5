package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ilkoid/hadikit/internal/app"
	"github.com/ilkoid/hadikit/internal/views"
)

// Высота шапки, подвала и статуса вокруг сетки товаров.
const chromeHeight = 14

// View строит кадр целиком из снимка состояния.
func (m MainModel) View() string {
	snap := m.state.Snapshot()

	frame := views.Frame{
		Width:  m.width,
		Height: m.gridHeight(snap.ChatOpen),
		Cursor: m.cursor,
		Search: m.search.View(),
		Form: views.FormFrame{
			Name:     m.form[0].View(),
			Phone:    m.form[1].View(),
			District: m.form[districtField].View(),
			Address:  m.form[3].View(),
			Error:    m.formErr,
			Spinner:  m.status.SpinnerView(),
		},
		Chat: views.ChatFrame{
			Transcript: m.chatView.View(),
			Input:      m.chat.View(),
			Spinner:    m.status.SpinnerView(),
		},
		Status: m.status.Render(),
		Help:   m.help.View(m.keys),
	}
	if m.focus == FocusForm {
		frame.Form.Focus = formFields[m.formField]
	}
	if m.focus == FocusCommand {
		frame.Command = m.command.View()
	}

	return m.opts.Renderer.Page(snap, m.state.Visible(), frame)
}

// gridHeight - сколько строк достается сетке товаров, 0 = без ограничения.
func (m MainModel) gridHeight(chatOpen bool) int {
	if m.height == 0 {
		return 0
	}
	h := m.height - chromeHeight
	if m.help.ShowAll {
		h -= lipgloss.Height(m.help.View(m.keys)) - lipgloss.Height(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	if chatOpen {
		h -= chatHeight(m.height) + 6
	}
	return max(h, 1)
}

// Focused возвращает активное поле ввода.
func (m MainModel) Focused() Focus {
	return m.focus
}

// Snapshot - снимок состояния для тестов и отладки.
func (m MainModel) Snapshot() app.Snapshot {
	return m.state.Snapshot()
}

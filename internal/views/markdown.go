package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Markdown рендерит ответы стилиста через glamour.
//
// Рендереры кешируются по ширине. Пустой стиль или ошибка glamour -
// простой перенос слов без разметки.
type Markdown struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown создает рендерер. style - стандартный стиль glamour
// ("dark", "light", "notty", ...), "" отключает markdown.
func NewMarkdown(style string) *Markdown {
	return &Markdown{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render возвращает текст, перенесенный по ширине width.
func (m *Markdown) Render(text string, width int) string {
	if width < 10 {
		width = 10
	}
	if m == nil || m.style == "" {
		return wordwrap.String(text, width)
	}

	r, err := m.renderer(width)
	if err != nil {
		return wordwrap.String(text, width)
	}
	out, err := r.Render(text)
	if err != nil {
		return wordwrap.String(text, width)
	}
	return strings.Trim(out, "\n")
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}

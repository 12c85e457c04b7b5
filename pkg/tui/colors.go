// Package tui предоставляет цветовые схемы и клавиши для интерфейса витрины.
//
// Схема выбирается в config.yaml (ui.color_scheme) без изменения кода.
package tui

import "github.com/charmbracelet/lipgloss"

// ColorScheme определяет цвета элементов витрины.
//
// Каждое поле - это lipgloss.Color (может быть hex, ANSI, или named color).
type ColorScheme struct {
	// Бренд
	Accent     lipgloss.Color // Кнопки, выбранный чип, рамка выбранной карточки
	AccentText lipgloss.Color // Текст на Accent фоне
	Text       lipgloss.Color
	Muted      lipgloss.Color // Подписи, описания
	Price      lipgloss.Color

	// Бейджи
	BadgeNew lipgloss.Color
	BadgeHot lipgloss.Color

	// Announcement bar
	AnnouncementBackground lipgloss.Color
	AnnouncementForeground lipgloss.Color

	// Чат стилиста
	UserMessage  lipgloss.Color
	AIMessage    lipgloss.Color
	ErrorMessage lipgloss.Color
	Success      lipgloss.Color

	// Status Bar
	StatusBackground lipgloss.Color
	StatusForeground lipgloss.Color

	// UI Elements
	Border lipgloss.Color
}

// ColorSchemes предоставляет предустановленные цветовые схемы.
var ColorSchemes = map[string]ColorScheme{
	"default": {
		Accent:                 lipgloss.Color("27"),
		AccentText:             lipgloss.Color("15"),
		Text:                   lipgloss.Color("252"),
		Muted:                  lipgloss.Color("242"),
		Price:                  lipgloss.Color("226"),
		BadgeNew:               lipgloss.Color("27"),
		BadgeHot:               lipgloss.Color("196"),
		AnnouncementBackground: lipgloss.Color("27"),
		AnnouncementForeground: lipgloss.Color("15"),
		UserMessage:            lipgloss.Color("226"),
		AIMessage:              lipgloss.Color("86"),
		ErrorMessage:           lipgloss.Color("196"),
		Success:                lipgloss.Color("42"),
		StatusBackground:       lipgloss.Color("235"),
		StatusForeground:       lipgloss.Color("252"),
		Border:                 lipgloss.Color("240"),
	},
	"dark": {
		Accent:                 lipgloss.Color("4"),
		AccentText:             lipgloss.Color("15"),
		Text:                   lipgloss.Color("15"),
		Muted:                  lipgloss.Color("8"),
		Price:                  lipgloss.Color("11"),
		BadgeNew:               lipgloss.Color("4"),
		BadgeHot:               lipgloss.Color("9"),
		AnnouncementBackground: lipgloss.Color("4"),
		AnnouncementForeground: lipgloss.Color("15"),
		UserMessage:            lipgloss.Color("11"),
		AIMessage:              lipgloss.Color("14"),
		ErrorMessage:           lipgloss.Color("9"),
		Success:                lipgloss.Color("10"),
		StatusBackground:       lipgloss.Color("0"),
		StatusForeground:       lipgloss.Color("15"),
		Border:                 lipgloss.Color("4"),
	},
	"light": {
		Accent:                 lipgloss.Color("25"),
		AccentText:             lipgloss.Color("255"),
		Text:                   lipgloss.Color("0"),
		Muted:                  lipgloss.Color("8"),
		Price:                  lipgloss.Color("130"),
		BadgeNew:               lipgloss.Color("25"),
		BadgeHot:               lipgloss.Color("1"),
		AnnouncementBackground: lipgloss.Color("25"),
		AnnouncementForeground: lipgloss.Color("255"),
		UserMessage:            lipgloss.Color("130"),
		AIMessage:              lipgloss.Color("31"),
		ErrorMessage:           lipgloss.Color("1"),
		Success:                lipgloss.Color("28"),
		StatusBackground:       lipgloss.Color("255"),
		StatusForeground:       lipgloss.Color("0"),
		Border:                 lipgloss.Color("8"),
	},
}

// DefaultColorScheme возвращает схему по умолчанию.
func DefaultColorScheme() ColorScheme {
	return ColorSchemes["default"]
}

// GetColorScheme возвращает цветовую схему по имени.
//
// Если схема не найдена, возвращает default.
func GetColorScheme(name string) ColorScheme {
	if scheme, ok := ColorSchemes[name]; ok {
		return scheme
	}
	return DefaultColorScheme()
}

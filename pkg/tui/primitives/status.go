package primitives

import (
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarManager manages a status bar with spinner, debug mode, a transient
// message and custom extra info.
type StatusBarManager struct {
	spinner      spinner.Model
	isProcessing bool
	debugMode    bool
	message      string
	isError      bool
	mu           sync.RWMutex

	cfg StatusBarConfig

	customExtra func() string
}

// StatusBarConfig holds color configuration for the status bar
type StatusBarConfig struct {
	// Spinner colors
	SpinnerColor lipgloss.Color // when processing
	IdleColor    lipgloss.Color // when ready

	// Background colors
	BackgroundColor lipgloss.Color
	DebugColor      lipgloss.Color

	// Text colors
	DebugText   lipgloss.Color
	ExtraText   lipgloss.Color
	MessageText lipgloss.Color
	ErrorText   lipgloss.Color

	// Labels
	BusyLabel  string // Shown next to the spinner, e.g. "Thinking..."
	ReadyLabel string
}

// DefaultStatusBarConfig returns the default color scheme
func DefaultStatusBarConfig() StatusBarConfig {
	return StatusBarConfig{
		SpinnerColor:    lipgloss.Color("86"),
		IdleColor:       lipgloss.Color("242"),
		BackgroundColor: lipgloss.Color("235"),
		DebugColor:      lipgloss.Color("196"),
		DebugText:       lipgloss.Color("15"),
		ExtraText:       lipgloss.Color("252"),
		MessageText:     lipgloss.Color("252"),
		ErrorText:       lipgloss.Color("196"),
		BusyLabel:       "Thinking...",
		ReadyLabel:      "✓ Ready",
	}
}

// NewStatusBarManager creates a new StatusBarManager with the given configuration
func NewStatusBarManager(cfg StatusBarConfig) *StatusBarManager {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.SpinnerColor)

	return &StatusBarManager{
		spinner: s,
		cfg:     cfg,
	}
}

// Render returns the status bar as a styled string
func (sm *StatusBarManager) Render() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var spinnerText string
	fg := sm.cfg.IdleColor
	if sm.isProcessing {
		spinnerText = sm.spinner.View() + " " + sm.cfg.BusyLabel
		fg = sm.cfg.SpinnerColor
	} else {
		spinnerText = sm.cfg.ReadyLabel
	}

	out := lipgloss.NewStyle().
		Background(sm.cfg.BackgroundColor).
		Foreground(fg).
		Padding(0, 1).
		Render(spinnerText)

	if sm.debugMode {
		out += lipgloss.NewStyle().
			Background(sm.cfg.DebugColor).
			Foreground(sm.cfg.DebugText).
			Bold(true).
			Padding(0, 1).
			Render("DEBUG")
	}

	if sm.message != "" {
		color := sm.cfg.MessageText
		if sm.isError {
			color = sm.cfg.ErrorText
		}
		out += lipgloss.NewStyle().
			Background(sm.cfg.BackgroundColor).
			Foreground(color).
			Padding(0, 1).
			Render(sm.message)
	}

	if sm.customExtra != nil {
		if extra := sm.customExtra(); extra != "" {
			out += lipgloss.NewStyle().
				Background(sm.cfg.BackgroundColor).
				Foreground(sm.cfg.ExtraText).
				Padding(0, 1).
				Render(extra)
		}
	}

	return out
}

// Tick starts the spinner animation.
func (sm *StatusBarManager) Tick() tea.Cmd {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.spinner.Tick
}

// Update advances the spinner. Returns nil when idle so the tick loop stops.
func (sm *StatusBarManager) Update(msg tea.Msg) tea.Cmd {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.isProcessing {
		return nil
	}
	var cmd tea.Cmd
	sm.spinner, cmd = sm.spinner.Update(msg)
	return cmd
}

// SetProcessing sets the processing state (shows spinner when true)
func (sm *StatusBarManager) SetProcessing(processing bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.isProcessing = processing
}

// IsProcessing returns the current processing state
func (sm *StatusBarManager) IsProcessing() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.isProcessing
}

// SetMessage shows a transient message; isError paints it red.
func (sm *StatusBarManager) SetMessage(msg string, isError bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.message = msg
	sm.isError = isError
}

// Message returns the current transient message.
func (sm *StatusBarManager) Message() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.message
}

// SetDebugMode toggles DEBUG indicator
func (sm *StatusBarManager) SetDebugMode(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.debugMode = enabled
}

// IsDebugMode returns the current debug mode state
func (sm *StatusBarManager) IsDebugMode() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.debugMode
}

// SetCustomExtra sets the callback for custom status extra info
func (sm *StatusBarManager) SetCustomExtra(fn func() string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.customExtra = fn
}

// SpinnerView returns the current spinner frame for inline indicators.
func (sm *StatusBarManager) SpinnerView() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if !sm.isProcessing {
		return ""
	}
	return sm.spinner.View()
}

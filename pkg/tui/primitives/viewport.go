package primitives

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wrap"
)

// ViewportManager wraps viewport.Model for content that is re-derived on
// every render pass (the stylist transcript).
//
// Lines are stored unwrapped and reflowed to the current width, so a resize
// never loses text. If the view was at the bottom before a change, it stays
// at the bottom after it; otherwise the offset is clamped.
type ViewportManager struct {
	viewport viewport.Model
	lines    []string // Original lines without word-wrap
	mu       sync.RWMutex
}

// ViewportConfig holds configuration for ViewportManager
type ViewportConfig struct {
	MinWidth  int
	MinHeight int
}

// NewViewportManager creates a new ViewportManager.
func NewViewportManager(cfg ViewportConfig) *ViewportManager {
	if cfg.MinWidth < 1 {
		cfg.MinWidth = 20
	}
	if cfg.MinHeight < 1 {
		cfg.MinHeight = 1
	}
	return &ViewportManager{
		viewport: viewport.New(cfg.MinWidth, cfg.MinHeight),
	}
}

// Resize sets new dimensions; height is at least 1, width at least 20.
func (vm *ViewportManager) Resize(width, height int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if height < 1 {
		height = 1
	}
	if width < 20 {
		width = 20
	}

	// wasAtBottom считается ДО изменения высоты
	wasAtBottom := vm.atBottom()

	vm.viewport.Height = height
	vm.viewport.Width = width
	vm.reflow(wasAtBottom)
}

// SetLines replaces the whole content.
func (vm *ViewportManager) SetLines(lines []string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	wasAtBottom := vm.atBottom()
	vm.lines = append(vm.lines[:0:0], lines...)
	vm.reflow(wasAtBottom)
}

// atBottom вызывается под mu.
func (vm *ViewportManager) atBottom() bool {
	return vm.viewport.YOffset+vm.viewport.Height >= vm.viewport.TotalLineCount()
}

// reflow переносит строки по ширине и восстанавливает позицию. Вызывается под mu.
func (vm *ViewportManager) reflow(stickToBottom bool) {
	var wrapped []string
	for _, line := range vm.lines {
		wrapped = append(wrapped, strings.Split(wrap.String(line, vm.viewport.Width), "\n")...)
	}
	vm.viewport.SetContent(strings.Join(wrapped, "\n"))

	if stickToBottom {
		vm.viewport.GotoBottom()
		return
	}
	maxOffset := vm.viewport.TotalLineCount() - vm.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if vm.viewport.YOffset > maxOffset {
		vm.viewport.SetYOffset(maxOffset)
	}
}

// View renders the visible part.
func (vm *ViewportManager) View() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.viewport.View()
}

// GetViewport returns the underlying viewport.Model
func (vm *ViewportManager) GetViewport() viewport.Model {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.viewport
}

// Content returns the stored lines.
func (vm *ViewportManager) Content() []string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]string(nil), vm.lines...)
}

// ScrollUp scrolls the viewport up by n lines
func (vm *ViewportManager) ScrollUp(n int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.viewport.ScrollUp(n)
}

// ScrollDown scrolls the viewport down by n lines
func (vm *ViewportManager) ScrollDown(n int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.viewport.ScrollDown(n)
}

// GotoBottom scrolls to the bottom of the viewport
func (vm *ViewportManager) GotoBottom() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.viewport.GotoBottom()
}

// GetDimensions returns the current viewport dimensions
func (vm *ViewportManager) GetDimensions() (width, height int) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.viewport.Width, vm.viewport.Height
}

package ui

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilkoid/hadikit/internal/app"
	"github.com/ilkoid/hadikit/internal/views"
	"github.com/ilkoid/hadikit/pkg/catalog"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/utils"
)

// Update обрабатывает входящие сообщения.
//
// Каждое сообщение заканчивается reconcile: виджеты подтягиваются
// к новому состоянию до того, как Bubble Tea вызовет View.
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.chatView.Resize(views.ChatWidth(msg.Width)-4, chatHeight(msg.Height))

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case adviceResultMsg:
		m.state.CompleteChat(msg.reply)

	case orderConfirmedMsg:
		if m.state.MarkOrderConfirmed(msg.seq) {
			utils.Info("Order confirmed", "seq", msg.seq)
			seq := msg.seq
			cmds = append(cmds, tea.Tick(m.opts.SuccessDelay, func(time.Time) tea.Msg {
				return orderDoneMsg{seq: seq}
			}))
		}

	case orderDoneMsg:
		if m.state.FinishOrder(msg.seq) {
			m.resetForm()
		}

	case spinner.TickMsg:
		cmds = append(cmds, m.status.Update(msg))
	}

	cmds = append(cmds, m.reconcile())
	return m, tea.Batch(cmds...)
}

// handleKey направляет клавишу активному полю ввода или навигации.
func (m *MainModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ToggleChat) {
		m.state.ToggleChat()
		if m.state.ChatOpen() {
			m.focus = FocusChat
		} else if m.focus == FocusChat {
			m.focus = FocusNone
		}
		return nil
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusCommand:
		return m.handleCommandKey(msg)
	case FocusChat:
		return m.handleChatKey(msg)
	case FocusForm:
		return m.handleFormKey(msg)
	}
	return m.handleNavKey(msg)
}

func (m *MainModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.focus = FocusNone
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.SearchQuery() {
		m.state.SetSearchQuery(m.search.Value())
		m.cursor = 0
	}
	return cmd
}

func (m *MainModel) handleCommandKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.command.Reset()
		m.focus = FocusNone
		return nil
	case tea.KeyEnter:
		input := m.command.Value()
		m.command.Reset()
		m.focus = FocusNone
		m.runCommand(input)
		return nil
	}

	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return cmd
}

// runCommand выполняет строку командной строки и пишет итог в статус.
func (m *MainModel) runCommand(input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	res := m.opts.Commands.Execute(input, m.state)
	if res.Err != nil {
		utils.Warn("Command failed", "input", input, "error", res.Err)
		m.status.SetMessage(res.Err.Error(), true)
		return
	}
	m.status.SetMessage(res.Output, false)
	m.cursor = 0
	if m.state.ChatOpen() && strings.HasPrefix(strings.TrimPrefix(strings.TrimSpace(input), ":"), "chat") {
		m.focus = FocusChat
	}
}

func (m *MainModel) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	empty := len(m.state.Snapshot().ChatTranscript) == 0 && m.chat.Value() == ""

	switch {
	case key.Matches(msg, m.keys.Back):
		m.focus = FocusNone
		return nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.chatView.ScrollUp(m.chatView.GetViewport().Height / 2)
		return nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.chatView.ScrollDown(m.chatView.GetViewport().Height / 2)
		return nil
	case empty && msg.Type == tea.KeyUp:
		m.suggestion = (m.suggestion + len(views.Suggestions) - 1) % len(views.Suggestions)
		return nil
	case empty && msg.Type == tea.KeyDown:
		m.suggestion = (m.suggestion + 1) % len(views.Suggestions)
		return nil
	case msg.Type == tea.KeyEnter:
		text := m.chat.Value()
		if empty {
			text = views.Suggestions[m.suggestion]
		}
		return m.sendChat(text)
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return cmd
}

// sendChat добавляет реплику пользователя и запускает запрос к стилисту.
func (m *MainModel) sendChat(text string) tea.Cmd {
	req, ok := m.state.BeginChat(text)
	if !ok {
		return nil
	}
	m.chat.Reset()
	return m.requestAdvice(req)
}

// requestAdvice возвращает команду, которая ждет ответ стилиста.
//
// Advisor никогда не возвращает ошибку: при сбое приходит fallback.
func (m *MainModel) requestAdvice(req app.ChatRequest) tea.Cmd {
	advisor := m.opts.Advisor
	ctx := m.opts.Context
	names := m.state.Store().Names(0)
	history := toLLMHistory(req.History)

	return func() tea.Msg {
		return adviceResultMsg{reply: advisor.RequestAdvice(ctx, req.Text, history, names)}
	}
}

func toLLMHistory(entries []app.ChatEntry) []llm.Message {
	out := make([]llm.Message, 0, len(entries))
	for _, e := range entries {
		role := llm.RoleUser
		if e.Role == app.ChatAssistant {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: e.Text})
	}
	return out
}

func (m *MainModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.Order() != app.OrderNone {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.state.BackToProduct()
		m.formErr = ""
		return nil
	case msg.Type == tea.KeyEnter:
		return m.submitOrder()
	case msg.Type == tea.KeyTab && m.formField == districtField && m.acceptDistrict():
		return nil
	case key.Matches(msg, m.keys.NextField):
		m.formField = (m.formField + 1) % len(m.form)
		return nil
	case key.Matches(msg, m.keys.PrevField):
		m.formField = (m.formField + len(m.form) - 1) % len(m.form)
		return nil
	case m.formField == districtField && key.Matches(msg, m.keys.ScrollDown):
		m.cycleDistrict(1)
		return nil
	case m.formField == districtField && key.Matches(msg, m.keys.ScrollUp):
		m.cycleDistrict(-1)
		return nil
	}

	var cmd tea.Cmd
	m.form[m.formField], cmd = m.form[m.formField].Update(msg)
	return cmd
}

// acceptDistrict подставляет подсказку в поле района.
func (m *MainModel) acceptDistrict() bool {
	in := &m.form[districtField]
	s := in.CurrentSuggestion()
	if s == "" || s == in.Value() {
		return false
	}
	in.SetValue(s)
	in.CursorEnd()
	return true
}

// cycleDistrict листает список районов по одному.
func (m *MainModel) cycleDistrict(step int) {
	n := len(app.Districts)
	if i := slices.Index(app.Districts, m.form[districtField].Value()); i >= 0 {
		m.districtAt = i
	}
	switch {
	case m.districtAt < 0 && step < 0:
		m.districtAt = n - 1
	case m.districtAt < 0:
		m.districtAt = 0
	default:
		m.districtAt = (m.districtAt + step + n) % n
	}
	m.form[districtField].SetValue(app.Districts[m.districtAt])
	m.form[districtField].CursorEnd()
}

// submitOrder проверяет форму и запускает имитацию отправки.
func (m *MainModel) submitOrder() tea.Cmd {
	seq, err := m.state.ConfirmOrder(m.formValues())
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			m.formErr = fieldError(verr)
			if i := slices.Index(formFields, verr.Field); i >= 0 {
				m.formField = i
			}
			return nil
		}
		m.status.SetMessage(err.Error(), true)
		return nil
	}

	m.formErr = ""
	utils.Info("Order submitted", "seq", seq)
	return tea.Tick(m.opts.ConfirmDelay, func(time.Time) tea.Msg {
		return orderConfirmedMsg{seq: seq}
	})
}

func (m *MainModel) formValues() app.CheckoutForm {
	return app.CheckoutForm{
		Name:     m.form[0].Value(),
		Phone:    m.form[1].Value(),
		District: m.form[districtField].Value(),
		Address:  m.form[3].Value(),
	}
}

func (m *MainModel) resetForm() {
	for i := range m.form {
		m.form[i].Reset()
	}
	m.formField = 0
	m.formErr = ""
	m.districtAt = -1
}

// fieldError - текст ошибки под формой.
func fieldError(verr *app.ValidationError) string {
	labels := map[string]string{
		app.FieldName:     views.LabelName,
		app.FieldPhone:    views.LabelPhone,
		app.FieldDistrict: views.LabelDistrict,
		app.FieldAddress:  views.LabelAddress,
	}
	label := strings.TrimSuffix(labels[verr.Field], " *")
	return "⚠ " + label + ": " + verr.Reason
}

// handleNavKey обрабатывает клавиши, когда ни одно поле не в фокусе.
func (m *MainModel) handleNavKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		return nil
	case key.Matches(msg, m.keys.Command):
		m.focus = FocusCommand
		return nil
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch m.state.View() {
	case app.ViewHome:
		m.handleHomeKey(msg)
	case app.ViewProduct:
		m.handleProductKey(msg)
	case app.ViewCheckout:
		if key.Matches(msg, m.keys.Back) {
			m.state.BackToProduct()
		}
	}
	return nil
}

func (m *MainModel) handleHomeKey(msg tea.KeyMsg) {
	products := m.state.Visible()
	cols := views.Columns(m.width)

	switch {
	case key.Matches(msg, m.keys.NextCategory):
		m.shiftCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		m.shiftCategory(-1)
	case key.Matches(msg, m.keys.Reset):
		m.state.ResetFilters()
		m.cursor = 0
	case key.Matches(msg, m.keys.Left):
		m.cursor--
	case key.Matches(msg, m.keys.Right):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		m.cursor -= cols
	case key.Matches(msg, m.keys.Down):
		m.cursor += cols
	case key.Matches(msg, m.keys.Back):
		m.state.SetSearchQuery("")
	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(products) {
			m.state.SelectProduct(products[m.cursor].ID)
		}
	}
}

func (m *MainModel) shiftCategory(step int) {
	cats := catalog.Categories()
	i := slices.Index(cats, m.state.Snapshot().SelectedCategory)
	m.state.SetCategory(cats[(i+step+len(cats))%len(cats)])
	m.cursor = 0
}

func (m *MainModel) handleProductKey(msg tea.KeyMsg) {
	snap := m.state.Snapshot()
	if snap.SelectedProduct == nil {
		return
	}
	sizes := snap.SelectedProduct.Sizes
	i := slices.Index(sizes, snap.SelectedSize)

	switch {
	case key.Matches(msg, m.keys.Left) && i > 0:
		m.state.SelectSize(sizes[i-1])
	case key.Matches(msg, m.keys.Right) && i < len(sizes)-1:
		m.state.SelectSize(sizes[i+1])
	case key.Matches(msg, m.keys.Buy), key.Matches(msg, m.keys.Select):
		m.state.GoCheckout()
		m.formField = 0
	case key.Matches(msg, m.keys.Back):
		m.state.GoHome()
	}
}

// reconcile восстанавливает виджеты после изменения состояния.
//
// Полная перерисовка не знает про поле поиска и фокус, поэтому:
//  1. значение поиска пересобирается из состояния
//  2. фокус возвращается активному полю, каретка в конец
//  3. курсор сетки зажимается в границы выдачи
//  4. переписка перекладывается в viewport
//  5. спиннер статуса включается на время ожидания
func (m *MainModel) reconcile() tea.Cmd {
	snap := m.state.Snapshot()

	reseeded := false
	if m.search.Value() != snap.SearchQuery {
		m.search.SetValue(snap.SearchQuery)
		reseeded = true
	}

	switch {
	case m.focus == FocusChat && !snap.ChatOpen:
		m.focus = FocusNone
	case m.focus == FocusForm && (snap.View != app.ViewCheckout || snap.Order != app.OrderNone):
		m.focus = FocusNone
	case m.focus == FocusNone && snap.View == app.ViewCheckout && snap.Order == app.OrderNone:
		m.focus = FocusForm
	}

	setFocus(&m.search, m.focus == FocusSearch)
	setFocus(&m.command, m.focus == FocusCommand)
	setFocus(&m.chat, m.focus == FocusChat)
	for i := range m.form {
		setFocus(&m.form[i], m.focus == FocusForm && i == m.formField)
	}
	if reseeded && m.focus == FocusSearch {
		m.search.CursorEnd()
	}

	if n := len(m.state.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.chatView.SetLines(m.opts.Renderer.TranscriptLines(snap.ChatTranscript, m.suggestion, views.ChatWidth(m.width)-4))

	busy := snap.ChatPending || snap.Order == app.OrderSubmitting
	if busy && !m.status.IsProcessing() {
		m.status.SetProcessing(true)
		return m.status.Tick()
	}
	if !busy {
		m.status.SetProcessing(false)
	}
	return nil
}

// setFocus включает или снимает фокус, не трогая каретку.
//
// Курсоры в режиме CursorStatic, так что Focus не возвращает команду.
func setFocus(in *textinput.Model, focused bool) {
	switch {
	case focused && !in.Focused():
		_ = in.Focus()
		in.CursorEnd()
	case !focused && in.Focused():
		in.Blur()
	}
}

// chatHeight - высота переписки для высоты окна.
func chatHeight(height int) int {
	return max(height/3, 8)
}

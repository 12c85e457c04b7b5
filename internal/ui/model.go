// Package ui реализует Bubble Tea модель витрины.
//
// Цикл: клавиша → операция над app.State → reconcile → View.
// View каждый раз строит кадр целиком из снимка состояния, поэтому
// reconcile после каждого Update возвращает виджетам то, что полная
// перерисовка теряет: значение поля поиска, фокус и позицию курсора.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilkoid/hadikit/internal/app"
	"github.com/ilkoid/hadikit/internal/views"
	"github.com/ilkoid/hadikit/pkg/stylist"
	"github.com/ilkoid/hadikit/pkg/tui"
	"github.com/ilkoid/hadikit/pkg/tui/primitives"
)

// Focus - какое поле ввода получает клавиши.
type Focus int

const (
	FocusNone Focus = iota
	FocusSearch
	FocusCommand
	FocusChat
	FocusForm
)

// Порядок полей формы оформления.
var formFields = []string{app.FieldName, app.FieldPhone, app.FieldDistrict, app.FieldAddress}

const districtField = 2

// Options - зависимости и настройки модели.
type Options struct {
	Context      context.Context // Время жизни запросов к стилисту
	Renderer     *views.Renderer
	Advisor      stylist.Advisor
	Commands     *app.CommandRegistry
	Scheme       tui.ColorScheme
	ConfirmDelay time.Duration
	SuccessDelay time.Duration
	Debug        bool
}

// MainModel - главная модель UI (Bubble Tea Model).
//
// Данные магазина живут в app.State; здесь только виджеты и
// UI-локальное состояние (фокус, курсор сетки, размеры окна).
type MainModel struct {
	state *app.State
	opts  Options
	keys  tui.KeyMap
	help  help.Model

	search  textinput.Model
	command textinput.Model
	chat    textinput.Model
	form    []textinput.Model

	status   *primitives.StatusBarManager
	chatView *primitives.ViewportManager

	focus      Focus
	formField  int
	formErr    string
	cursor     int
	suggestion int
	districtAt int
	width      int
	height     int
}

// New создает модель для состояния state.
func New(state *app.State, opts Options) MainModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Commands == nil {
		opts.Commands = app.NewCommandRegistry()
		app.SetupStoreCommands(opts.Commands)
	}

	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Search kits... [/]"
	search.Width = 28

	command := textinput.New()
	command.Prompt = ":"
	command.Placeholder = "help"

	chat := textinput.New()
	chat.Prompt = "> "
	chat.Placeholder = "Message stylist..."
	chat.CharLimit = 500

	form := make([]textinput.Model, len(formFields))
	for i := range form {
		form[i] = textinput.New()
		form[i].Prompt = "┃ "
		form[i].Width = 40
	}
	form[0].Placeholder = "সম্পূর্ণ নামটি লিখুন"
	form[1].Placeholder = "১১ ডিজিটের মোবাইল নাম্বারটি লিখুন"
	form[1].CharLimit = app.PhoneMaxLen
	form[districtField].Placeholder = "জেলা সিলেক্ট করুন [PgUp/PgDn]"
	form[districtField].ShowSuggestions = true
	form[districtField].SetSuggestions(app.Districts)
	form[3].Placeholder = "রোড নাম/নাম্বার, বাড়ি নাম/নামার, ফ্লাট নাম্বার"
	form[3].CharLimit = 200

	// Курсор статичный: reconcile переключает фокус на каждом сообщении.
	for _, in := range append([]*textinput.Model{&search, &command, &chat}, pointers(form)...) {
		in.Cursor.SetMode(cursor.CursorStatic)
	}

	statusCfg := primitives.DefaultStatusBarConfig()
	statusCfg.SpinnerColor = opts.Scheme.AIMessage
	statusCfg.BackgroundColor = opts.Scheme.StatusBackground
	statusCfg.MessageText = opts.Scheme.StatusForeground
	statusCfg.ErrorText = opts.Scheme.ErrorMessage
	status := primitives.NewStatusBarManager(statusCfg)
	status.SetDebugMode(opts.Debug)
	status.SetCustomExtra(func() string {
		return "[" + state.View().String() + "]  Ctrl+T stylist • ? help"
	})

	m := MainModel{
		state:      state,
		opts:       opts,
		keys:       tui.DefaultKeyMap(),
		help:       help.New(),
		search:     search,
		command:    command,
		chat:       chat,
		form:       form,
		status:     status,
		chatView:   primitives.NewViewportManager(primitives.ViewportConfig{MinWidth: 40, MinHeight: 8}),
		districtAt: -1,
	}
	m.reconcile()
	return m
}

// Init запускается один раз при старте Bubble Tea программы.
func (m MainModel) Init() tea.Cmd {
	return nil
}

func pointers(inputs []textinput.Model) []*textinput.Model {
	out := make([]*textinput.Model, len(inputs))
	for i := range inputs {
		out[i] = &inputs[i]
	}
	return out
}

// State возвращает состояние, с которым работает модель.
func (m MainModel) State() *app.State {
	return m.state
}

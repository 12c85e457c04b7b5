package app

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ilkoid/hadikit/pkg/catalog"
)

// CommandHandler - обработчик текстовой команды.
//
// Выполняется синхронно в цикле UI и возвращает строку для статус-бара.
type CommandHandler func(state *State, args []string) (string, error)

// CommandResult - результат выполнения команды.
type CommandResult struct {
	Output string
	Err    error
}

// CommandRegistry - реестр именованных действий витрины.
//
// Те же операции, что и на горячих клавишах, доступны по имени
// из командной строки (":category Football").
// Thread-safe: одновременные вызовы безопасны.
type CommandRegistry struct {
	mu       sync.RWMutex
	commands map[string]CommandHandler
}

// NewCommandRegistry создает новый пустой реестр команд.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]CommandHandler),
	}
}

// Register регистрирует команду. Существующая команда перезаписывается.
func (r *CommandRegistry) Register(name string, handler CommandHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = handler
}

// Execute разбирает ввод на имя и аргументы и выполняет команду.
func (r *CommandRegistry) Execute(input string, state *State) CommandResult {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return CommandResult{}
	}

	name := strings.ToLower(strings.TrimPrefix(parts[0], ":"))
	args := parts[1:]

	r.mu.RLock()
	handler, exists := r.commands[name]
	r.mu.RUnlock()

	if !exists {
		return CommandResult{Err: fmt.Errorf("unknown command: '%s'", name)}
	}

	out, err := handler(state, args)
	return CommandResult{Output: out, Err: err}
}

// GetCommands возвращает отсортированный список имен команд.
func (r *CommandRegistry) GetCommands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]string, 0, len(r.commands))
	for name := range r.commands {
		cmds = append(cmds, name)
	}
	slices.Sort(cmds)
	return cmds
}

// noChange - результат команды, предусловие которой не выполнено.
func noChange(what string) (string, error) {
	return "", fmt.Errorf("%s: nothing to do", what)
}

// SetupStoreCommands регистрирует команды витрины.
//
//	category <name>  - фильтр по категории (All, Football, ...)
//	search [text]    - поиск по названию, без текста сбрасывает
//	open <id>        - карточка товара
//	size <label>     - размер на карточке
//	buy              - оформление заказа
//	back             - с оформления на карточку
//	home             - на главную
//	reset            - сбросить фильтры
//	chat             - открыть/закрыть стилиста
//	help             - список команд
func SetupStoreCommands(registry *CommandRegistry) {
	registry.Register("category", func(state *State, args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("usage: category <%s>", strings.Join(catalog.Categories(), "|"))
		}
		cat := matchCategory(args[0])
		if !catalog.ValidCategory(cat) {
			return "", fmt.Errorf("unknown category: %s", args[0])
		}
		state.SetCategory(cat)
		return "Category: " + cat, nil
	})

	registry.Register("search", func(state *State, args []string) (string, error) {
		q := strings.Join(args, " ")
		state.SetSearchQuery(q)
		if q == "" {
			return "Search cleared", nil
		}
		return fmt.Sprintf("Search: %q", q), nil
	})

	registry.Register("open", func(state *State, args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("usage: open <id>")
		}
		if !state.SelectProduct(args[0]) {
			return "", fmt.Errorf("product %s not found", args[0])
		}
		return "Opened product " + args[0], nil
	})

	registry.Register("size", func(state *State, args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("usage: size <label>")
		}
		size := strings.ToUpper(args[0])
		if !state.SelectSize(size) && state.Snapshot().SelectedSize != size {
			return "", fmt.Errorf("size %s is not available", size)
		}
		return "Size: " + size, nil
	})

	registry.Register("buy", func(state *State, args []string) (string, error) {
		if !state.GoCheckout() {
			return noChange("buy")
		}
		return "Checkout", nil
	})

	registry.Register("back", func(state *State, args []string) (string, error) {
		if !state.BackToProduct() {
			return noChange("back")
		}
		return "Back to product", nil
	})

	registry.Register("home", func(state *State, args []string) (string, error) {
		state.GoHome()
		return "Home", nil
	})

	registry.Register("reset", func(state *State, args []string) (string, error) {
		state.ResetFilters()
		return "Filters reset", nil
	})

	registry.Register("chat", func(state *State, args []string) (string, error) {
		state.ToggleChat()
		if state.ChatOpen() {
			return "Stylist opened", nil
		}
		return "Stylist closed", nil
	})

	registry.Register("help", func(state *State, args []string) (string, error) {
		return "Commands: " + strings.Join(registry.GetCommands(), ", "), nil
	})

	// Короткие псевдонимы
	registry.Register("c", func(state *State, args []string) (string, error) {
		return unwrap(registry.Execute("category "+strings.Join(args, " "), state))
	})
	registry.Register("s", func(state *State, args []string) (string, error) {
		return unwrap(registry.Execute("search "+strings.Join(args, " "), state))
	})
}

func unwrap(r CommandResult) (string, error) {
	return r.Output, r.Err
}

// matchCategory приводит ввод пользователя к метке категории без учета регистра.
func matchCategory(input string) string {
	for _, c := range catalog.Categories() {
		if strings.EqualFold(c, input) {
			return c
		}
	}
	return input
}

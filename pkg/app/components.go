// Package app собирает компоненты витрины для разных точек входа
// (TUI, одноразовый вопрос стилисту, вывод каталога).
//
// Entry points только инициализируют и оркестрируют; вся логика
// магазина живет в internal/app, отрисовка в internal/views.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilkoid/hadikit/internal/app"
	"github.com/ilkoid/hadikit/internal/views"
	"github.com/ilkoid/hadikit/pkg/catalog"
	"github.com/ilkoid/hadikit/pkg/config"
	"github.com/ilkoid/hadikit/pkg/factory"
	"github.com/ilkoid/hadikit/pkg/llm"
	"github.com/ilkoid/hadikit/pkg/stylist"
	"github.com/ilkoid/hadikit/pkg/tui"
	"github.com/ilkoid/hadikit/pkg/utils"
)

// Components содержит все компоненты приложения для переиспользования.
type Components struct {
	Config     *config.AppConfig
	State      *app.State
	Stylist    *stylist.Client
	Renderer   *views.Renderer
	Commands   *app.CommandRegistry
	Scheme     tui.ColorScheme
	ModelAlias string // Алиас модели стилиста, "" если модели нет
}

// ConfigPathFinder определяет стратегию поиска пути к config.yaml.
type ConfigPathFinder interface {
	FindConfigPath() string
}

// DefaultConfigPathFinder реализует стандартную стратегию поиска config.yaml.
//
// Порядок поиска:
// 1. Флаг --config (если указан)
// 2. Текущая директория (./config.yaml)
// 3. Директория бинарника
// 4. Родительские директории (для запуска из cmd/hadikit/)
type DefaultConfigPathFinder struct {
	// ConfigFlag - значение флага --config, если указан
	ConfigFlag string
}

// FindConfigPath находит путь к config.yaml.
//
// Если файла нигде нет, возвращается ./config.yaml: LoadOrDefault
// тогда отдаст встроенную конфигурацию.
func (f *DefaultConfigPathFinder) FindConfigPath() string {
	if f.ConfigFlag != "" {
		return resolveAbsPath(f.ConfigFlag)
	}

	candidates := []string{"config.yaml"}
	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), "config.yaml"))
	}
	candidates = append(candidates,
		filepath.Join("..", "..", "config.yaml"),
		filepath.Join("..", "config.yaml"),
	)

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return resolveAbsPath(p)
		}
	}
	return resolveAbsPath("config.yaml")
}

// InitializeConfig находит и загружает конфигурацию.
//
// Явно указанный --config обязан существовать; без флага при
// отсутствии файла используется config.Default().
func InitializeConfig(finder ConfigPathFinder) (*config.AppConfig, string, error) {
	cfgPath := finder.FindConfigPath()

	load := config.LoadOrDefault
	if f, ok := finder.(*DefaultConfigPathFinder); ok && f.ConfigFlag != "" {
		load = config.Load
	}

	cfg, err := load(cfgPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}
	return cfg, cfgPath, nil
}

// Initialize создает состояние магазина, стилиста и рендерер.
//
// Ошибка создания LLM провайдера не фатальна: стилист работает поверх
// llm.Unavailable и на любой вопрос отвечает fallback-текстом.
func Initialize(ctx context.Context, cfg *config.AppConfig, cfgPath string) (*Components, error) {
	alias, provider := newProvider(ctx, cfg)

	stylistCfg := cfg.Stylist
	if stylistCfg.PromptFile != "" && !filepath.IsAbs(stylistCfg.PromptFile) && cfgPath != "" {
		stylistCfg.PromptFile = filepath.Join(filepath.Dir(cfgPath), stylistCfg.PromptFile)
	}
	advisor, err := stylist.New(provider, stylistCfg)
	if err != nil {
		return nil, fmt.Errorf("stylist init failed: %w", err)
	}

	scheme := tui.GetColorScheme(cfg.UI.ColorScheme)
	commands := app.NewCommandRegistry()
	app.SetupStoreCommands(commands)

	utils.Info("Components initialized",
		"stylist_model", alias,
		"products", catalog.Default().Len(),
		"color_scheme", cfg.UI.ColorScheme)

	return &Components{
		Config:  cfg,
		State:   app.NewState(catalog.Default()),
		Stylist: advisor,
		Renderer: views.New(views.Options{
			Scheme:         scheme,
			MarkdownStyle:  cfg.UI.MarkdownStyle,
			DeliveryCharge: cfg.Checkout.DeliveryCharge,
		}),
		Commands:   commands,
		Scheme:     scheme,
		ModelAlias: alias,
	}, nil
}

// newProvider создает провайдера модели стилиста или заглушку.
func newProvider(ctx context.Context, cfg *config.AppConfig) (string, llm.Provider) {
	alias, def, ok := cfg.GetStylistModel()
	if !ok {
		utils.Warn("No stylist model configured, using fallback replies")
		return "", llm.Unavailable(errors.New("no stylist model configured"))
	}

	provider, err := factory.NewLLMProvider(ctx, def)
	if err != nil {
		utils.Warn("LLM provider unavailable, using fallback replies",
			"model", alias,
			"provider", def.Provider,
			"api_key", utils.MaskKey(def.APIKey),
			"error", err)
		return alias, llm.Unavailable(err)
	}

	utils.Info("LLM provider created",
		"model", alias,
		"provider", def.Provider,
		"api_key", utils.MaskKey(def.APIKey))
	return alias, provider
}

// Ask задает стилисту один вопрос без истории.
func (c *Components) Ask(ctx context.Context, query string) string {
	return c.Stylist.RequestAdvice(ctx, query, nil, c.State.Store().Names(0))
}

// resolveAbsPath преобразует путь в абсолютный (если это не уже абсолютный путь).
func resolveAbsPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

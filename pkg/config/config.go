// Package config загружает конфигурацию HADIKIT из config.yaml.
//
// Значения вида ${VAR} подставляются из окружения. Перед подстановкой
// подгружается .env рядом с конфигом (если есть), уже заданные переменные
// окружения не перезаписываются.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNotFound возвращается Load, если файла конфигурации нет.
var ErrNotFound = errors.New("config file not found")

// AppConfig - корневая структура конфигурации.
// Она зеркалит структуру config.yaml.
type AppConfig struct {
	Models   ModelsConfig   `yaml:"models"`
	Stylist  StylistConfig  `yaml:"stylist"`
	Checkout CheckoutConfig `yaml:"checkout"`
	UI       UIConfig       `yaml:"ui"`
	App      AppSpecific    `yaml:"app"`
}

// ModelsConfig - настройки AI моделей.
type ModelsConfig struct {
	DefaultChat string              `yaml:"default_chat"` // Алиас модели по умолчанию (например, "gemini-flash")
	Definitions map[string]ModelDef `yaml:"definitions"`  // Словарь определений моделей
}

// ModelDef - параметры конкретной модели.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "gemini", "openai", "zai", "deepseek", "openrouter"
	ModelName   string        `yaml:"model_name"` // Реальное имя в API
	APIKey      string        `yaml:"api_key"`    // Поддерживает ${VAR}
	BaseURL     string        `yaml:"base_url"`   // Для OpenAI-совместимых провайдеров
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	TopP        float64       `yaml:"top_p"`
	Timeout     time.Duration `yaml:"timeout"` // Go умеет парсить строки вида "60s", "1m"
}

// StylistConfig - настройки AI стилиста.
type StylistConfig struct {
	Model        string        `yaml:"model"`         // Алиас из models.definitions, пусто = default_chat
	Timeout      time.Duration `yaml:"timeout"`       // Ограничение на один запрос
	CatalogLimit int           `yaml:"catalog_limit"` // 0 = весь каталог
	HistoryTurns int           `yaml:"history_turns"` // Сколько прошлых реплик отправлять, 0 = ни одной
	PromptFile   string        `yaml:"prompt_file"`   // YAML промпта, пусто = встроенный
	Fallback     string        `yaml:"fallback"`      // Ответ при любой ошибке сервиса
	RateLimit    int           `yaml:"rate_limit"`    // Запросов в минуту
	BurstLimit   int           `yaml:"burst_limit"`
}

// DefaultFallback - ответ стилиста, когда сервис недоступен.
const DefaultFallback = "The AI stylist is currently offline. Please browse our collection manually!"

// GetDefaults возвращает копию с дефолтными значениями для незаполненных полей.
func (c *StylistConfig) GetDefaults() StylistConfig {
	result := *c

	if result.Timeout == 0 {
		result.Timeout = 15 * time.Second
	}
	if result.Fallback == "" {
		result.Fallback = DefaultFallback
	}
	if result.RateLimit == 0 {
		result.RateLimit = 20 // запросов в минуту
	}
	if result.BurstLimit == 0 {
		result.BurstLimit = 1
	}
	return result
}

// CheckoutConfig - параметры имитации оформления заказа.
type CheckoutConfig struct {
	DeliveryCharge int           `yaml:"delivery_charge"` // TK
	ConfirmDelay   time.Duration `yaml:"confirm_delay"`   // "Отправка" заказа
	SuccessDelay   time.Duration `yaml:"success_delay"`   // Сколько висит экран успеха
}

// GetDefaults возвращает копию с дефолтными значениями для незаполненных полей.
func (c *CheckoutConfig) GetDefaults() CheckoutConfig {
	result := *c

	if result.DeliveryCharge == 0 {
		result.DeliveryCharge = 110
	}
	if result.ConfirmDelay == 0 {
		result.ConfirmDelay = 1500 * time.Millisecond
	}
	if result.SuccessDelay == 0 {
		result.SuccessDelay = 3 * time.Second
	}
	return result
}

// UIConfig - внешний вид терминального интерфейса.
type UIConfig struct {
	ColorScheme   string `yaml:"color_scheme"`   // "default", "dark", "light"
	MarkdownStyle string `yaml:"markdown_style"` // Стиль glamour: "dark", "light", "notty", "" = без markdown
	AltScreen     bool   `yaml:"alt_screen"`
}

// AppSpecific - общие настройки приложения.
type AppSpecific struct {
	Debug  bool   `yaml:"debug"`
	LogDir string `yaml:"log_dir"`
}

// Default возвращает конфигурацию без файла: Gemini через ${GEMINI_API_KEY}.
func Default() *AppConfig {
	cfg := &AppConfig{
		Models: ModelsConfig{
			DefaultChat: "gemini-flash",
			Definitions: map[string]ModelDef{
				"gemini-flash": {
					Provider:    "gemini",
					ModelName:   "gemini-3-flash-preview",
					APIKey:      os.Getenv("GEMINI_API_KEY"),
					Temperature: 0.7,
					TopP:        0.95,
				},
			},
		},
		UI:  UIConfig{ColorScheme: "default", MarkdownStyle: "dark"},
		App: AppSpecific{LogDir: "."},
	}
	cfg.applyDefaults()
	return cfg
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w at: %s", ErrNotFound, path)
	}

	// 2. Подгружаем .env рядом с конфигом, отсутствие файла не ошибка
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	// 3. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 4. Подставляем переменные окружения (${VAR} или $VAR)
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 5. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	cfg.applyDefaults()

	// 6. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault загружает конфиг, а при отсутствии файла возвращает Default.
//
// Ошибки парсинга и валидации не маскируются.
func LoadOrDefault(path string) (*AppConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func (c *AppConfig) applyDefaults() {
	c.Stylist = c.Stylist.GetDefaults()
	c.Checkout = c.Checkout.GetDefaults()
	if c.UI.ColorScheme == "" {
		c.UI.ColorScheme = "default"
	}
	if c.App.LogDir == "" {
		c.App.LogDir = "."
	}
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	if len(c.Models.Definitions) == 0 {
		return fmt.Errorf("models.definitions must contain at least one model")
	}
	if c.Models.DefaultChat != "" {
		if _, ok := c.Models.Definitions[c.Models.DefaultChat]; !ok {
			return fmt.Errorf("default_chat model '%s' is not defined in definitions", c.Models.DefaultChat)
		}
	}
	if c.Stylist.Model != "" {
		if _, ok := c.Models.Definitions[c.Stylist.Model]; !ok {
			return fmt.Errorf("stylist.model '%s' is not defined in definitions", c.Stylist.Model)
		}
	}
	if c.Stylist.CatalogLimit < 0 || c.Stylist.HistoryTurns < 0 {
		return fmt.Errorf("stylist.catalog_limit and stylist.history_turns must be >= 0")
	}
	if c.Stylist.RateLimit < 0 || c.Stylist.BurstLimit < 0 {
		return fmt.Errorf("stylist.rate_limit and stylist.burst_limit must be >= 0")
	}
	if c.Checkout.DeliveryCharge < 0 {
		return fmt.Errorf("checkout.delivery_charge must be >= 0")
	}
	return nil
}

// GetStylistModel возвращает модель стилиста.
//
// Приоритет: stylist.model, затем models.default_chat, затем любая из definitions.
func (c *AppConfig) GetStylistModel() (string, ModelDef, bool) {
	name := c.Stylist.Model
	if name == "" {
		name = c.Models.DefaultChat
	}
	if m, ok := c.Models.Definitions[name]; ok {
		return name, m, true
	}
	for alias, m := range c.Models.Definitions {
		return alias, m, true
	}
	return "", ModelDef{}, false
}

// Package utils предоставляет файловый логгер для TUI приложения.
//
// Логгер пишет в .log файл с timestamp в имени, stdout занят интерфейсом.
// Под капотом zap.SugaredLogger; до InitLogger все вызовы - no-op.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMutex sync.RWMutex
	sugar    = zap.NewNop().Sugar()
	logPath  string
)

// InitLogger создает .log файл в директории dir.
//
// Имя файла: hadikit-YYYY-MM-DD-HH-MM.log (например, hadikit-2025-12-27-15-30.log).
// debug включает уровень DEBUG. Повторный вызов ничего не делает.
func InitLogger(dir string, debug bool) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logPath != "" {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("hadikit-%s.log", time.Now().Format("2006-01-02-15-04")))

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.OutputPaths = []string{filename}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	sugar = logger.Sugar()
	logPath = filename
	sugar.Infow("Logger initialized", "file", filename, "debug", debug)
	return nil
}

// LogPath возвращает путь к текущему лог-файлу или "" до инициализации.
func LogPath() string {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return logPath
}

// Info - информационное сообщение.
func Info(msg string, keyvals ...any) {
	current().Infow(msg, keyvals...)
}

// Error - сообщение об ошибке.
func Error(msg string, keyvals ...any) {
	current().Errorw(msg, keyvals...)
}

// Debug - отладочное сообщение.
func Debug(msg string, keyvals ...any) {
	current().Debugw(msg, keyvals...)
}

// Warn - предупреждение.
func Warn(msg string, keyvals ...any) {
	current().Warnw(msg, keyvals...)
}

func current() *zap.SugaredLogger {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return sugar
}

// Close сбрасывает буферы и отключает логгер.
//
// Вызывается через defer в main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logPath == "" {
		return
	}
	// Sync на файле не падает, ошибки для /dev/stderr игнорируем
	_ = sugar.Sync()
	sugar = zap.NewNop().Sugar()
	logPath = ""
}

// MaskKey скрывает API ключ для логов: первые и последние 4 символа.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

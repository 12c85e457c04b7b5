// Интерфейс Провайдера через который работает всё приложение.

package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse - модель ответила, но без текста.
var ErrEmptyResponse = errors.New("llm: empty response")

// Provider - контракт для любого AI-сервиса.
type Provider interface {
	// Generate отправляет историю сообщений и возвращает ответ модели.
	// Пустой ответ модели должен возвращаться как ErrEmptyResponse.
	Generate(ctx context.Context, messages []Message, opts ...GenerateOption) (Message, error)
}

// ProviderFunc позволяет использовать функцию как Provider.
type ProviderFunc func(ctx context.Context, messages []Message, opts ...GenerateOption) (Message, error)

// Generate реализует Provider.
func (f ProviderFunc) Generate(ctx context.Context, messages []Message, opts ...GenerateOption) (Message, error) {
	return f(ctx, messages, opts...)
}

// Unavailable возвращает провайдера, который всегда отвечает ошибкой err.
//
// Используется, когда настоящий провайдер не удалось создать: приложение
// продолжает работать, а стилист отвечает fallback-текстом.
func Unavailable(err error) Provider {
	return ProviderFunc(func(context.Context, []Message, ...GenerateOption) (Message, error) {
		return Message{}, err
	})
}

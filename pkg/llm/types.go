// Базовые типы - универсальный язык общения с моделями
package llm

// Role - роль автора сообщения.
type Role string

// Константы для удобства
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message - одно сообщение диалога.
type Message struct {
	Role    Role
	Content string
}

// UserMessage - короткий конструктор пользовательского сообщения.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

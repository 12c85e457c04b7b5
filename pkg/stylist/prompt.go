package stylist

import (
	"fmt"

	"github.com/ilkoid/hadikit/pkg/prompt"
)

// promptData - переменные шаблона промпта стилиста.
type promptData struct {
	UserText string
	Products []string
}

// defaultPrompt - персона стилиста. Формат как у prompt_file.
const defaultPrompt = `
config:
  temperature: 0.7
  top_p: 0.95
messages:
  - role: user
    content: |-
      User is asking for jersey styling advice: "{{.UserText}}".
      Available store products are: {{join .Products ", "}}.

      Act as a high-end sports stylist.
      1. Suggest 1-2 jerseys from the list.
      2. Explain why they fit the user's request.
      3. Suggest what to pair them with (jeans, sneakers, shorts).
      Keep the response concise and friendly.
`

func loadPrompt(path string) (*prompt.PromptFile, error) {
	if path == "" {
		return prompt.Parse([]byte(defaultPrompt))
	}
	pf, err := prompt.Load(path)
	if err != nil {
		return nil, fmt.Errorf("stylist prompt: %w", err)
	}
	return pf, nil
}

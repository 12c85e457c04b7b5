package ui

// adviceResultMsg - ответ стилиста (или fallback), пришедший из tea.Cmd.
type adviceResultMsg struct {
	reply string
}

// orderConfirmedMsg - истекла задержка "отправки" заказа seq.
type orderConfirmedMsg struct {
	seq uint64
}

// orderDoneMsg - истекло время показа экрана успеха заказа seq.
type orderDoneMsg struct {
	seq uint64
}

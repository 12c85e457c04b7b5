package app

import (
	"errors"
	"strings"

	"github.com/ilkoid/hadikit/pkg/catalog"
)

var (
	// ErrNoProduct - оформление без выбранного товара.
	ErrNoProduct = errors.New("no product selected")
	// ErrOrderInFlight - заказ уже отправляется или подтвержден.
	ErrOrderInFlight = errors.New("order already submitted")
	// ErrNotCheckout - подтверждение заказа вне экрана оформления.
	ErrNotCheckout = errors.New("not on checkout view")
)

// SetCategory выбирает категорию и переходит на главную.
//
// Неизвестная метка - no-op.
func (s *State) SetCategory(cat string) bool {
	if !catalog.ValidCategory(cat) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.SelectedCategory == cat && s.data.View == ViewHome {
		return false
	}
	if s.data.View == ViewCheckout {
		s.leaveCheckout()
	}
	s.data.SelectedCategory = cat
	s.data.View = ViewHome
	s.commit()
	return true
}

// SelectProduct открывает карточку товара. Размер - первый из доступных.
//
// Неизвестный id - no-op.
func (s *State) SelectProduct(id string) bool {
	p, ok := s.store.Find(id)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaveCheckout()
	s.data.SelectedProduct = &p
	s.data.SelectedSize = ""
	if len(p.Sizes) > 0 {
		s.data.SelectedSize = p.Sizes[0]
	}
	s.data.View = ViewProduct
	s.commit()
	return true
}

// GoHome возвращает на главную и сбрасывает выбранный товар.
//
// Идемпотентна: повторный вызов ничего не меняет.
func (s *State) GoHome() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goHomeLocked()
}

func (s *State) goHomeLocked() bool {
	d := &s.data
	if d.View == ViewHome && d.SelectedProduct == nil && d.SelectedSize == "" && d.Order == OrderNone {
		return false
	}
	d.View = ViewHome
	d.SelectedProduct = nil
	d.SelectedSize = ""
	s.leaveCheckout()
	s.commit()
	return true
}

// GoCheckout открывает оформление заказа для выбранного товара.
func (s *State) GoCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.SelectedProduct == nil || s.data.View == ViewCheckout {
		return false
	}
	s.data.View = ViewCheckout
	s.data.Order = OrderNone
	s.commit()
	return true
}

// BackToProduct возвращает с оформления на карточку товара.
//
// Во время отправки заказа недоступна.
func (s *State) BackToProduct() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.View != ViewCheckout || s.data.SelectedProduct == nil || s.data.Order != OrderNone {
		return false
	}
	s.data.View = ViewProduct
	s.commit()
	return true
}

// SetSearchQuery меняет текст поиска. С любого экрана переводит на главную.
func (s *State) SetSearchQuery(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.SearchQuery == text && s.data.View == ViewHome {
		return false
	}
	if s.data.View == ViewCheckout {
		s.leaveCheckout()
	}
	s.data.SearchQuery = text
	s.data.View = ViewHome
	s.commit()
	return true
}

// ResetFilters сбрасывает категорию и поиск.
func (s *State) ResetFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.SelectedCategory == catalog.AllCategories && s.data.SearchQuery == "" {
		return false
	}
	s.data.SelectedCategory = catalog.AllCategories
	s.data.SearchQuery = ""
	s.commit()
	return true
}

// SelectSize выбирает размер выбранного товара.
func (s *State) SelectSize(size string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.data.SelectedProduct
	if p == nil || !p.HasSize(size) || s.data.SelectedSize == size {
		return false
	}
	s.data.SelectedSize = size
	s.commit()
	return true
}

// ToggleChat открывает или закрывает чат стилиста.
func (s *State) ToggleChat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ChatOpen = !s.data.ChatOpen
	s.commit()
	return true
}

// ChatRequest - данные для запроса к стилисту.
type ChatRequest struct {
	Text    string
	History []ChatEntry // Реплики до Text
}

// BeginChat добавляет сообщение пользователя и ставит флаг ожидания.
//
// Пустой (после trim) текст или уже ожидаемый ответ - no-op, ok = false.
func (s *State) BeginChat(text string) (ChatRequest, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatRequest{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.ChatPending {
		return ChatRequest{}, false
	}

	req := ChatRequest{
		Text:    text,
		History: append([]ChatEntry(nil), s.data.ChatTranscript...),
	}
	s.data.ChatTranscript = append(s.data.ChatTranscript, ChatEntry{Role: ChatUser, Text: text})
	s.data.ChatPending = true
	s.commit()
	return req, true
}

// CompleteChat добавляет ответ стилиста и снимает флаг ожидания.
//
// Ответ применяется и при закрытом чате. Без ожидания - no-op.
func (s *State) CompleteChat(reply string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.ChatPending {
		return false
	}
	s.data.ChatTranscript = append(s.data.ChatTranscript, ChatEntry{Role: ChatAssistant, Text: reply})
	s.data.ChatPending = false
	s.commit()
	return true
}

// ConfirmOrder принимает форму и начинает имитацию отправки заказа.
//
// Возвращает номер заказа для MarkOrderConfirmed и FinishOrder.
// Ошибка валидации имеет тип *ValidationError; состояние при ошибке не меняется.
func (s *State) ConfirmOrder(form CheckoutForm) (uint64, error) {
	form = form.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.data.View != ViewCheckout:
		return 0, ErrNotCheckout
	case s.data.SelectedProduct == nil:
		return 0, ErrNoProduct
	case s.data.Order != OrderNone:
		return 0, ErrOrderInFlight
	}
	if err := form.Validate(); err != nil {
		return 0, err
	}

	s.orderSeq++
	s.data.Order = OrderSubmitting
	s.data.OrderForm = form
	s.commit()
	return s.orderSeq, nil
}

// MarkOrderConfirmed показывает экран успеха для заказа seq.
//
// Устаревший seq или ушедший с оформления пользователь - no-op.
func (s *State) MarkOrderConfirmed(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.orderSeq || s.data.Order != OrderSubmitting || s.data.View != ViewCheckout {
		return false
	}
	s.data.Order = OrderConfirmed
	s.commit()
	return true
}

// FinishOrder завершает заказ seq: главная, товар сброшен.
func (s *State) FinishOrder(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.orderSeq || s.data.Order != OrderConfirmed || s.data.View != ViewCheckout {
		return false
	}
	return s.goHomeLocked()
}

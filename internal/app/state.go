// Package app предоставляет состояние витрины и операции над ним.
//
// State - единственный владелец данных сессии: текущий экран, выбранный
// товар, фильтры, переписка со стилистом и статус заказа. Все изменения
// идут через методы-операции; каждая успешная операция увеличивает
// Version ровно на единицу. Операция с невыполненным предусловием -
// no-op: состояние и Version не меняются.
//
// Thread-safe через sync.RWMutex, хотя в TUI пишет только один goroutine.
package app

import (
	"slices"
	"sync"

	"github.com/ilkoid/hadikit/pkg/catalog"
)

// View - активный экран.
type View int

const (
	ViewHome View = iota
	ViewProduct
	ViewCheckout
)

func (v View) String() string {
	switch v {
	case ViewProduct:
		return "product"
	case ViewCheckout:
		return "checkout"
	default:
		return "home"
	}
}

// ChatRole - автор реплики в чате стилиста.
type ChatRole string

const (
	ChatUser      ChatRole = "user"
	ChatAssistant ChatRole = "assistant"
)

// ChatEntry - одна реплика чата.
type ChatEntry struct {
	Role ChatRole
	Text string
}

// OrderStatus - этап имитации оформления заказа.
type OrderStatus int

const (
	OrderNone OrderStatus = iota
	OrderSubmitting
	OrderConfirmed
)

// Snapshot - неизменяемая копия состояния для рендера и тестов.
type Snapshot struct {
	View             View
	SelectedProduct  *catalog.Product // не nil на Product и Checkout; поиск его не сбрасывает
	SelectedSize     string
	SelectedCategory string
	SearchQuery      string
	ChatOpen         bool
	ChatTranscript   []ChatEntry
	ChatPending      bool
	Order            OrderStatus
	OrderForm        CheckoutForm // Последняя принятая форма
	Version          uint64
}

// State - состояние сессии витрины.
type State struct {
	mu    sync.RWMutex
	store *catalog.Store
	data  Snapshot

	// orderSeq отличает таймеры текущего заказа от устаревших.
	orderSeq uint64
}

// NewState создает состояние по умолчанию: Home, категория "All".
func NewState(store *catalog.Store) *State {
	return &State{
		store: store,
		data: Snapshot{
			View:             ViewHome,
			SelectedCategory: catalog.AllCategories,
		},
	}
}

// Store возвращает каталог, с которым работает состояние.
func (s *State) Store() *catalog.Store {
	return s.store
}

// Snapshot возвращает глубокую копию текущего состояния.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.data
	if s.data.SelectedProduct != nil {
		p := *s.data.SelectedProduct
		p.Sizes = slices.Clone(p.Sizes)
		p.Colors = slices.Clone(p.Colors)
		snap.SelectedProduct = &p
	}
	snap.ChatTranscript = slices.Clone(s.data.ChatTranscript)
	return snap
}

// Version возвращает номер версии состояния.
func (s *State) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Version
}

// View возвращает активный экран.
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.View
}

// SearchQuery возвращает текст поиска.
func (s *State) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SearchQuery
}

// ChatPending возвращает true, пока ответ стилиста не получен.
func (s *State) ChatPending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ChatPending
}

// ChatOpen возвращает видимость панели чата.
func (s *State) ChatOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ChatOpen
}

// Order возвращает статус заказа.
func (s *State) Order() OrderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Order
}

// Visible возвращает товары главной страницы для текущих фильтров.
func (s *State) Visible() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Filter(s.data.SelectedCategory, s.data.SearchQuery)
}

// commit фиксирует новую версию. Вызывается под s.mu.
func (s *State) commit() {
	s.data.Version++
}

// leaveCheckout сбрасывает незавершенный заказ при уходе с экрана оформления.
func (s *State) leaveCheckout() {
	s.data.Order = OrderNone
}

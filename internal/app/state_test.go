package app

import (
	"errors"
	"testing"

	"github.com/ilkoid/hadikit/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return NewState(catalog.Default())
}

func validForm() CheckoutForm {
	return CheckoutForm{
		Name:     "Rahim Uddin",
		Phone:    "01712345678",
		District: "ঢাকা",
		Address:  "House 12, Road 5, Dhanmondi",
	}
}

func TestNewState_Defaults(t *testing.T) {
	snap := newTestState().Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Nil(t, snap.SelectedProduct)
	assert.Equal(t, "All", snap.SelectedCategory)
	assert.Empty(t, snap.SearchQuery)
	assert.False(t, snap.ChatOpen)
	assert.False(t, snap.ChatPending)
	assert.Empty(t, snap.ChatTranscript)
	assert.Zero(t, snap.Version)
}

func TestSelectProduct(t *testing.T) {
	s := newTestState()
	store := s.Store()

	for _, p := range store.List() {
		require.True(t, s.SelectProduct(p.ID))
		snap := s.Snapshot()
		require.NotNil(t, snap.SelectedProduct)
		assert.Equal(t, p, *snap.SelectedProduct)
		assert.Equal(t, ViewProduct, snap.View)
		assert.Equal(t, p.Sizes[0], snap.SelectedSize)
	}

	before := s.Snapshot()
	assert.False(t, s.SelectProduct("999"))
	assert.Equal(t, before, s.Snapshot(), "unknown id leaves state unchanged")
}

func TestGoHome_Idempotent(t *testing.T) {
	s := newTestState()
	s.SetSearchQuery("retro")
	require.True(t, s.SelectProduct("3"))
	require.True(t, s.GoCheckout())

	assert.True(t, s.GoHome())
	once := s.Snapshot()
	assert.False(t, s.GoHome())
	assert.Equal(t, once, s.Snapshot())

	assert.Equal(t, ViewHome, once.View)
	assert.Nil(t, once.SelectedProduct)
	assert.Equal(t, "retro", once.SearchQuery, "filters survive navigation")
}

func TestSetCategory(t *testing.T) {
	s := newTestState()
	require.True(t, s.SelectProduct("21"))

	assert.True(t, s.SetCategory("Football"))
	snap := s.Snapshot()
	assert.Equal(t, "Football", snap.SelectedCategory)
	assert.Equal(t, ViewHome, snap.View)
	assert.Len(t, s.Visible(), 20)

	v := s.Version()
	assert.False(t, s.SetCategory("Cricket"))
	assert.False(t, s.SetCategory("football"), "labels are case sensitive")
	assert.Equal(t, v, s.Version())
}

func TestSetSearchQuery_ForcesHome(t *testing.T) {
	s := newTestState()
	require.True(t, s.SelectProduct("4"))
	require.True(t, s.GoCheckout())

	assert.True(t, s.SetSearchQuery("Barcelona"))
	snap := s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Equal(t, OrderNone, snap.Order)
	require.NotNil(t, snap.SelectedProduct, "search only switches the view")
	assert.Equal(t, "4", snap.SelectedProduct.ID)

	var ids []string
	for _, p := range s.Visible() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"4", "8", "13", "15"}, ids)

	require.True(t, s.SetCategory("Football"))
	assert.Len(t, s.Visible(), 4)
}

func TestResetFilters(t *testing.T) {
	s := newTestState()
	assert.False(t, s.ResetFilters())

	s.SetCategory("Classic")
	s.SetSearchQuery("zzz")
	assert.Empty(t, s.Visible())

	assert.True(t, s.ResetFilters())
	assert.Len(t, s.Visible(), s.Store().Len())
}

func TestSelectSize(t *testing.T) {
	s := newTestState()
	assert.False(t, s.SelectSize("M"), "no product")

	require.True(t, s.SelectProduct("1"))
	assert.True(t, s.SelectSize("XL"))
	assert.Equal(t, "XL", s.Snapshot().SelectedSize)
	assert.False(t, s.SelectSize("XXXL"))
	assert.Equal(t, "XL", s.Snapshot().SelectedSize)
}

func TestGoCheckout_RequiresProduct(t *testing.T) {
	s := newTestState()
	assert.False(t, s.GoCheckout())
	assert.Equal(t, ViewHome, s.View())

	require.True(t, s.SelectProduct("3"))
	assert.True(t, s.GoCheckout())
	assert.Equal(t, ViewCheckout, s.View())

	assert.True(t, s.BackToProduct())
	assert.Equal(t, ViewProduct, s.View())
	assert.False(t, s.BackToProduct())
}

func TestChat_PendingGuard(t *testing.T) {
	s := newTestState()

	_, ok := s.BeginChat("   ")
	assert.False(t, ok, "blank message rejected")

	req, ok := s.BeginChat("  need a retro kit ")
	require.True(t, ok)
	assert.Equal(t, "need a retro kit", req.Text)
	assert.Empty(t, req.History)

	before := s.Snapshot()
	_, ok = s.BeginChat("another one")
	assert.False(t, ok)
	after := s.Snapshot()
	assert.Equal(t, before, after, "send while pending has no effect")
	assert.Len(t, after.ChatTranscript, 1)
	assert.True(t, after.ChatPending)

	assert.True(t, s.CompleteChat("Try the Brazil Retro 2002 Home."))
	snap := s.Snapshot()
	assert.False(t, snap.ChatPending)
	assert.Equal(t, []ChatEntry{
		{Role: ChatUser, Text: "need a retro kit"},
		{Role: ChatAssistant, Text: "Try the Brazil Retro 2002 Home."},
	}, snap.ChatTranscript)

	assert.False(t, s.CompleteChat("late"), "no pending request")

	req, ok = s.BeginChat("and shorts?")
	require.True(t, ok)
	assert.Len(t, req.History, 2)
}

func TestChat_ReplyAppliedWhenClosed(t *testing.T) {
	s := newTestState()
	s.ToggleChat()
	_, ok := s.BeginChat("hello")
	require.True(t, ok)
	s.ToggleChat()
	assert.False(t, s.ChatOpen())

	assert.True(t, s.CompleteChat("hi"))
	assert.Len(t, s.Snapshot().ChatTranscript, 2)
}

func TestVersion_OnePerOperation(t *testing.T) {
	s := newTestState()
	steps := []func() bool{
		func() bool { return s.SetCategory("Football") },
		func() bool { return s.SetSearchQuery("Real") },
		func() bool { return s.SelectProduct("2") },
		func() bool { return s.ToggleChat() },
		func() bool { return s.GoCheckout() },
		func() bool { return s.GoHome() },
	}
	for i, step := range steps {
		require.True(t, step())
		assert.Equal(t, uint64(i+1), s.Version())
	}
}

func TestOrderFlow(t *testing.T) {
	s := newTestState()

	_, err := s.ConfirmOrder(validForm())
	assert.ErrorIs(t, err, ErrNotCheckout)

	require.True(t, s.SelectProduct("3"))
	require.True(t, s.GoCheckout())

	form := validForm()
	form.District = ""
	_, err = s.ConfirmOrder(form)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldDistrict, verr.Field)
	assert.Equal(t, OrderNone, s.Order())

	seq, err := s.ConfirmOrder(validForm())
	require.NoError(t, err)
	assert.Equal(t, OrderSubmitting, s.Order())
	assert.False(t, s.BackToProduct(), "back is locked while submitting")

	_, err = s.ConfirmOrder(validForm())
	assert.ErrorIs(t, err, ErrOrderInFlight)

	assert.False(t, s.FinishOrder(seq), "finish before confirm")
	assert.False(t, s.MarkOrderConfirmed(seq+1), "stale seq")
	assert.True(t, s.MarkOrderConfirmed(seq))
	assert.Equal(t, OrderConfirmed, s.Order())

	assert.True(t, s.FinishOrder(seq))
	snap := s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Nil(t, snap.SelectedProduct)
	assert.Equal(t, OrderNone, snap.Order)
	assert.Equal(t, "Rahim Uddin", snap.OrderForm.Name)
}

func TestOrderFlow_LeavingCancelsTimers(t *testing.T) {
	s := newTestState()
	require.True(t, s.SelectProduct("3"))
	require.True(t, s.GoCheckout())
	seq, err := s.ConfirmOrder(validForm())
	require.NoError(t, err)

	require.True(t, s.SelectProduct("5"))
	assert.False(t, s.MarkOrderConfirmed(seq))
	assert.Equal(t, ViewProduct, s.View())

	require.True(t, s.GoCheckout())
	assert.False(t, s.MarkOrderConfirmed(seq), "new checkout has no order yet")
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := newTestState()
	require.True(t, s.SelectProduct("1"))
	_, _ = s.BeginChat("hi")

	snap := s.Snapshot()
	snap.SelectedProduct.Name = "mutated"
	snap.SelectedProduct.Sizes[0] = "XS"
	snap.ChatTranscript[0].Text = "mutated"

	again := s.Snapshot()
	assert.NotEqual(t, "mutated", again.SelectedProduct.Name)
	assert.Equal(t, "S", again.SelectedProduct.Sizes[0])
	assert.Equal(t, "hi", again.ChatTranscript[0].Text)
}

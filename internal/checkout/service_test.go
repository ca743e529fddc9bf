package checkout_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cinepass/internal/cart"
	"cinepass/internal/checkout"
	"cinepass/internal/shared/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type nopSource struct{}

func (nopSource) BookedSeatIDs(ctx context.Context, showtimeID string) ([]string, error) {
	return nil, nil
}

// recordingProvider captures every request and answers with a scripted
// result.
type recordingProvider struct {
	result   *checkout.PaymentResult
	err      error
	requests []checkout.PaymentRequest
}

func (p *recordingProvider) Present(ctx context.Context, req checkout.PaymentRequest) (*checkout.PaymentResult, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

type recordingTicketWriter struct {
	showtimeID string
	seats      []string
	orderRef   string
	err        error
	calls      int
}

func (w *recordingTicketWriter) SellSeats(ctx context.Context, showtimeID string, seatNumbers []string, orderRef string) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.showtimeID = showtimeID
	w.seats = seatNumbers
	w.orderRef = orderRef
	return nil
}

type recordingProducer struct {
	events []*checkout.OrderConfirmedEvent
	err    error
}

func (p *recordingProducer) PublishOrderConfirmed(ctx context.Context, event *checkout.OrderConfirmedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{Currency: "EUR"},
	}
}

func fillCart(store *cart.Store, sessionID string) {
	sess := store.Get(sessionID)
	sess.Cart.SetShowtime(&cart.ShowtimeInfo{ID: "st-1", Price: decimal.RequireFromString("12.50")})
	sess.Cart.SetSelectedSeats([]string{"A1", "B2", "C3"})
	sess.Cart.AddFoodItem("popcorn", "Popcorn", decimal.RequireFromString("5.00"))
	sess.Cart.AddFoodItem("popcorn", "Popcorn", decimal.RequireFromString("5.00"))
	sess.Cart.AddFoodItem("soda", "Soda", decimal.RequireFromString("3.25"))
}

func TestCheckout_EmptyCartNeverReachesProvider(t *testing.T) {
	store := cart.NewStore(nopSource{})
	provider := &recordingProvider{}
	tickets := &recordingTicketWriter{}
	svc := checkout.NewService(store, tickets, provider, nil, testConfig())

	_, err := svc.Checkout(context.Background(), "sess-1")

	assert.ErrorIs(t, err, checkout.ErrNoSeatsSelected)
	assert.Empty(t, provider.requests)
	assert.Zero(t, tickets.calls)
}

func TestCheckout_SeatsWithoutShowtimeRejected(t *testing.T) {
	store := cart.NewStore(nopSource{})
	store.Get("sess-1").Cart.SetSelectedSeats([]string{"A1"})
	provider := &recordingProvider{}
	svc := checkout.NewService(store, &recordingTicketWriter{}, provider, nil, testConfig())

	_, err := svc.Checkout(context.Background(), "sess-1")

	assert.ErrorIs(t, err, checkout.ErrNoShowtime)
	assert.Empty(t, provider.requests)
}

func TestCheckout_SuccessSellsSeatsAndClearsCart(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{
		Outcome:     checkout.OutcomeSuccess,
		ProviderRef: "pay_123",
	}}
	tickets := &recordingTicketWriter{}
	producer := &recordingProducer{}
	svc := checkout.NewService(store, tickets, provider, producer, testConfig())

	resp, err := svc.Checkout(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, checkout.OutcomeSuccess, resp.Outcome)
	assert.Equal(t, 3, resp.TicketCount)
	assert.Equal(t, int64(5075), resp.TotalMinorUnits)
	assert.Equal(t, "50.75", resp.Total)
	assert.True(t, strings.HasPrefix(resp.OrderRef, "CNP-"))

	// Seats were persisted under the same order ref
	assert.Equal(t, 1, tickets.calls)
	assert.Equal(t, "st-1", tickets.showtimeID)
	assert.Equal(t, []string{"A1", "B2", "C3"}, tickets.seats)
	assert.Equal(t, resp.OrderRef, tickets.orderRef)

	// Confirmation event captured the full order
	if assert.Len(t, producer.events, 1) {
		assert.Equal(t, resp.OrderRef, producer.events[0].OrderRef)
		assert.Equal(t, int64(5075), producer.events[0].TotalMinorUnits)
		assert.Equal(t, "pay_123", producer.events[0].ProviderRef)
	}

	// Cart emptied for the next order
	assert.True(t, store.Get("sess-1").Cart.Snapshot().IsEmpty())
}

func TestCheckout_ProviderSeesFullAmountAndLineItems(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{Outcome: checkout.OutcomeSuccess}}
	svc := checkout.NewService(store, &recordingTicketWriter{}, provider, nil, testConfig())

	_, err := svc.Checkout(context.Background(), "sess-1")
	assert.NoError(t, err)

	if assert.Len(t, provider.requests, 1) {
		req := provider.requests[0]
		assert.Equal(t, "EUR", req.Currency)
		assert.Equal(t, int64(5075), req.AmountMinorUnits)

		// One row for the seats, one per food line, summing to the total
		if assert.Len(t, req.LineItems, 3) {
			assert.Equal(t, "Seats x3", req.LineItems[0].Name)
			assert.Equal(t, int64(3750), req.LineItems[0].AmountMinorUnits)

			var sum int64
			for _, item := range req.LineItems {
				sum += item.AmountMinorUnits
			}
			assert.Equal(t, req.AmountMinorUnits, sum)
		}
	}
}

func TestCheckout_FailurePreservesCart(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{
		Outcome: checkout.OutcomeFailure,
		Message: "card declined: insufficient funds",
	}}
	tickets := &recordingTicketWriter{}
	svc := checkout.NewService(store, tickets, provider, nil, testConfig())

	resp, err := svc.Checkout(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, checkout.OutcomeFailure, resp.Outcome)
	// The provider's wording comes back untouched
	assert.Equal(t, "card declined: insufficient funds", resp.Message)

	// No tickets were written and the cart is intact for a retry
	assert.Zero(t, tickets.calls)
	snap := store.Get("sess-1").Cart.Snapshot()
	assert.Equal(t, []string{"A1", "B2", "C3"}, snap.SelectedSeats)
	assert.Len(t, snap.FoodLines, 2)
}

func TestCheckout_CancelPreservesCart(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{Outcome: checkout.OutcomeCancelled}}
	svc := checkout.NewService(store, &recordingTicketWriter{}, provider, nil, testConfig())

	resp, err := svc.Checkout(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, checkout.OutcomeCancelled, resp.Outcome)
	assert.False(t, store.Get("sess-1").Cart.Snapshot().IsEmpty())
}

func TestCheckout_ProviderUnreachable(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{err: errors.New("gateway timeout")}
	svc := checkout.NewService(store, &recordingTicketWriter{}, provider, nil, testConfig())

	_, err := svc.Checkout(context.Background(), "sess-1")

	assert.Error(t, err)
	assert.False(t, store.Get("sess-1").Cart.Snapshot().IsEmpty())
}

func TestCheckout_TicketWriteFailureKeepsCart(t *testing.T) {
	// Payment succeeded but persistence failed: the error surfaces with the
	// order ref for reconciliation and the cart is not cleared.
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{Outcome: checkout.OutcomeSuccess}}
	tickets := &recordingTicketWriter{err: errors.New("unique constraint violation")}
	svc := checkout.NewService(store, tickets, provider, nil, testConfig())

	_, err := svc.Checkout(context.Background(), "sess-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CNP-")
	assert.False(t, store.Get("sess-1").Cart.Snapshot().IsEmpty())
}

func TestCheckout_ProducerFailureDoesNotFailOrder(t *testing.T) {
	store := cart.NewStore(nopSource{})
	fillCart(store, "sess-1")
	provider := &recordingProvider{result: &checkout.PaymentResult{Outcome: checkout.OutcomeSuccess}}
	producer := &recordingProducer{err: errors.New("broker unavailable")}
	svc := checkout.NewService(store, &recordingTicketWriter{}, provider, producer, testConfig())

	resp, err := svc.Checkout(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, checkout.OutcomeSuccess, resp.Outcome)
	assert.True(t, store.Get("sess-1").Cart.Snapshot().IsEmpty())
}

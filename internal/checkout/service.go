package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"cinepass/internal/cart"
	"cinepass/internal/pricing"
	"cinepass/internal/shared/config"
	"cinepass/pkg/logger"
)

var (
	// ErrNoSeatsSelected rejects a checkout attempt before any provider
	// contact is made.
	ErrNoSeatsSelected = errors.New("no seats selected")

	// ErrNoShowtime rejects a cart that has seats but no showtime to price
	// them against.
	ErrNoShowtime = errors.New("no showtime selected")
)

// TicketWriter persists sold seats. Satisfied by the showtimes service.
type TicketWriter interface {
	SellSeats(ctx context.Context, showtimeID string, seatNumbers []string, orderRef string) error
}

type Service interface {
	Checkout(ctx context.Context, sessionID string) (*CheckoutResponse, error)
}

type service struct {
	sessions *cart.Store
	tickets  TicketWriter
	provider PaymentProvider
	producer OrderProducer
	config   *config.Config
}

func NewService(sessions *cart.Store, tickets TicketWriter, provider PaymentProvider, producer OrderProducer, cfg *config.Config) Service {
	return &service{
		sessions: sessions,
		tickets:  tickets,
		provider: provider,
		producer: producer,
		config:   cfg,
	}
}

// Checkout runs one payment attempt for the session's cart. Empty carts are
// rejected up front; the provider is never contacted for them. On success the
// seats become tickets and the cart empties. On failure or cancel the cart is
// left exactly as it was so the buyer can retry.
func (s *service) Checkout(ctx context.Context, sessionID string) (*CheckoutResponse, error) {
	sess := s.sessions.Get(sessionID)
	snap := sess.Cart.Snapshot()

	if len(snap.SelectedSeats) == 0 {
		return nil, ErrNoSeatsSelected
	}
	if snap.Showtime == nil {
		return nil, ErrNoShowtime
	}

	breakdown := cart.Breakdown(snap)
	totalMinor := pricing.MinorUnits(breakdown.GrandTotal)

	orderRef, err := s.generateOrderRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	result, err := s.provider.Present(ctx, PaymentRequest{
		OrderRef:         orderRef,
		Currency:         s.config.Payment.Currency,
		AmountMinorUnits: totalMinor,
		LineItems:        s.buildLineItems(snap),
		SessionTimeout:   s.config.Payment.SessionTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("payment provider unreachable: %w", err)
	}

	switch result.Outcome {
	case OutcomeSuccess:
		return s.confirmOrder(ctx, sess, snap, orderRef, result, totalMinor)

	case OutcomeFailure, OutcomeCancelled:
		// Cart stays intact; the provider's own message goes back verbatim.
		logger.GetDefault().LogCheckoutFailed(ctx, sessionID, string(result.Outcome))
		return &CheckoutResponse{
			Outcome:  result.Outcome,
			OrderRef: orderRef,
			Message:  result.Message,
		}, nil

	default:
		return nil, fmt.Errorf("provider returned unknown outcome %q", result.Outcome)
	}
}

func (s *service) confirmOrder(ctx context.Context, sess *cart.Session, snap cart.Snapshot, orderRef string, result *PaymentResult, totalMinor int64) (*CheckoutResponse, error) {
	if err := s.tickets.SellSeats(ctx, snap.Showtime.ID, snap.SelectedSeats, orderRef); err != nil {
		// Money moved but the seats could not be written. Keep the cart so
		// support can reconcile against the order ref.
		logger.GetDefault().ErrorWithContext(ctx, "ticket persistence failed after payment", err,
			map[string]interface{}{"order_ref": orderRef, "session_id": sess.ID})
		return nil, fmt.Errorf("failed to record tickets for order %s: %w", orderRef, err)
	}

	event := &OrderConfirmedEvent{
		OrderRef:        orderRef,
		SessionID:       sess.ID,
		ShowtimeID:      snap.Showtime.ID,
		SeatIDs:         snap.SelectedSeats,
		TotalMinorUnits: totalMinor,
		Currency:        s.config.Payment.Currency,
		ProviderRef:     result.ProviderRef,
		ConfirmedAt:     time.Now(),
	}
	if s.producer != nil {
		if err := s.producer.PublishOrderConfirmed(ctx, event); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to publish order confirmation", err,
				map[string]interface{}{"order_ref": orderRef})
		}
	}

	sess.Cart.Clear()
	logger.GetDefault().LogOrderConfirmed(ctx, orderRef, sess.ID, totalMinor)

	return &CheckoutResponse{
		Outcome:         OutcomeSuccess,
		OrderRef:        orderRef,
		TicketCount:     len(snap.SelectedSeats),
		SeatIDs:         snap.SelectedSeats,
		TotalMinorUnits: totalMinor,
		Total:           pricing.Display(cart.Breakdown(snap).GrandTotal),
		Currency:        s.config.Payment.Currency,
	}, nil
}

// buildLineItems flattens the snapshot into the provider's display rows: one
// row for the seats, one per food line.
func (s *service) buildLineItems(snap cart.Snapshot) []LineItem {
	items := make([]LineItem, 0, 1+len(snap.FoodLines))

	seatSubtotal := pricing.SeatSubtotal(len(snap.SelectedSeats), snap.Showtime.Price)
	items = append(items, LineItem{
		Name:             fmt.Sprintf("Seats x%d", len(snap.SelectedSeats)),
		AmountMinorUnits: pricing.MinorUnits(seatSubtotal),
	})

	for _, line := range snap.FoodLines {
		items = append(items, LineItem{
			Name:             fmt.Sprintf("%s x%d", line.Name, line.Quantity),
			AmountMinorUnits: pricing.MinorUnits(pricing.LineTotal(pricing.Line{Name: line.Name, UnitPrice: line.UnitPrice, Quantity: line.Quantity})),
		})
	}

	return items
}

// generateOrderRef generates a unique order reference
func (s *service) generateOrderRef() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("CNP-%s-%s", timestamp, string(randomPart)), nil
}

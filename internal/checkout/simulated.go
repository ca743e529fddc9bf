package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SimulatedProvider approves every attempt after a short delay. It stands in
// for a real gateway in development and in tests.
type SimulatedProvider struct {
	Delay time.Duration
}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{Delay: 100 * time.Millisecond}
}

func (p *SimulatedProvider) Present(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &PaymentResult{
		Outcome:     OutcomeSuccess,
		ProviderRef: fmt.Sprintf("sim_%s", uuid.New().String()),
	}, nil
}

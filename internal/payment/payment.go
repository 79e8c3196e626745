// Package payment models the handoff to an embedded checkout widget. The
// real integration lives outside this process; the shipped gateway simulates
// the round trip.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Options is the client-constructed payload handed to the gateway: amount in
// minor currency units plus display and prefill fields.
type Options struct {
	Key         string `json:"key"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prefill     struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Contact string `json:"contact"`
	} `json:"prefill"`
	Notes map[string]string `json:"notes,omitempty"`
	Theme struct {
		Color string `json:"color"`
	} `json:"theme"`
}

type Result struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty"`
	Message   string `json:"message"`
}

// Gateway is the external checkout widget. Charge resolves with a Result in
// both the captured and the declined/dismissed case; err is reserved for the
// call never completing (context canceled).
type Gateway interface {
	Charge(ctx context.Context, opts Options) (Result, error)
}

// SimGateway fakes the widget: it waits out a fixed delay, then captures the
// payment unless the prefill contact carries the decline marker. A zero Delay
// resolves immediately, which is what the tests use.
type SimGateway struct {
	Delay time.Duration
}

// DeclineContact is the magic prefill phone number the simulated gateway
// always refuses, so the failure path can be exercised from the checkout
// form down.
const DeclineContact = "9999999999"

func (g *SimGateway) Charge(ctx context.Context, opts Options) (Result, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if opts.Prefill.Contact == DeclineContact {
		return Result{Success: false, Message: "Payment could not be processed. Please try again."}, nil
	}
	return Result{
		Success:   true,
		PaymentID: "pay_" + uuid.NewString(),
		Message:   "Payment successful!",
	}, nil
}

package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// checkoutAdapter wraps ServiceContainer for type-safe cross-module
// communication. It implements the CheckoutPort interface.
type checkoutAdapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new adapter for checkout services.
func NewAdapter(container mono.ServiceContainer) CheckoutPort {
	if container == nil {
		panic("checkout adapter requires non-nil ServiceContainer")
	}
	return &checkoutAdapter{container: container}
}

// Start runs a checkout via the start service.
func (a *checkoutAdapter) Start(ctx context.Context) (*OrderResponse, error) {
	req := StartCheckoutRequest{}
	var resp OrderResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "start", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("start service call failed: %w", err)
	}
	return &resp, nil
}

// Status reads the checkout status via the status service.
func (a *checkoutAdapter) Status(ctx context.Context) (*StatusResponse, error) {
	req := StatusRequest{}
	var resp StatusResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "status", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("status service call failed: %w", err)
	}
	return &resp, nil
}

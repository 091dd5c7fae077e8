// Package payments wraps the card-processor intent endpoints. Card
// confirmation itself belongs to the external processor; this package only
// obtains the client secrets the processor's own tooling consumes.
package payments

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
)

const intentRoute = "/api/payments/create-intent"

// IntentRequest asks the backend to open a payment with the processor.
// Amount is in the currency's minor unit.
type IntentRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

// Intent is an open payment awaiting card confirmation.
type Intent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Service wraps the authenticated payment endpoints.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// CreateIntent opens a payment with the processor on behalf of the operator.
func (s *Service) CreateIntent(ctx context.Context, request IntentRequest) (Intent, error) {
	var resp Intent
	if err := s.client.Post(ctx, intentRoute, request, &resp); err != nil {
		return Intent{}, errors.Wrap(err, "[CreateIntent] payments endpoint")
	}
	return resp, nil
}

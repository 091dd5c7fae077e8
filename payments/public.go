package payments

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
)

const publicRoute = "/api/v1/public/pay"

// LinkDetails describes the stay behind a payment link, shown to the payer
// before they are charged.
type LinkDetails struct {
	RegisterID  int64   `json:"registerId"`
	Plate       string  `json:"plate"`
	VehicleType string  `json:"vehicleType"`
	EntryDate   string  `json:"entryDate"`
	ExitDate    string  `json:"exitDate"`
	Minutes     int     `json:"minutes"`
	Amount      float64 `json:"amount"`
}

// PublicService wraps the payment-by-link endpoints, which must be reachable
// without a session.
type PublicService struct {
	client *apiclient.PublicClient
}

func NewPublicService(client *apiclient.PublicClient) *PublicService {
	return &PublicService{client: client}
}

// Details returns what the payer owes for the given register.
func (s *PublicService) Details(ctx context.Context, registerID string) (LinkDetails, error) {
	var resp LinkDetails
	if err := s.client.Get(ctx, publicRoute+"/"+registerID, &resp); err != nil {
		return LinkDetails{}, errors.Wrap(err, "[Details] public pay endpoint")
	}
	return resp, nil
}

// CreateIntent opens the payment for the given register.
func (s *PublicService) CreateIntent(ctx context.Context, registerID string) (Intent, error) {
	var resp Intent
	if err := s.client.Post(ctx, publicRoute+"/"+registerID+"/create-intent", nil, &resp); err != nil {
		return Intent{}, errors.Wrap(err, "[CreateIntent] public pay endpoint")
	}
	return resp, nil
}

// Package vehicles wraps the vehicle registry endpoints.
package vehicles

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
)

const baseRoute = "/api/v1/parking/vehicles"

// Type classifies a registered vehicle for pricing purposes.
type Type string

const (
	TypeOficial     Type = "OFICIAL"
	TypeResident    Type = "RESIDENT"
	TypeNonResident Type = "NON_RESIDENT"
)

// Valid reports whether t is one of the known vehicle types.
func (t Type) Valid() bool {
	switch t {
	case TypeOficial, TypeResident, TypeNonResident:
		return true
	}
	return false
}

// Vehicle is a registered plate and its type.
type Vehicle struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`
}

// MonthReset is the result of starting a new billing month.
type MonthReset struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deletedCount"`
}

// Service wraps the vehicle endpoints.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns every registered vehicle.
func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	var resp struct {
		Vehicles []Vehicle `json:"vehicles"`
	}
	if err := s.client.Get(ctx, baseRoute+"/", &resp); err != nil {
		return nil, errors.Wrap(err, "[List] vehicles endpoint")
	}
	return resp.Vehicles, nil
}

// Create registers a new vehicle.
func (s *Service) Create(ctx context.Context, vehicle Vehicle) (Vehicle, error) {
	var resp struct {
		Vehicle Vehicle `json:"vehicle"`
		Message string  `json:"message"`
	}
	if err := s.client.Post(ctx, baseRoute+"/", vehicle, &resp); err != nil {
		return Vehicle{}, errors.Wrap(err, "[Create] vehicles endpoint")
	}
	return resp.Vehicle, nil
}

// Update changes the type of an existing vehicle.
func (s *Service) Update(ctx context.Context, id string, vehicleType Type) (Vehicle, error) {
	body := struct {
		Type Type `json:"type"`
	}{Type: vehicleType}

	var resp struct {
		Vehicle Vehicle `json:"vehicle"`
		Message string  `json:"message"`
	}
	if err := s.client.Put(ctx, baseRoute+"/"+id, body, &resp); err != nil {
		return Vehicle{}, errors.Wrap(err, "[Update] vehicles endpoint")
	}
	return resp.Vehicle, nil
}

// Delete removes a vehicle from the registry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.client.Delete(ctx, baseRoute+"/"+id, nil), "[Delete] vehicles endpoint")
}

// CalculatePayment returns the amount currently owed by a vehicle.
func (s *Service) CalculatePayment(ctx context.Context, vehicle Vehicle) (float64, error) {
	var resp struct {
		Price   float64 `json:"price"`
		Vehicle Vehicle `json:"vehicle"`
	}
	if err := s.client.Post(ctx, baseRoute+"/pay", vehicle, &resp); err != nil {
		return 0, errors.Wrap(err, "[CalculatePayment] vehicles endpoint")
	}
	return resp.Price, nil
}

// StartsMonth begins a new billing month, dropping the previous month's
// non-resident records.
func (s *Service) StartsMonth(ctx context.Context) (MonthReset, error) {
	var resp MonthReset
	if err := s.client.Post(ctx, baseRoute+"/startsMonth", nil, &resp); err != nil {
		return MonthReset{}, errors.Wrap(err, "[StartsMonth] vehicles endpoint")
	}
	return resp, nil
}

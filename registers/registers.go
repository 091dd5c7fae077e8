// Package registers wraps the entry/exit log endpoints.
package registers

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/vehicles"
)

const baseRoute = "/api/v1/parking"

// Register is one stay in the lot. ExitDate is nil while the vehicle is still
// inside.
type Register struct {
	ID        int64            `json:"id"`
	Vehicle   vehicles.Vehicle `json:"vehicle"`
	EntryDate string           `json:"entrydate"`
	ExitDate  *string          `json:"exitdate"`
	Minutes   int              `json:"minutes"`
}

// Active reports whether the vehicle is still in the lot.
func (r Register) Active() bool {
	return r.ExitDate == nil
}

// EntryRequest identifies the vehicle entering the lot.
type EntryRequest struct {
	ID   string        `json:"id"`
	Type vehicles.Type `json:"type"`
}

// Service wraps the register endpoints.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List returns the full entry/exit log.
func (s *Service) List(ctx context.Context) ([]Register, error) {
	var resp struct {
		Registers []Register `json:"registers"`
	}
	if err := s.client.Get(ctx, baseRoute+"/registers", &resp); err != nil {
		return nil, errors.Wrap(err, "[List] registers endpoint")
	}
	return resp.Registers, nil
}

// Entry logs a vehicle entering the lot.
func (s *Service) Entry(ctx context.Context, request EntryRequest) (Register, error) {
	var resp struct {
		Register Register `json:"register"`
		Message  string   `json:"message"`
	}
	if err := s.client.Post(ctx, baseRoute+"/register", request, &resp); err != nil {
		return Register{}, errors.Wrap(err, "[Entry] register endpoint")
	}
	return resp.Register, nil
}

// Exit logs a vehicle leaving the lot and returns the closed register.
func (s *Service) Exit(ctx context.Context, vehicle vehicles.Vehicle) (Register, error) {
	var resp struct {
		Register Register `json:"register"`
		Message  string   `json:"message"`
	}
	if err := s.client.Post(ctx, baseRoute+"/leave", vehicle, &resp); err != nil {
		return Register{}, errors.Wrap(err, "[Exit] leave endpoint")
	}
	return resp.Register, nil
}

// Package dashboard aggregates the overview data: vehicles and registers are
// fetched concurrently and joined independently, so one side failing never
// suppresses the other.
package dashboard

import (
	"context"
	"sync"

	"github.com/jrsteele09/parkctl/registers"
	"github.com/jrsteele09/parkctl/vehicles"
)

// Snapshot is the result of one overview load. Each half carries its own
// error; callers report or default each side on its own.
type Snapshot struct {
	Vehicles    []vehicles.Vehicle
	VehiclesErr error

	Registers    []registers.Register
	RegistersErr error
}

// RegisteredCount is the number of vehicles in the registry.
func (s Snapshot) RegisteredCount() int {
	return len(s.Vehicles)
}

// ActiveCount is the number of vehicles currently in the lot.
func (s Snapshot) ActiveCount() int {
	var active int
	for _, r := range s.Registers {
		if r.Active() {
			active++
		}
	}
	return active
}

// TotalMinutes sums the minutes across all closed and open stays.
func (s Snapshot) TotalMinutes() int {
	var total int
	for _, r := range s.Registers {
		total += r.Minutes
	}
	return total
}

// Service loads the dashboard snapshot.
type Service struct {
	vehicles  *vehicles.Service
	registers *registers.Service
}

func NewService(vehicleService *vehicles.Service, registerService *registers.Service) *Service {
	return &Service{vehicles: vehicleService, registers: registerService}
}

// Load fetches both halves concurrently and waits for both to settle.
func (s *Service) Load(ctx context.Context) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap.Vehicles, snap.VehiclesErr = s.vehicles.List(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Registers, snap.RegistersErr = s.registers.List(ctx)
	}()
	wg.Wait()

	return snap
}

package fleet

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ukydev/citybike/internal/models"
)

// Vehicles returns a copy of the vehicle index.
func (r *Registry) Vehicles() map[string]models.Vehicle {
	return maps.Clone(r.vehicles)
}

// Stations returns a copy of the station index.
func (r *Registry) Stations() map[string]*models.Station {
	return maps.Clone(r.stations)
}

// Riders returns a copy of the rider index.
func (r *Registry) Riders() map[string]models.Rider {
	return maps.Clone(r.riders)
}

// Trips returns the recorded trips in recording order.
func (r *Registry) Trips() []*models.Trip {
	return slices.Clone(r.trips)
}

// MaintenanceRecords returns the maintenance log in recording order.
func (r *Registry) MaintenanceRecords() []*models.MaintenanceRecord {
	return slices.Clone(r.maintenance)
}

// RiderTrips returns the trip history of a rider, oldest first.
func (r *Registry) RiderTrips(riderID string) []*models.Trip {
	return slices.Clone(r.riderTrips[riderID])
}

// Summary counts the registry's contents.
type Summary struct {
	Vehicles           int    `json:"vehicles"`
	Stations           int    `json:"stations"`
	Riders             int    `json:"riders"`
	Trips              int    `json:"trips"`
	MaintenanceRecords int    `json:"maintenance_records"`
	PricingPolicy      string `json:"pricing_policy"`
}

// Summary returns the current collection sizes and policy name.
func (r *Registry) Summary() Summary {
	return Summary{
		Vehicles:           len(r.vehicles),
		Stations:           len(r.stations),
		Riders:             len(r.riders),
		Trips:              len(r.trips),
		MaintenanceRecords: len(r.maintenance),
		PricingPolicy:      r.policy.Name(),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("BikeShareSystem: %d bikes, %d stations, %d users, %d trips, Strategy: %s",
		s.Vehicles, s.Stations, s.Riders, s.Trips, s.PricingPolicy)
}

func (r *Registry) String() string {
	return r.Summary().String()
}

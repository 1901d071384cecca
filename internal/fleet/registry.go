// Package fleet holds the Registry, the single owner of every vehicle,
// station, rider, trip and maintenance record in a bike-share system.
//
// A Registry is not safe for concurrent mutation; callers serialise writes.
package fleet

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/citybike/internal/idgen"
	"github.com/ukydev/citybike/internal/models"
	"github.com/ukydev/citybike/internal/pricing"
)

// Registry owns the canonical entity collections.
type Registry struct {
	ids    *idgen.Generator
	log    logrus.FieldLogger
	policy pricing.Policy
	sink   DiagnosticSink

	vehicles map[string]models.Vehicle
	stations map[string]*models.Station
	riders   map[string]models.Rider

	trips       []*models.Trip
	maintenance []*models.MaintenanceRecord
	riderTrips  map[string][]*models.Trip
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for import diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) { r.log = l }
}

// WithIDGenerator replaces the registry's identifier generator.
func WithIDGenerator(g *idgen.Generator) Option {
	return func(r *Registry) { r.ids = g }
}

// WithPricingPolicy replaces the default dispatch policy. A nil policy is
// ignored.
func WithPricingPolicy(p pricing.Policy) Option {
	return func(r *Registry) { r.SetPricingPolicy(p) }
}

// WithDiagnosticSink receives every per-record import failure.
func WithDiagnosticSink(s DiagnosticSink) Option {
	return func(r *Registry) { r.sink = s }
}

// NewRegistry returns an empty registry priced by pricing.NewDispatchPolicy.
func NewRegistry(opts ...Option) *Registry {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	r := &Registry{
		ids:        idgen.New(),
		log:        quiet,
		policy:     pricing.NewDispatchPolicy(),
		vehicles:   make(map[string]models.Vehicle),
		stations:   make(map[string]*models.Station),
		riders:     make(map[string]models.Rider),
		riderTrips: make(map[string][]*models.Trip),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IDs returns the generator entities built for this registry should use.
func (r *Registry) IDs() *idgen.Generator { return r.ids }

// AddVehicle registers v, replacing any vehicle with the same id. Nil is
// ignored.
func (r *Registry) AddVehicle(v models.Vehicle) {
	if v == nil {
		return
	}
	r.vehicles[v.ID()] = v
}

// AddStation registers s, replacing any station with the same id. Nil is
// ignored.
func (r *Registry) AddStation(s *models.Station) {
	if s == nil {
		return
	}
	r.stations[s.ID()] = s
}

// AddRider registers u, replacing any rider with the same id. Nil is ignored.
func (r *Registry) AddRider(u models.Rider) {
	if u == nil {
		return
	}
	r.riders[u.ID()] = u
}

// Vehicle looks up a vehicle by id.
func (r *Registry) Vehicle(id string) (models.Vehicle, bool) {
	v, ok := r.vehicles[id]
	return v, ok
}

// Station looks up a station by id.
func (r *Registry) Station(id string) (*models.Station, bool) {
	s, ok := r.stations[id]
	return s, ok
}

// Rider looks up a rider by id.
func (r *Registry) Rider(id string) (models.Rider, bool) {
	u, ok := r.riders[id]
	return u, ok
}

// RecordTrip appends trip to the trip log and to its rider's history.
// The rider, vehicle and both stations must be registered.
func (r *Registry) RecordTrip(trip *models.Trip) error {
	if trip == nil {
		return fmt.Errorf("record trip: %w: nil trip", models.ErrInvalidValue)
	}
	if err := r.requireRider(trip.Rider()); err != nil {
		return fmt.Errorf("record trip %s: %w", trip.ID(), err)
	}
	if err := r.requireVehicle(trip.Vehicle()); err != nil {
		return fmt.Errorf("record trip %s: %w", trip.ID(), err)
	}
	for _, s := range []*models.Station{trip.StartStation(), trip.EndStation()} {
		if err := r.requireStation(s); err != nil {
			return fmt.Errorf("record trip %s: %w", trip.ID(), err)
		}
	}

	r.trips = append(r.trips, trip)
	riderID := trip.Rider().ID()
	r.riderTrips[riderID] = append(r.riderTrips[riderID], trip)
	return nil
}

// RecordMaintenance appends rec to the maintenance log and puts its vehicle
// into maintenance.
func (r *Registry) RecordMaintenance(rec *models.MaintenanceRecord) error {
	if rec == nil {
		return fmt.Errorf("record maintenance: %w: nil record", models.ErrInvalidValue)
	}
	if err := r.requireVehicle(rec.Vehicle()); err != nil {
		return fmt.Errorf("record maintenance %s: %w", rec.ID(), err)
	}
	if err := rec.Vehicle().SetStatus(models.StatusMaintenance); err != nil {
		return fmt.Errorf("record maintenance %s: %w", rec.ID(), err)
	}
	r.maintenance = append(r.maintenance, rec)
	return nil
}

// SetPricingPolicy replaces the policy used by CalculateTripCost. A nil
// policy keeps the current one.
func (r *Registry) SetPricingPolicy(p pricing.Policy) {
	if p == nil {
		return
	}
	r.policy = p
}

// PricingPolicy returns the active pricing policy.
func (r *Registry) PricingPolicy() pricing.Policy { return r.policy }

// CalculateTripCost prices trip with the active policy.
func (r *Registry) CalculateTripCost(trip *models.Trip) float64 {
	return r.policy.CalculateCost(trip)
}

func (r *Registry) requireRider(u models.Rider) error {
	if got, ok := r.riders[u.ID()]; !ok || got != u {
		return fmt.Errorf("%w: rider %s is not registered", models.ErrNotFound, u.ID())
	}
	return nil
}

func (r *Registry) requireVehicle(v models.Vehicle) error {
	if got, ok := r.vehicles[v.ID()]; !ok || got != v {
		return fmt.Errorf("%w: vehicle %s is not registered", models.ErrNotFound, v.ID())
	}
	return nil
}

func (r *Registry) requireStation(s *models.Station) error {
	if got, ok := r.stations[s.ID()]; !ok || got != s {
		return fmt.Errorf("%w: station %s is not registered", models.ErrNotFound, s.ID())
	}
	return nil
}

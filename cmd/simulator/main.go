package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/citybike/internal/factory"
	"github.com/ukydev/citybike/internal/fleet"
	"github.com/ukydev/citybike/internal/models"
	"github.com/ukydev/citybike/internal/pricing"
)

// Location is a point the simulator places stations around.
type Location = models.Location

// Cities for realistic station layouts
var cities = map[string]Location{
	"barcelona": {Lat: 41.3874, Lon: 2.1686},
	"london":    {Lat: 51.5074, Lon: -0.1278},
	"madrid":    {Lat: 40.4168, Lon: -3.7038},
	"paris":     {Lat: 48.8566, Lon: 2.3522},
	"berlin":    {Lat: 52.5200, Lon: 13.4050},
	"nicosia":   {Lat: 35.1856, Lon: 33.3823},
	"cardiff":   {Lat: 51.4816, Lon: -3.1791},
}

const (
	roadFactor         = 1.3 // street distance over straight-line distance
	classicSpeedKmh    = 14.0
	electricSpeedKmh   = 19.0
	batteryPerKm       = 1.6 // percent
	serviceBatteryPct  = 20.0
	breakdownChance    = 0.02
	stationSpreadMetre = 3000
)

func jitterLocation(rng *rand.Rand, base Location, meters float64) Location {
	latMetersPerDeg := 111320.0
	lonMetersPerDeg := 111320.0 * math.Cos(base.Lat*math.Pi/180)
	dLat := (rng.Float64()*2 - 1) * (meters / latMetersPerDeg)
	dLon := (rng.Float64()*2 - 1) * (meters / lonMetersPerDeg)
	return Location{Lat: base.Lat + dLat, Lon: base.Lon + dLon}
}

func haversineKm(a, b Location) float64 {
	R := 6371.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	s := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
	return R * c
}

// Settings control the size and shape of a simulation run.
type Settings struct {
	City     string
	Stations int
	Bikes    int
	Riders   int
	Trips    int
	Day      time.Time
	Seed     int64
}

// Stats summarises a simulation run.
type Stats struct {
	Trips       int
	Skipped     int
	Maintenance int
	Revenue     map[models.RiderType]float64
	PeakTrips   int
}

// Simulation drives random trips through a registry.
type Simulation struct {
	reg      *fleet.Registry
	rng      *rand.Rand
	day      time.Time
	stations []*models.Station
	riders   []models.Rider
	log      log.FieldLogger
}

// NewSimulation seeds a registry with stations around the chosen city, bikes
// spread over them, and riders.
func NewSimulation(s Settings, l log.FieldLogger) (*Simulation, error) {
	center, ok := cities[s.City]
	if !ok {
		return nil, fmt.Errorf("unknown city %q", s.City)
	}
	rng := rand.New(rand.NewSource(s.Seed))
	reg := fleet.NewRegistry(fleet.WithLogger(l))

	stationRecords := make([]factory.Record, 0, s.Stations)
	for i := 0; i < s.Stations; i++ {
		loc := jitterLocation(rng, center, stationSpreadMetre)
		stationRecords = append(stationRecords, factory.Record{
			"station_id":   fmt.Sprintf("ST%02d", i+1),
			"station_name": fmt.Sprintf("%s #%d", s.City, i+1),
			"capacity":     10 + rng.Intn(15),
			"latitude":     loc.Lat,
			"longitude":    loc.Lon,
		})
	}
	riderRecords := make([]factory.Record, 0, s.Riders)
	for i := 0; i < s.Riders; i++ {
		rec := factory.Record{
			"user_id": fmt.Sprintf("U%04d", i+1),
			"name":    fmt.Sprintf("Rider %d", i+1),
			"email":   fmt.Sprintf("rider%d@example.com", i+1),
		}
		if rng.Float64() < 0.4 {
			rec["user_type"] = "member"
			rec["tier"] = []string{"basic", "premium"}[rng.Intn(2)]
		}
		riderRecords = append(riderRecords, rec)
	}
	report := reg.LoadFromExternalRecords(riderRecords, stationRecords)
	if report.HasFailures() {
		return nil, fmt.Errorf("seed data rejected: %v", report.Failures[0])
	}

	sim := &Simulation{reg: reg, rng: rng, day: s.Day, log: l}
	for _, st := range reg.Stations() {
		sim.stations = append(sim.stations, st)
	}
	for _, r := range reg.Riders() {
		sim.riders = append(sim.riders, r)
	}
	// map iteration order is random; keep runs reproducible for a seed
	sortByID(sim.stations)
	sortByID(sim.riders)

	bikes := factory.NewVehicleFactory(reg.IDs())
	for i := 0; i < s.Bikes; i++ {
		rec := factory.Record{}
		if rng.Float64() < 0.5 {
			rec["bike_type"] = "electric"
			rec["battery_level"] = 40 + rng.Float64()*60
		}
		v, err := bikes.CreateFromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := sim.dockAnywhere(v); err != nil {
			return nil, err
		}
		reg.AddVehicle(v)
	}

	l.WithFields(log.Fields{
		"city":     s.City,
		"stations": len(sim.stations),
		"riders":   len(sim.riders),
		"bikes":    s.Bikes,
	}).Info("Simulation seeded")
	return sim, nil
}

// Registry returns the registry the simulation writes to.
func (s *Simulation) Registry() *fleet.Registry { return s.reg }

func (s *Simulation) dockAnywhere(v models.Vehicle) error {
	for _, i := range s.rng.Perm(len(s.stations)) {
		if !s.stations[i].IsFull() {
			return s.stations[i].Dock(v)
		}
	}
	return fmt.Errorf("no free dock for %s: %w", v.ID(), models.ErrCapacityExceeded)
}

// Run simulates n trip attempts.
func (s *Simulation) Run(n int) Stats {
	stats := Stats{Revenue: make(map[models.RiderType]float64)}
	peak := pricing.NewDispatchPolicy()
	for i := 0; i < n; i++ {
		trip, err := s.step()
		if err != nil {
			stats.Skipped++
			s.log.WithError(err).Debug("Trip skipped")
			continue
		}
		if trip == nil {
			stats.Maintenance++
			continue
		}
		cost := s.reg.CalculateTripCost(trip)
		stats.Trips++
		stats.Revenue[trip.Rider().Type()] += cost
		if peak.IsPeak(trip) {
			stats.PeakTrips++
		}
		s.log.WithFields(log.Fields{
			"trip_id":  trip.ID(),
			"rider_id": trip.Rider().ID(),
			"bike_id":  trip.Vehicle().ID(),
			"minutes":  trip.DurationMinutes(),
			"km":       math.Round(trip.DistanceKm()*100) / 100,
			"cost":     math.Round(cost*100) / 100,
		}).Debug("Trip recorded")
	}
	return stats
}

// step performs one trip. It returns a nil trip when the chosen bike was sent
// to maintenance instead.
func (s *Simulation) step() (*models.Trip, error) {
	from := s.stations[s.rng.Intn(len(s.stations))]
	docked := from.DockedVehicles()
	var bike models.Vehicle
	for _, v := range docked {
		if v.Status() == models.StatusAvailable {
			bike = v
			break
		}
	}
	if bike == nil {
		return nil, fmt.Errorf("%w: no available bike at %s", models.ErrNotFound, from.Name())
	}
	to := s.stations[s.rng.Intn(len(s.stations))]
	if to.IsFull() && to != from {
		return nil, fmt.Errorf("%w: %s", models.ErrCapacityExceeded, to.Name())
	}

	if s.rng.Float64() < breakdownChance {
		return nil, s.service(bike, models.MaintenanceRepair, "reported by rider")
	}

	km := haversineKm(from.Location(), to.Location())*roadFactor + 0.3 + s.rng.Float64()
	speed := classicSpeedKmh
	if eb, ok := bike.(*models.ElectricBike); ok {
		if eb.EstimatedRangeKm() < km {
			return nil, s.service(bike, models.MaintenanceReplacement, "battery swap")
		}
		speed = electricSpeedKmh
	}
	minutes := km/speed*60 + 1 + s.rng.Float64()*4
	start := s.day.Add(time.Duration(6*60+s.rng.Intn(17*60)) * time.Minute)
	end := start.Add(time.Duration(minutes * float64(time.Minute)))

	rider := s.riders[s.rng.Intn(len(s.riders))]
	if err := from.Undock(bike); err != nil {
		return nil, err
	}
	if err := bike.SetStatus(models.StatusInUse); err != nil {
		return nil, err
	}
	trip, err := models.NewTrip(s.reg.IDs(), "", rider, bike, from, to, start, end, km)
	if err != nil {
		return nil, err
	}
	if err := s.reg.RecordTrip(trip); err != nil {
		return nil, err
	}
	if err := to.Dock(bike); err != nil {
		return nil, err
	}
	if eb, ok := bike.(*models.ElectricBike); ok {
		if err := eb.SetBatteryLevel(math.Max(0, eb.BatteryLevel()-km*batteryPerKm)); err != nil {
			return nil, err
		}
		if eb.BatteryLevel() < serviceBatteryPct {
			s.log.WithField("bike_id", eb.ID()).Debug("Battery low")
		}
	}
	return trip, bike.SetStatus(models.StatusAvailable)
}

// service records maintenance on bike, which takes it out of circulation.
func (s *Simulation) service(bike models.Vehicle, kind models.MaintenanceType, note string) error {
	rec, err := models.NewMaintenanceRecord(s.reg.IDs(), "", bike, s.day, kind, 5+s.rng.Float64()*40, note)
	if err != nil {
		return err
	}
	if err := s.reg.RecordMaintenance(rec); err != nil {
		return err
	}
	s.log.WithFields(log.Fields{"bike_id": bike.ID(), "type": kind}).Info("Bike sent to maintenance")
	return nil
}

func sortByID[T interface{ ID() string }](items []T) {
	slices.SortFunc(items, func(a, b T) int { return strings.Compare(a.ID(), b.ID()) })
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	settings := Settings{
		City:     "barcelona",
		Stations: envInt("SIM_STATIONS", 12),
		Bikes:    envInt("FLEET_SIZE", 60),
		Riders:   envInt("SIM_RIDERS", 200),
		Trips:    envInt("SIM_TRIPS", 500),
		Seed:     time.Now().UnixNano(),
	}
	if v := os.Getenv("SIM_CITY"); v != "" {
		settings.City = v
	}
	if v := os.Getenv("SIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			settings.Seed = n
		}
	}
	now := time.Now()
	settings.Day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	log.WithFields(log.Fields{
		"city":  settings.City,
		"bikes": settings.Bikes,
		"trips": settings.Trips,
		"seed":  settings.Seed,
	}).Info("Starting trip simulation")

	sim, err := NewSimulation(settings, log.StandardLogger())
	if err != nil {
		log.WithError(err).Fatal("Failed to seed simulation")
	}
	stats := sim.Run(settings.Trips)

	log.WithFields(log.Fields{
		"trips":          stats.Trips,
		"skipped":        stats.Skipped,
		"maintenance":    stats.Maintenance,
		"peak_trips":     stats.PeakTrips,
		"revenue_casual": math.Round(stats.Revenue[models.RiderCasual]*100) / 100,
		"revenue_member": math.Round(stats.Revenue[models.RiderMember]*100) / 100,
	}).Info("Simulation completed")
	fmt.Println(sim.Registry())
}

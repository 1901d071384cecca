package main

import (
	"io"
	"math/rand"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/citybike/internal/models"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func testSettings(seed int64) Settings {
	return Settings{
		City:     "cardiff",
		Stations: 6,
		Bikes:    30,
		Riders:   40,
		Day:      time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
		Seed:     seed,
	}
}

func TestHaversineKm(t *testing.T) {
	d := haversineKm(cities["barcelona"], cities["madrid"])
	assert.InDelta(t, 505, d, 5)
	assert.Zero(t, haversineKm(cities["paris"], cities["paris"]))
}

func TestJitterLocationStaysNearBase(t *testing.T) {
	base := cities["london"]
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		loc := jitterLocation(rng, base, 500)
		assert.LessOrEqual(t, haversineKm(base, loc), 0.75)
	}
}

func TestNewSimulationUnknownCity(t *testing.T) {
	s := testSettings(1)
	s.City = "atlantis"
	_, err := NewSimulation(s, quietLogger())
	assert.Error(t, err)
}

func TestNewSimulationSeedsRegistry(t *testing.T) {
	sim, err := NewSimulation(testSettings(7), quietLogger())
	require.NoError(t, err)

	reg := sim.Registry()
	assert.Len(t, reg.Stations(), 6)
	assert.Len(t, reg.Riders(), 40)
	assert.Len(t, reg.Vehicles(), 30)

	docked := 0
	for _, st := range reg.Stations() {
		docked += st.AvailableCount()
	}
	assert.Equal(t, 30, docked)
}

func TestRunAccountsForEveryAttempt(t *testing.T) {
	sim, err := NewSimulation(testSettings(42), quietLogger())
	require.NoError(t, err)

	stats := sim.Run(200)
	assert.Equal(t, 200, stats.Trips+stats.Skipped+stats.Maintenance)
	assert.Positive(t, stats.Trips)
	assert.Len(t, sim.Registry().Trips(), stats.Trips)
	assert.Len(t, sim.Registry().MaintenanceRecords(), stats.Maintenance)
	assert.LessOrEqual(t, stats.PeakTrips, stats.Trips)

	total := 0.0
	for _, trip := range sim.Registry().Trips() {
		total += sim.Registry().CalculateTripCost(trip)
		assert.True(t, trip.EndStation().Location() != (models.Location{}))
	}
	assert.InDelta(t, total, stats.Revenue[models.RiderCasual]+stats.Revenue[models.RiderMember], 1e-6)

	// bikes are always parked somewhere between trips
	docked := 0
	for _, st := range sim.Registry().Stations() {
		docked += st.AvailableCount()
	}
	assert.Equal(t, 30, docked)
}

func TestRunIsReproducibleForSeed(t *testing.T) {
	a, err := NewSimulation(testSettings(99), quietLogger())
	require.NoError(t, err)
	b, err := NewSimulation(testSettings(99), quietLogger())
	require.NoError(t, err)

	sa, sb := a.Run(150), b.Run(150)
	assert.Equal(t, sa.Trips, sb.Trips)
	assert.Equal(t, sa.Maintenance, sb.Maintenance)
	assert.InDelta(t, sa.Revenue[models.RiderMember], sb.Revenue[models.RiderMember], 1e-9)
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SIM_TEST_INT", "17")
	assert.Equal(t, 17, envInt("SIM_TEST_INT", 3))
	t.Setenv("SIM_TEST_INT", "nope")
	assert.Equal(t, 3, envInt("SIM_TEST_INT", 3))
	t.Setenv("SIM_TEST_INT", "-4")
	assert.Equal(t, 3, envInt("SIM_TEST_INT", 3))
}

package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/citybike/internal/idgen"
	"github.com/ukydev/citybike/internal/models"
)

type fixture struct {
	ids     *idgen.Generator
	casual  *models.CasualRider
	member  *models.MemberRider
	bike    *models.ClassicBike
	station *models.Station
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ids := idgen.New()
	casual, err := models.NewCasualRider(ids, "c1", "Ana", "ana@example.com", 0)
	require.NoError(t, err)
	member, err := models.NewMemberRider(ids, "m1", "Bo", "bo@example.com", time.Time{}, time.Time{}, models.TierBasic)
	require.NoError(t, err)
	bike, err := models.NewClassicBike(ids, "b1", models.StatusAvailable, 21)
	require.NoError(t, err)
	station, err := models.NewStation(ids, "s1", "Central", 10, 0, 0)
	require.NoError(t, err)
	return fixture{ids: ids, casual: casual, member: member, bike: bike, station: station}
}

func (f fixture) trip(t *testing.T, r models.Rider, startHour int, minutes int, km float64) *models.Trip {
	t.Helper()
	start := time.Date(2025, 5, 6, startHour, 0, 0, 0, time.UTC)
	trip, err := models.NewTrip(f.ids, "", r, f.bike, f.station, f.station, start, start.Add(time.Duration(minutes)*time.Minute), km)
	require.NoError(t, err)
	return trip
}

func TestCasualPricing(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name     string
		minutes  int
		expected float64
	}{
		{"minimum charge applies", 10, 2.0},
		{"exactly at minimum", 13, 2.0},
		{"above minimum", 20, 3.0},
		{"long ride", 60, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CasualPricing{}.CalculateCost(f.trip(t, f.casual, 14, tt.minutes, 3))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMemberPricing(t *testing.T) {
	f := newFixture(t)

	assert.InDelta(t, 4.25, MemberPricing{}.CalculateCost(f.trip(t, f.member, 14, 40, 5)), 1e-9)
	assert.InDelta(t, 0.1, MemberPricing{}.CalculateCost(f.trip(t, f.member, 14, 1, 0)), 1e-9)
}

func TestPeakHourPricing(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name      string
		startHour int
		minutes   int
		expected  float64
	}{
		{"off peak", 14, 20, 5.0},
		{"starts in peak hour", 8, 20, 7.5},
		{"ends in peak hour", 16, 70, 17.5 * 1.5},
		{"07:00 is not a fixed peak hour", 7, 20, 5.0},
		{"20:00 is not a fixed peak hour", 20, 20, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeakHourPricing{}.CalculateCost(f.trip(t, f.casual, tt.startHour, tt.minutes, 1))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestDispatchPolicy(t *testing.T) {
	f := newFixture(t)
	policy := NewDispatchPolicy()

	tests := []struct {
		name      string
		rider     models.Rider
		startHour int
		minutes   int
		km        float64
		expected  float64
	}{
		{"casual off peak", f.casual, 14, 10, 2, 2.0},
		{"casual morning peak", f.casual, 8, 10, 2, 3.0},
		{"member off peak", f.member, 14, 40, 5, 4.25},
		{"member morning peak", f.member, 8, 40, 5, 6.375},
		{"window opens at 07:00", f.member, 7, 40, 5, 6.375},
		{"window closes before 11:00", f.member, 11, 40, 5, 4.25},
		{"evening window", f.member, 20, 40, 5, 6.375},
		{"evening window closes before 21:00", f.member, 21, 40, 5, 4.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CalculateCost(f.trip(t, tt.rider, tt.startHour, tt.minutes, tt.km))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestDispatchPolicy_OnlyStartHourCounts(t *testing.T) {
	f := newFixture(t)
	// 10:30 -> 11:30 starts in peak; 06:00 -> 07:30 does not.
	start := time.Date(2025, 5, 6, 10, 30, 0, 0, time.UTC)
	trip, err := models.NewTrip(f.ids, "", f.member, f.bike, f.station, f.station, start, start.Add(time.Hour), 0)
	require.NoError(t, err)
	assert.True(t, NewDispatchPolicy().IsPeak(trip))

	start = time.Date(2025, 5, 6, 6, 0, 0, 0, time.UTC)
	trip, err = models.NewTrip(f.ids, "", f.member, f.bike, f.station, f.station, start, start.Add(90*time.Minute), 0)
	require.NoError(t, err)
	assert.False(t, NewDispatchPolicy().IsPeak(trip))
}

func TestPeakDefinitionsDiffer(t *testing.T) {
	f := newFixture(t)
	trip := f.trip(t, f.member, 10, 30, 0)

	assert.True(t, NewDispatchPolicy().IsPeak(trip))
	assert.InDelta(t, 7.5, PeakHourPricing{}.CalculateCost(trip), 1e-9)
}

func TestForRiderType(t *testing.T) {
	assert.Equal(t, "MemberPricing", ForRiderType(models.RiderMember).Name())
	assert.Equal(t, "CasualPricing", ForRiderType(models.RiderCasual).Name())
	assert.Panics(t, func() { ForRiderType("corporate") })
}

func TestPolicyNames(t *testing.T) {
	var policies = []Policy{CasualPricing{}, MemberPricing{}, PeakHourPricing{}, NewDispatchPolicy()}
	names := make([]string, 0, len(policies))
	for _, p := range policies {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"CasualPricing", "MemberPricing", "PeakHourPricing", "RiderTypeWithPeakPricing"}, names)
	assert.Equal(t, "RiderTypeWithPeakPricing(1.5x during 07:00-11:00, 17:00-21:00)", NewDispatchPolicy().String())
}

// Package pricing computes trip fares.
//
// Three standalone strategies are provided (CasualPricing, MemberPricing,
// PeakHourPricing) together with DispatchPolicy, the default rule used by the
// fleet registry: a base strategy chosen by rider type, with a surcharge when
// the trip starts inside a peak window.
//
// PeakHourPricing and DispatchPolicy use different definitions of "peak".
// Both are kept on purpose; see PeakHours and DefaultPeakWindows.
package pricing

import (
	"fmt"
	"slices"

	"github.com/ukydev/citybike/internal/models"
)

// Policy prices a trip. Every Strategy is a Policy, as is DispatchPolicy.
type Policy interface {
	CalculateCost(trip *models.Trip) float64
	Name() string
}

// Strategy is one of the standalone pricing strategies in this package.
type Strategy interface {
	Policy
	isStrategy()
}

const (
	CasualRatePerMinute = 0.15
	CasualMinimumCharge = 2.0

	MemberRatePerMinute = 0.10
	MemberRatePerKm     = 0.05

	PeakRatePerMinute = 0.25
	PeakMultiplier    = 1.5
)

// PeakHours are the hours at which PeakHourPricing applies its multiplier.
var PeakHours = []int{8, 9, 17, 18}

// CasualPricing charges per minute with a minimum charge.
type CasualPricing struct{}

func (CasualPricing) CalculateCost(trip *models.Trip) float64 {
	return max(float64(trip.DurationMinutes())*CasualRatePerMinute, CasualMinimumCharge)
}

func (CasualPricing) Name() string { return "CasualPricing" }
func (CasualPricing) isStrategy()  {}

func (CasualPricing) String() string {
	return fmt.Sprintf("CasualPricing(€%.2f/min, min=€%.2f)", CasualRatePerMinute, CasualMinimumCharge)
}

// MemberPricing charges per minute plus per kilometre, without a minimum.
type MemberPricing struct{}

func (MemberPricing) CalculateCost(trip *models.Trip) float64 {
	return float64(trip.DurationMinutes())*MemberRatePerMinute + trip.DistanceKm()*MemberRatePerKm
}

func (MemberPricing) Name() string { return "MemberPricing" }
func (MemberPricing) isStrategy()  {}

func (MemberPricing) String() string {
	return fmt.Sprintf("MemberPricing(€%.2f/min, €%.2f/km)", MemberRatePerMinute, MemberRatePerKm)
}

// PeakHourPricing charges a flat per-minute rate, multiplied when the trip
// starts or ends during one of PeakHours.
type PeakHourPricing struct{}

func (PeakHourPricing) CalculateCost(trip *models.Trip) float64 {
	cost := float64(trip.DurationMinutes()) * PeakRatePerMinute
	if isPeakHour(trip.StartTime().Hour()) || isPeakHour(trip.EndTime().Hour()) {
		cost *= PeakMultiplier
	}
	return cost
}

func (PeakHourPricing) Name() string { return "PeakHourPricing" }
func (PeakHourPricing) isStrategy()  {}

func (PeakHourPricing) String() string {
	return fmt.Sprintf("PeakHourPricing(€%.2f/min, %gx peak)", PeakRatePerMinute, PeakMultiplier)
}

func isPeakHour(hour int) bool {
	return slices.Contains(PeakHours, hour)
}

// ForRiderType returns the base strategy for a rider class.
func ForRiderType(rt models.RiderType) Strategy {
	switch rt {
	case models.RiderMember:
		return MemberPricing{}
	case models.RiderCasual:
		return CasualPricing{}
	default:
		panic(fmt.Sprintf("pricing: unhandled rider type %q", rt))
	}
}

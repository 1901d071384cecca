package pricing

import (
	"fmt"
	"strings"

	"github.com/ukydev/citybike/internal/models"
)

// Window is a half-open range of hours [From, To).
type Window struct {
	From int
	To   int
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.From && hour < w.To
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.From, w.To)
}

// DefaultPeakWindows are the morning and evening rush windows used by
// DispatchPolicy. They differ from PeakHours.
var DefaultPeakWindows = []Window{{From: 7, To: 11}, {From: 17, To: 21}}

// DispatchPolicy picks MemberPricing or CasualPricing from the rider's type and
// multiplies the result when the trip starts inside a peak window.
type DispatchPolicy struct {
	Windows    []Window
	Multiplier float64
}

// NewDispatchPolicy returns the registry's default pricing rule.
func NewDispatchPolicy() *DispatchPolicy {
	windows := make([]Window, len(DefaultPeakWindows))
	copy(windows, DefaultPeakWindows)
	return &DispatchPolicy{Windows: windows, Multiplier: PeakMultiplier}
}

// CalculateCost returns the base fare for the rider's class, surcharged when
// the start hour is in a peak window.
func (p *DispatchPolicy) CalculateCost(trip *models.Trip) float64 {
	cost := ForRiderType(trip.Rider().Type()).CalculateCost(trip)
	if p.IsPeak(trip) {
		cost *= p.Multiplier
	}
	return cost
}

// IsPeak reports whether the trip starts inside one of the policy windows.
func (p *DispatchPolicy) IsPeak(trip *models.Trip) bool {
	hour := trip.StartTime().Hour()
	for _, w := range p.Windows {
		if w.Contains(hour) {
			return true
		}
	}
	return false
}

func (p *DispatchPolicy) Name() string { return "RiderTypeWithPeakPricing" }

func (p *DispatchPolicy) String() string {
	windows := make([]string, len(p.Windows))
	for i, w := range p.Windows {
		windows[i] = w.String()
	}
	return fmt.Sprintf("RiderTypeWithPeakPricing(%gx during %s)", p.Multiplier, strings.Join(windows, ", "))
}

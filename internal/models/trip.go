package models

import (
	"fmt"
	"time"
)

// Trip is one rental episode. Its fields are fixed at construction.
type Trip struct {
	entity
	rider        Rider
	vehicle      Vehicle
	startStation *Station
	endStation   *Station
	startTime    time.Time
	endTime      time.Time
	distanceKm   float64
}

// NewTrip builds a trip. endTime must be strictly after startTime and
// distanceKm must not be negative.
func NewTrip(ids IDSource, id string, rider Rider, vehicle Vehicle, startStation, endStation *Station,
	startTime, endTime time.Time, distanceKm float64) (*Trip, error) {
	switch {
	case rider == nil:
		return nil, invalidValue("rider", nil, "non-nil")
	case vehicle == nil:
		return nil, invalidValue("vehicle", nil, "non-nil")
	case startStation == nil:
		return nil, invalidValue("start_station", nil, "non-nil")
	case endStation == nil:
		return nil, invalidValue("end_station", nil, "non-nil")
	}
	if err := validateTimeOrder(startTime, endTime); err != nil {
		return nil, err
	}
	dist, err := validateNonNegative(distanceKm, "distance_km")
	if err != nil {
		return nil, err
	}
	e, err := newEntity(ids, TagTrip, id)
	if err != nil {
		return nil, err
	}
	return &Trip{
		entity:       e,
		rider:        rider,
		vehicle:      vehicle,
		startStation: startStation,
		endStation:   endStation,
		startTime:    startTime,
		endTime:      endTime,
		distanceKm:   dist,
	}, nil
}

func (t *Trip) Rider() Rider           { return t.rider }
func (t *Trip) Vehicle() Vehicle       { return t.vehicle }
func (t *Trip) StartStation() *Station { return t.startStation }
func (t *Trip) EndStation() *Station   { return t.endStation }
func (t *Trip) StartTime() time.Time   { return t.startTime }
func (t *Trip) EndTime() time.Time     { return t.endTime }
func (t *Trip) DistanceKm() float64    { return t.distanceKm }

// Duration is the elapsed time between start and end.
func (t *Trip) Duration() time.Duration {
	return t.endTime.Sub(t.startTime)
}

// DurationMinutes is the whole number of elapsed minutes, rounded down.
func (t *Trip) DurationMinutes() int {
	return int(t.Duration() / time.Minute)
}

func (t *Trip) String() string {
	return fmt.Sprintf("Trip %s: %s - %d min", t.id, t.rider.Name(), t.DurationMinutes())
}

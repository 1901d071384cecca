package models

import (
	"fmt"
)

// Station is a docking point with bounded capacity.
type Station struct {
	entity
	name     string
	capacity int
	location Location
	docked   []Vehicle
}

// NewStation builds a station. The name is trimmed and must not be empty;
// capacity must be positive. Coordinates are not constrained.
func NewStation(ids IDSource, id, name string, capacity int, latitude, longitude float64) (*Station, error) {
	n, err := validateName(name, "station_name")
	if err != nil {
		return nil, err
	}
	c, err := validatePositiveInt(capacity, "capacity")
	if err != nil {
		return nil, err
	}
	e, err := newEntity(ids, TagStation, id)
	if err != nil {
		return nil, err
	}
	return &Station{
		entity:   e,
		name:     n,
		capacity: c,
		location: Location{Lat: latitude, Lon: longitude},
	}, nil
}

func (s *Station) Name() string        { return s.name }
func (s *Station) Capacity() int       { return s.capacity }
func (s *Station) Location() Location  { return s.location }
func (s *Station) Latitude() float64   { return s.location.Lat }
func (s *Station) Longitude() float64  { return s.location.Lon }
func (s *Station) AvailableCount() int { return len(s.docked) }

// DockedVehicles returns a copy of the docked vehicles in docking order.
func (s *Station) DockedVehicles() []Vehicle {
	out := make([]Vehicle, len(s.docked))
	copy(out, s.docked)
	return out
}

// IsFull reports whether no dock is free.
func (s *Station) IsFull() bool {
	return len(s.docked) >= s.capacity
}

// Dock places v in a free dock.
func (s *Station) Dock(v Vehicle) error {
	if v == nil {
		return invalidValue("vehicle", nil, "non-nil")
	}
	if s.IsFull() {
		return fmt.Errorf("%w: %s holds %d/%d", ErrCapacityExceeded, s.name, len(s.docked), s.capacity)
	}
	if s.indexOf(v) >= 0 {
		return fmt.Errorf("%w: %s at %s", ErrAlreadyDocked, v.ID(), s.name)
	}
	s.docked = append(s.docked, v)
	return nil
}

// Undock removes v from the station.
func (s *Station) Undock(v Vehicle) error {
	if v == nil {
		return invalidValue("vehicle", nil, "non-nil")
	}
	i := s.indexOf(v)
	if i < 0 {
		return fmt.Errorf("%w: vehicle %s is not docked at %s", ErrNotFound, v.ID(), s.name)
	}
	s.docked = append(s.docked[:i], s.docked[i+1:]...)
	return nil
}

func (s *Station) indexOf(v Vehicle) int {
	for i, d := range s.docked {
		if d == v {
			return i
		}
	}
	return -1
}

func (s *Station) String() string {
	return fmt.Sprintf("Station %s: %d/%d bikes", s.name, len(s.docked), s.capacity)
}

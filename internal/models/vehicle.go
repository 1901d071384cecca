package models

import (
	"fmt"
	"time"
)

// Vehicle is a rentable bike. The set of implementations is closed:
// *ClassicBike and *ElectricBike.
type Vehicle interface {
	ID() string
	CreatedAt() time.Time
	Type() VehicleType
	Status() VehicleStatus
	SetStatus(status VehicleStatus) error
	String() string
	isVehicle()
}

type vehicle struct {
	entity
	vehicleType VehicleType
	status      VehicleStatus
}

func newVehicle(ids IDSource, tag, id string, vt VehicleType, status VehicleStatus) (vehicle, error) {
	if !status.IsValid() {
		return vehicle{}, invalidValue("status", status, "one of available, in_use, maintenance")
	}
	e, err := newEntity(ids, tag, id)
	if err != nil {
		return vehicle{}, err
	}
	return vehicle{entity: e, vehicleType: vt, status: status}, nil
}

// Type returns the variant tag, fixed at construction.
func (v *vehicle) Type() VehicleType { return v.vehicleType }

// Status returns the current operational state.
func (v *vehicle) Status() VehicleStatus { return v.status }

// SetStatus changes the operational state. Unknown states are rejected and
// leave the vehicle unchanged.
func (v *vehicle) SetStatus(status VehicleStatus) error {
	if !status.IsValid() {
		return invalidValue("status", status, "one of available, in_use, maintenance")
	}
	v.status = status
	return nil
}

func (v *vehicle) isVehicle() {}

// ClassicBike is a pedal bike with a fixed gear count.
type ClassicBike struct {
	vehicle
	gearCount int
}

// NewClassicBike builds a classic bike. An empty id is generated from ids.
func NewClassicBike(ids IDSource, id string, status VehicleStatus, gearCount int) (*ClassicBike, error) {
	gears, err := validatePositiveInt(gearCount, "gear_count")
	if err != nil {
		return nil, err
	}
	base, err := newVehicle(ids, TagClassicBike, id, VehicleClassic, status)
	if err != nil {
		return nil, err
	}
	return &ClassicBike{vehicle: base, gearCount: gears}, nil
}

// GearCount returns the number of gears.
func (b *ClassicBike) GearCount() int { return b.gearCount }

func (b *ClassicBike) String() string {
	return fmt.Sprintf("ClassicBike %s (%d-gear) - %s", b.id, b.gearCount, b.status)
}

// ElectricBike is a pedal-assist bike with a battery.
type ElectricBike struct {
	vehicle
	batteryLevel float64
	maxRangeKm   float64
}

// NewElectricBike builds an electric bike. batteryLevel is a percentage in
// [0, 100]; maxRangeKm must be positive.
func NewElectricBike(ids IDSource, id string, status VehicleStatus, batteryLevel, maxRangeKm float64) (*ElectricBike, error) {
	battery, err := validateRange(batteryLevel, 0, 100, "battery_level")
	if err != nil {
		return nil, err
	}
	maxRange, err := validatePositive(maxRangeKm, "max_range_km")
	if err != nil {
		return nil, err
	}
	base, err := newVehicle(ids, TagElectricBike, id, VehicleElectric, status)
	if err != nil {
		return nil, err
	}
	return &ElectricBike{vehicle: base, batteryLevel: battery, maxRangeKm: maxRange}, nil
}

// BatteryLevel returns the charge percentage.
func (b *ElectricBike) BatteryLevel() float64 { return b.batteryLevel }

// SetBatteryLevel updates the charge. Values outside [0, 100] are rejected
// and the previous level is kept.
func (b *ElectricBike) SetBatteryLevel(level float64) error {
	v, err := validateRange(level, 0, 100, "battery_level")
	if err != nil {
		return err
	}
	b.batteryLevel = v
	return nil
}

// MaxRangeKm returns the range on a full charge.
func (b *ElectricBike) MaxRangeKm() float64 { return b.maxRangeKm }

// EstimatedRangeKm is the range left at the current charge.
func (b *ElectricBike) EstimatedRangeKm() float64 {
	return b.maxRangeKm * b.batteryLevel / 100
}

func (b *ElectricBike) String() string {
	return fmt.Sprintf("EBike %s (%g%% battery, %gkm) - %s", b.id, b.batteryLevel, b.maxRangeKm, b.status)
}

package factory

import (
	"github.com/ukydev/citybike/internal/models"
)

type vehicleRecord struct {
	ID           *string  `mapstructure:"bike_id"`
	Type         *string  `mapstructure:"bike_type"`
	Status       *string  `mapstructure:"status"`
	GearCount    *int     `mapstructure:"gear_count"`
	BatteryLevel *float64 `mapstructure:"battery_level"`
	MaxRangeKm   *float64 `mapstructure:"max_range_km"`
}

// VehicleFactory creates Vehicle variants from records keyed by bike_id,
// bike_type, status, gear_count, battery_level and max_range_km.
type VehicleFactory struct {
	ids models.IDSource
}

// NewVehicleFactory returns a factory that generates ids from ids when a
// record has none.
func NewVehicleFactory(ids models.IDSource) *VehicleFactory {
	return &VehicleFactory{ids: ids}
}

// CreateFromRecord builds the vehicle variant named by bike_type
// (default "classic").
func (f *VehicleFactory) CreateFromRecord(rec Record) (models.Vehicle, error) {
	var in vehicleRecord
	if err := decode(rec, &in); err != nil {
		return nil, err
	}
	vt, err := models.ParseVehicleType(stringOr(in.Type, string(DefaultVehicleType)))
	if err != nil {
		return nil, err
	}
	status, err := models.ParseVehicleStatus(stringOr(in.Status, string(DefaultVehicleStatus)))
	if err != nil {
		return nil, err
	}

	switch vt {
	case models.VehicleClassic:
		id, err := resolveID(f.ids, in.ID, "bike_id", models.TagClassicBike)
		if err != nil {
			return nil, err
		}
		gears := DefaultGearCount
		if in.GearCount != nil {
			gears = *in.GearCount
		}
		return models.NewClassicBike(f.ids, id, status, gears)
	case models.VehicleElectric:
		id, err := resolveID(f.ids, in.ID, "bike_id", models.TagElectricBike)
		if err != nil {
			return nil, err
		}
		battery, maxRange := DefaultBatteryLevel, DefaultMaxRangeKm
		if in.BatteryLevel != nil {
			battery = *in.BatteryLevel
		}
		if in.MaxRangeKm != nil {
			maxRange = *in.MaxRangeKm
		}
		return models.NewElectricBike(f.ids, id, status, battery, maxRange)
	default:
		panic("factory: unhandled vehicle type " + string(vt))
	}
}

package factory

import (
	"github.com/ukydev/citybike/internal/models"
)

type stationRecord struct {
	ID          *string `mapstructure:"station_id"`
	StationName *string `mapstructure:"station_name"`
	Name        *string `mapstructure:"name"`
	Capacity    *int    `mapstructure:"capacity"`
	Latitude    float64 `mapstructure:"latitude"`
	Longitude   float64 `mapstructure:"longitude"`
}

// StationFactory creates stations from records keyed by station_id,
// station_name (or name), capacity, latitude and longitude.
type StationFactory struct {
	ids models.IDSource
}

// NewStationFactory returns a factory that generates ids from ids when a
// record has none.
func NewStationFactory(ids models.IDSource) *StationFactory {
	return &StationFactory{ids: ids}
}

// CreateFromRecord builds a station; capacity defaults to 20.
func (f *StationFactory) CreateFromRecord(rec Record) (*models.Station, error) {
	var in stationRecord
	if err := decode(rec, &in); err != nil {
		return nil, err
	}
	id, err := resolveID(f.ids, in.ID, "station_id", models.TagStation)
	if err != nil {
		return nil, err
	}
	name := stringOr(in.StationName, stringOr(in.Name, ""))
	capacity := DefaultStationCapacity
	if in.Capacity != nil {
		capacity = *in.Capacity
	}
	return models.NewStation(f.ids, id, name, capacity, in.Latitude, in.Longitude)
}

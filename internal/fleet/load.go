package fleet

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/citybike/internal/factory"
	"github.com/ukydev/citybike/internal/models"
)

// RecordKind names the collection a bulk-import record belongs to.
type RecordKind string

const (
	KindRider   RecordKind = "rider"
	KindStation RecordKind = "station"
	KindVehicle RecordKind = "vehicle"
)

// ImportFailure describes one record that could not be imported.
type ImportFailure struct {
	Kind  RecordKind
	Index int
	Key   string
	Err   error
}

func (f ImportFailure) Error() string {
	key := f.Key
	if key == "" {
		key = "<missing>"
	}
	return fmt.Sprintf("%s record %d (%s): %v", f.Kind, f.Index, key, f.Err)
}

func (f ImportFailure) Unwrap() error { return f.Err }

// DiagnosticSink is notified of each failed record during a bulk import.
type DiagnosticSink func(ImportFailure)

// ImportReport summarises a bulk import.
type ImportReport struct {
	Riders   int
	Stations int
	Vehicles int
	Failures []ImportFailure
}

// Imported is the number of records that were registered.
func (r ImportReport) Imported() int {
	return r.Riders + r.Stations + r.Vehicles
}

// HasFailures reports whether any record was skipped.
func (r ImportReport) HasFailures() bool {
	return len(r.Failures) > 0
}

func (r *ImportReport) merge(o ImportReport) {
	r.Riders += o.Riders
	r.Stations += o.Stations
	r.Vehicles += o.Vehicles
	r.Failures = append(r.Failures, o.Failures...)
}

var recordKeys = map[RecordKind]string{
	KindRider:   "user_id",
	KindStation: "station_id",
	KindVehicle: "bike_id",
}

// LoadFromExternalRecords imports riders and stations. Each record is handled
// independently: a bad record is reported and skipped without affecting the
// others. Records must carry their id key (user_id or station_id).
func (r *Registry) LoadFromExternalRecords(riderRecords, stationRecords []factory.Record) ImportReport {
	var report ImportReport
	report.merge(r.LoadRiders(riderRecords))
	report.merge(r.LoadStations(stationRecords))
	return report
}

// LoadRiders imports rider records through the rider factory.
func (r *Registry) LoadRiders(records []factory.Record) ImportReport {
	f := factory.NewRiderFactory(r.ids)
	return r.load(KindRider, records, func(rec factory.Record) error {
		u, err := f.CreateFromRecord(rec)
		if err != nil {
			return err
		}
		r.AddRider(u)
		return nil
	})
}

// LoadStations imports station records through the station factory.
func (r *Registry) LoadStations(records []factory.Record) ImportReport {
	f := factory.NewStationFactory(r.ids)
	return r.load(KindStation, records, func(rec factory.Record) error {
		s, err := f.CreateFromRecord(rec)
		if err != nil {
			return err
		}
		r.AddStation(s)
		return nil
	})
}

// LoadVehicles imports vehicle records through the vehicle factory.
func (r *Registry) LoadVehicles(records []factory.Record) ImportReport {
	f := factory.NewVehicleFactory(r.ids)
	return r.load(KindVehicle, records, func(rec factory.Record) error {
		v, err := f.CreateFromRecord(rec)
		if err != nil {
			return err
		}
		r.AddVehicle(v)
		return nil
	})
}

func (r *Registry) load(kind RecordKind, records []factory.Record, add func(factory.Record) error) ImportReport {
	var report ImportReport
	keyName := recordKeys[kind]
	ok := 0

	for i, rec := range records {
		key, err := requireKey(rec, keyName)
		if err == nil {
			err = add(rec)
		}
		if err != nil {
			failure := ImportFailure{Kind: kind, Index: i, Key: key, Err: err}
			report.Failures = append(report.Failures, failure)
			r.log.WithFields(logrus.Fields{
				"kind":  kind,
				"index": i,
				"key":   key,
			}).WithError(err).Warn("Skipping record")
			if r.sink != nil {
				r.sink(failure)
			}
			continue
		}
		ok++
	}

	switch kind {
	case KindRider:
		report.Riders = ok
	case KindStation:
		report.Stations = ok
	case KindVehicle:
		report.Vehicles = ok
	}
	r.log.WithFields(logrus.Fields{
		"kind":     kind,
		"imported": ok,
		"failed":   len(report.Failures),
	}).Info("Import completed")
	return report
}

func requireKey(rec factory.Record, keyName string) (string, error) {
	raw, present := rec[keyName]
	if !present || raw == nil {
		return "", fmt.Errorf("%w: %s missing", models.ErrInvalidIdentifier, keyName)
	}
	key := strings.TrimSpace(fmt.Sprint(raw))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", models.ErrInvalidIdentifier, keyName)
	}
	return key, nil
}

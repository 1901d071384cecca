// Package factory builds vehicles, riders and stations from loosely typed
// records such as parsed CSV rows or MongoDB documents.
//
// Unlike the constructors in models, the rider factory repairs a missing or
// malformed email by synthesising "<id>@example.com". Upstream datasets are
// only partially clean and a rider without a usable address is still a
// rider; this leniency is intentional.
package factory

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/ukydev/citybike/internal/models"
)

// Record is one loosely typed input row. Unknown keys are ignored.
type Record map[string]any

// Defaults applied to fields missing from a record.
const (
	DefaultVehicleType   = models.VehicleClassic
	DefaultVehicleStatus = models.StatusAvailable
	DefaultGearCount     = 21
	DefaultBatteryLevel  = 100.0
	DefaultMaxRangeKm    = 50.0

	DefaultRiderType    = models.RiderCasual
	DefaultDayPassCount = 0
	DefaultTier         = models.TierBasic

	DefaultStationCapacity = 20

	FallbackEmailDomain = "example.com"
)

// decode fills out using mapstructure tags, converting strings to numbers and
// RFC3339 strings to time.Time.
func decode(rec Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			wholeNumber,
			blankAsAbsent,
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidValue, err)
	}
	return nil
}

// wholeNumber rejects a float with a fractional part bound for an integer
// field. Whole floats such as 20.0 pass through.
func wholeNumber(from, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}

// blankAsAbsent leaves optional non-string fields unset when the record holds
// an empty string, as spreadsheets do for empty cells.
func blankAsAbsent(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Ptr || to.Elem().Kind() == reflect.String {
		return data, nil
	}
	if strings.TrimSpace(reflect.ValueOf(data).String()) == "" {
		return nil, nil
	}
	return data, nil
}

// resolveID returns the supplied id, or a generated one when the key was
// absent. A present but blank id is an error.
func resolveID(ids models.IDSource, raw *string, key, tag string) (string, error) {
	if raw == nil {
		if ids == nil {
			return "", fmt.Errorf("%w: %s missing", models.ErrInvalidIdentifier, key)
		}
		return ids.Next(tag), nil
	}
	id := strings.TrimSpace(*raw)
	if id == "" {
		return "", fmt.Errorf("%w: %s is empty", models.ErrInvalidIdentifier, key)
	}
	return id, nil
}

func stringOr(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return *v
}
